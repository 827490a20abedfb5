package cli

import (
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grazy/inventoryapp/internal/contract"
)

type ContractCommand struct {
	Format string

	out io.Writer
}

func NewContractCommand() *ContractCommand {
	return &ContractCommand{out: os.Stdout}
}

func (cmd *ContractCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("contract", flag.ContinueOnError)

	fs.StringVar(&cmd.Format, "format", "json", "Output format: json or sql")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s contract [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Print the books contract: URIs, MIME types, table and columns.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s contract\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s contract -format sql\n", os.Args[0])
	}

	if err := fs.Parse(args); err != nil {
		return err
	}

	if cmd.Format != "json" && cmd.Format != "sql" {
		fs.Usage()
		return fmt.Errorf("unknown format %q", cmd.Format)
	}

	return nil
}

func (cmd *ContractCommand) Run() error {
	if cmd.Format == "sql" {
		_, err := fmt.Fprintln(cmd.out, contract.CreateTableSQL())
		return err
	}

	enc := json.NewEncoder(cmd.out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(contract.Describe()); err != nil {
		return fmt.Errorf("failed to encode contract: %w", err)
	}
	return nil
}
