package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grazy/inventoryapp/internal/config"
	"github.com/grazy/inventoryapp/internal/inspect"
)

type CheckSchemaCommand struct {
	DatabasePath string
	Verbose      bool

	out io.Writer
}

func NewCheckSchemaCommand() *CheckSchemaCommand {
	return &CheckSchemaCommand{out: os.Stdout}
}

func (cmd *CheckSchemaCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("check-schema", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the SQLite database to check")
	fs.BoolVar(&cmd.Verbose, "verbose", false, "Print every column found")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s check-schema [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Verify that a database's books table matches the contract. The file is opened read-only.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nExamples:\n")
		fmt.Fprintf(os.Stderr, "  %s check-schema -db ./inventory.db\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "  %s check-schema -db ./device-backup.db -verbose\n", os.Args[0])
	}

	return fs.Parse(args)
}

func (cmd *CheckSchemaCommand) Run() error {
	cols, err := inspect.Inspect(cmd.DatabasePath)
	if err != nil {
		return err
	}

	if cmd.Verbose {
		for _, c := range cols {
			fmt.Fprintf(cmd.out, "  %-24s %s\n", c.Name, c.Type)
		}
	}

	if err := inspect.Compare(cmd.DatabasePath, cols); err != nil {
		var mismatch *inspect.MismatchError
		if errors.As(err, &mismatch) {
			for _, name := range mismatch.Missing {
				fmt.Fprintf(cmd.out, "missing:    %s\n", name)
			}
			for _, name := range mismatch.Unexpected {
				fmt.Fprintf(cmd.out, "unexpected: %s\n", name)
			}
			for _, d := range mismatch.Types {
				fmt.Fprintf(cmd.out, "type:       %s is %s, want %s\n", d.Column, d.Actual, d.Expected)
			}
			for _, d := range mismatch.Constraints {
				fmt.Fprintf(cmd.out, "constraint: %s\n", d)
			}
		}
		return err
	}

	fmt.Fprintf(cmd.out, "%s matches the books contract (%d columns)\n", cmd.DatabasePath, len(cols))
	return nil
}
