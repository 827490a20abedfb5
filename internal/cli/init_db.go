package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/grazy/inventoryapp/internal/config"
	"github.com/grazy/inventoryapp/internal/database"
)

type InitDBCommand struct {
	DatabasePath string
	LogLevel     string

	out io.Writer
}

func NewInitDBCommand() *InitDBCommand {
	return &InitDBCommand{out: os.Stdout}
}

func (cmd *InitDBCommand) ParseFlags(args []string) error {
	fs := flag.NewFlagSet("init-db", flag.ContinueOnError)

	fs.StringVar(&cmd.DatabasePath, "db", config.DefaultDatabasePath, "Path to the SQLite database to create")
	fs.StringVar(&cmd.LogLevel, "log-level", "warn", "SQL log level: silent, error, warn or info")

	fs.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s init-db [options]\n\n", os.Args[0])
		fmt.Fprintf(os.Stderr, "Create a database with an empty books table. Existing tables are left in place.\n\n")
		fmt.Fprintf(os.Stderr, "Options:\n")
		fs.PrintDefaults()
	}

	return fs.Parse(args)
}

func (cmd *InitDBCommand) Run() error {
	db, err := database.NewDatabase(cmd.DatabasePath, database.ParseLogLevel(cmd.LogLevel))
	if err != nil {
		return err
	}
	defer db.Close()

	cols, err := db.Columns()
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.out, "Initialized %s with %d columns\n", cmd.DatabasePath, len(cols))
	return nil
}
