package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/saintstack/mysqlimport/pkg/clickhouse"
	"github.com/saintstack/mysqlimport/pkg/config"
	"github.com/saintstack/mysqlimport/pkg/importer"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

// usageLine is printed with every argument-count and file-existence failure.
const usageLine = "Usage: mysqlcsvimport <csv_file> <table_schema> <column_mapping>"

type loadParams struct {
	fx.In

	Config  *config.Config
	Version *Version
}

// load returns the CLI command that loads a CSV dump into the destination
// table. It is the named form of the root invocation and shares its argument
// contract and exit codes.
//
// Command flags:
//   - --url, -u: ClickHouse connection DSN (falls back to config, then localhost:9000)
//   - --database, -d: Database the destination table lives in
//   - --strict: Require every mapping column to be present in the schema
//   - --skip-header: Skip the first row of the data file
//   - --dry-run: Validate and scan the data file without loading anything
//   - --no-journal: Do not record this run in the import journal
//
// Example usage:
//
//	# Load into a local server
//	mysqlcsvimport load user.csv user.xml user.json
//
//	# Load into a specific database on a remote server
//	mysqlcsvimport load --url clickhouse://host:9000 --database staging user.csv user.xml user.json
//
//	# Check what a load would do without writing anything
//	mysqlcsvimport load --dry-run user.csv user.xml user.json
func load(p loadParams) *cli.Command {
	return &cli.Command{
		Name:      "load",
		Usage:     "Load a CSV dump into the destination table",
		ArgsUsage: "<csv_file> <table_schema> <column_mapping>",
		Description: `Load the rows of a CSV dump into the destination ClickHouse table.

The schema document names the CSV columns in order, and the mapping document
selects which of them to keep and what to call them at the destination.
Unmapped columns are dropped. Each run is recorded in the import journal
unless journaling is disabled by flag or configuration.`,
		Flags: loadFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runLoad(ctx, cmd, p)
		},
	}
}

// loadFlags builds the flag set shared by the root invocation and the load
// subcommand. Fresh instances are returned so each command parses its own.
func loadFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "url",
			Aliases: []string{"u"},
			Usage:   "ClickHouse connection DSN (host:port, clickhouse://..., tcp://...)",
			Sources: cli.EnvVars("CH_DATABASE_URL"),
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.StringFlag{
			Name:    "database",
			Aliases: []string{"d"},
			Usage:   "Database the destination table lives in",
			Config: cli.StringConfig{
				TrimSpace: true,
			},
		},
		&cli.BoolFlag{
			Name:  "strict",
			Usage: "Require every mapping column to be present in the schema",
		},
		&cli.BoolFlag{
			Name:  "skip-header",
			Usage: "Skip the first row of the data file",
		},
		&cli.BoolFlag{
			Name:  "dry-run",
			Usage: "Validate and scan the data file without loading anything",
		},
		&cli.BoolFlag{
			Name:  "no-journal",
			Usage: "Do not record this run in the import journal",
		},
	}
}

// checkInputs enforces the argument contract shared by the root invocation and
// the load subcommand: exactly three positional arguments naming files that
// exist. Failures print the usage line and set the exit code (1 wrong argument
// count, 2 missing CSV file, 3 missing schema document, 4 missing mapping
// document).
func checkInputs(cmd *cli.Command) error {
	args := cmd.Args().Slice()
	if len(args) != 3 {
		return cli.Exit("Wrong number of arguments\n"+usageLine, 1)
	}

	for i, arg := range args {
		if _, err := os.Stat(arg); err != nil {
			return cli.Exit(fmt.Sprintf("%s does not exist\n%s", arg, usageLine), i+2)
		}
	}

	return nil
}

func runLoad(ctx context.Context, cmd *cli.Command, p loadParams) error {
	if err := checkInputs(cmd); err != nil {
		return err
	}

	args := cmd.Args().Slice()

	url := cmd.String("url")
	if url == "" {
		url = p.Config.DSN()
	}

	database := cmd.String("database")
	if database == "" {
		database = p.Config.Database()
	}

	cfg := importer.Config{
		DataFile:    args[0],
		SchemaFile:  args[1],
		MappingFile: args[2],
		Database:    database,
		Strict:      cmd.Bool("strict") || p.Config.StrictMode(),
		SkipHeader:  cmd.Bool("skip-header"),
		Journal:     p.Config.JournalEnabled() && !cmd.Bool("no-journal"),
		Version:     p.Version.Version,
	}

	slog.Info("Starting import",
		"data", cfg.DataFile,
		"schema", cfg.SchemaFile,
		"mapping", cfg.MappingFile,
		"url", url,
		"database", database,
		"strict", cfg.Strict,
		"dry_run", cmd.Bool("dry-run"),
	)

	if cmd.Bool("dry-run") {
		imp, err := importer.New(cfg)
		if err != nil {
			return err
		}

		result, err := imp.Validate(ctx)
		if err != nil {
			return errors.Wrap(err, "failed to validate data file")
		}

		fmt.Fprintf(cmd.Writer, "Dry run: %d rows would be loaded into %s (%d source columns dropped)\n",
			result.Rows, result.Table, result.Dropped)
		return nil
	}

	opts := p.Config.ClientOptions()
	if database != "" {
		opts.Database = database
	}

	client, err := clickhouse.NewClientWithOptions(ctx, url, opts)
	if err != nil {
		return errors.Wrap(err, "failed to create ClickHouse client")
	}
	defer func() { _ = client.Close() }()

	version, err := client.Version(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to connect to ClickHouse")
	}

	slog.Info("Connected to ClickHouse", "version", version)

	cfg.Target = client

	imp, err := importer.New(cfg)
	if err != nil {
		return err
	}

	result, err := imp.Run(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to import data")
	}

	fmt.Fprintf(cmd.Writer, "Loaded %d rows into %s in %s (%d source columns dropped)\n",
		result.Rows, result.Table, result.Duration.Round(time.Millisecond), result.Dropped)
	return nil
}
