package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/saintstack/mysqlimport/pkg/config"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run assembles and executes the main mysqlcsvimport CLI application. It is
// invoked by the fx module once the command group and configuration have been
// built, and hands the resulting exit code to the fx Shutdowner.
//
// The root invocation is the load operation itself:
//
//	mysqlcsvimport <csv_file> <table_schema> <column_mapping>
//
// which validates the three files and loads the mapped columns into the
// destination table. The same operation is available as the `load`
// subcommand, next to `validate`, `schema`, and `mapping`.
//
// Exit codes:
//   - 1: wrong argument count (usage printed), or any parse/validation failure
//   - 2: the CSV file does not exist
//   - 3: the schema document does not exist
//   - 4: the mapping document does not exist
//
// The numbered argument and existence failures are raised as cli exit errors
// and terminate the process directly; everything else is logged and mapped to
// exit code 1 through the Shutdowner.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := &cli.Command{
		Name:  "mysqlcsvimport",
		Usage: "Load MySQL CSV dumps into ClickHouse",
		Description: `mysqlcsvimport loads rows from a MySQL CSV dump into a ClickHouse table.
The table's XML describe document gives every CSV cell its column name, and a
JSON mapping document selects the columns worth keeping and names their
destinations. Columns absent from the mapping are dropped.`,
		Version:   p.Version.Version,
		ArgsUsage: "<csv_file> <table_schema> <column_mapping>",
		Flags:     loadFlags(),
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runLoad(ctx, cmd, loadParams{Config: p.Config, Version: p.Version})
		},
		Commands: p.Commands,
	}

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}
