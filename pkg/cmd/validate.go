package cmd

import (
	"context"
	"fmt"

	"github.com/pkg/errors"
	"github.com/saintstack/mysqlimport/pkg/config"
	"github.com/saintstack/mysqlimport/pkg/importer"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type validateParams struct {
	fx.In

	Config *config.Config
}

// validate returns the CLI command that checks the data, schema, and mapping
// files without connecting to a destination. It takes the same three
// positional arguments as load, with the same exit codes for missing files,
// and scans every data row so that ragged rows are caught before a real load.
//
// Example usage:
//
//	# Check the inputs of a pending load
//	mysqlcsvimport validate --skip-header user.csv user.xml user.json
//
//	# Additionally require every mapping column to exist in the schema
//	mysqlcsvimport validate --strict user.csv user.xml user.json
func validate(p validateParams) *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Usage:     "Validate the data, schema, and mapping files without loading",
		ArgsUsage: "<csv_file> <table_schema> <column_mapping>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:  "strict",
				Usage: "Require every mapping column to be present in the schema",
			},
			&cli.BoolFlag{
				Name:  "skip-header",
				Usage: "Skip the first row of the data file",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return runValidate(ctx, cmd, p)
		},
	}
}

func runValidate(ctx context.Context, cmd *cli.Command, p validateParams) error {
	if err := checkInputs(cmd); err != nil {
		return err
	}

	args := cmd.Args().Slice()

	imp, err := importer.New(importer.Config{
		DataFile:    args[0],
		SchemaFile:  args[1],
		MappingFile: args[2],
		Strict:      cmd.Bool("strict") || p.Config.StrictMode(),
		SkipHeader:  cmd.Bool("skip-header"),
	})
	if err != nil {
		return err
	}

	result, err := imp.Validate(ctx)
	if err != nil {
		return errors.Wrap(err, "failed to validate data file")
	}

	fmt.Fprintf(cmd.Writer, "Validated %d rows for %s (%d source columns dropped)\n",
		result.Rows, result.Table, result.Dropped)
	return nil
}
