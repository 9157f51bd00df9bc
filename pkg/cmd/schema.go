package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/saintstack/mysqlimport/pkg/mysql"
	"github.com/saintstack/mysqlimport/pkg/schema"
	"github.com/urfave/cli/v3"
)

// schemaCmd returns the parent command for schema document operations.
//
// Available subcommands:
//   - dump: Describe a table on a live MySQL server as an XML document
//   - show: Print the columns described by a schema document
//
// Example usage:
//
//	# Produce the schema document a load needs
//	mysqlcsvimport schema dump --url root:secret@tcp(db:3306)/app --table user --out user.xml
//
//	# Inspect it
//	mysqlcsvimport schema show user.xml
func schemaCmd() *cli.Command {
	return &cli.Command{
		Name:  "schema",
		Usage: "Commands for working with table schema documents",
		Commands: []*cli.Command{
			schemaDump(),
			schemaShow(),
		},
	}
}

// schemaDump returns the CLI command that describes a table on a live MySQL
// server and emits the XML describe document the importer reads. Column order
// and attribute rendering match the output of `mysql --xml -e "describe t"`,
// so the emitted document can be fed straight into a load.
//
// Required flags:
//   - --url, -u: MySQL connection DSN
//   - --table, -t: Table to describe
//
// Optional flags:
//   - --out, -o: Output file (defaults to stdout)
//
// Example usage:
//
//	# Dump to stdout
//	mysqlcsvimport schema dump --url root:secret@tcp(db:3306)/app --table user
//
//	# Dump to the file a load will read
//	mysqlcsvimport schema dump --url root:secret@tcp(db:3306)/app --table user --out user.xml
func schemaDump() *cli.Command {
	return &cli.Command{
		Name:  "dump",
		Usage: "Describe a table on a live MySQL server as a schema document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "url",
				Aliases:  []string{"u"},
				Usage:    "MySQL connection DSN (user:pass@tcp(host:3306)/dbname)",
				Sources:  cli.EnvVars("MYSQL_URL"),
				Required: true,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:     "table",
				Aliases:  []string{"t"},
				Usage:    "Table to describe",
				Required: true,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "Output file path for the schema document",
				DefaultText: "stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			client, err := mysql.NewClient(ctx, cmd.String("url"))
			if err != nil {
				return err
			}
			defer func() { _ = client.Close() }()

			s, err := client.Describe(ctx, cmd.String("table"))
			if err != nil {
				return err
			}

			w := cmd.Writer
			if cmd.String("out") != "" {
				f, err := os.Create(cmd.String("out"))
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			return s.Write(w)
		},
	}
}

// schemaShow returns the CLI command that parses a schema document and prints
// its columns, one per line, in document order.
func schemaShow() *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the columns described by a schema document",
		ArgsUsage: "<table_schema>",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			path := cmd.Args().First()
			if path == "" {
				return errors.New("no schema document given")
			}

			s, err := schema.ParseFile(path)
			if err != nil {
				return err
			}

			if s.Statement != "" {
				fmt.Fprintln(cmd.Writer, s.Statement)
			}

			for _, col := range s.Columns {
				fmt.Fprintf(cmd.Writer, "  %s\n", col)
			}

			fmt.Fprintf(cmd.Writer, "%d columns\n", len(s.Columns))
			return nil
		},
	}
}
