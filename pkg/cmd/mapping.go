package cmd

import (
	"context"
	"os"

	"github.com/saintstack/mysqlimport/pkg/mapping"
	"github.com/saintstack/mysqlimport/pkg/schema"
	"github.com/urfave/cli/v3"
)

// mappingCmd returns the parent command for mapping document operations.
//
// Available subcommands:
//   - init: Generate an identity mapping for every column in a schema document
func mappingCmd() *cli.Command {
	return &cli.Command{
		Name:  "mapping",
		Usage: "Commands for working with column mapping documents",
		Commands: []*cli.Command{
			mappingInit(),
		},
	}
}

// mappingInit returns the CLI command that generates a starter mapping
// document from a schema document. Every source column is mapped to a
// destination column of the same name; the result is meant to be edited down
// to the columns worth keeping.
//
// Required flags:
//   - --schema, -s: Schema document describing the source table
//   - --table, -t: Destination table name
//
// Optional flags:
//   - --out, -o: Output file (defaults to stdout)
//
// Example usage:
//
//	# Write a starter mapping next to its schema document
//	mysqlcsvimport mapping init --schema user.xml --table user --out user.json
func mappingInit() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Generate an identity mapping for every column in a schema document",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "schema",
				Aliases:  []string{"s"},
				Usage:    "Schema document describing the source table",
				Required: true,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:     "table",
				Aliases:  []string{"t"},
				Usage:    "Destination table name",
				Required: true,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:        "out",
				Aliases:     []string{"o"},
				Usage:       "Output file path for the mapping document",
				DefaultText: "stdout",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			s, err := schema.ParseFile(cmd.String("schema"))
			if err != nil {
				return err
			}

			m := mapping.Generate(s, cmd.String("table"))

			w := cmd.Writer
			if cmd.String("out") != "" {
				f, err := os.Create(cmd.String("out"))
				if err != nil {
					return err
				}
				defer func() { _ = f.Close() }()
				w = f
			}

			return m.Write(w)
		},
	}
}
