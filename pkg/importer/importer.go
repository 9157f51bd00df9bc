package importer

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/saintstack/mysqlimport/pkg/mapping"
	"github.com/saintstack/mysqlimport/pkg/schema"
	"github.com/saintstack/mysqlimport/pkg/utils"
)

type (
	// Target defines the destination interface required by the importer.
	// It is satisfied by clickhouse.Client and mocked in tests.
	Target interface {
		Exec(ctx context.Context, sql string, args ...any) error
	}

	// Importer loads mapped data rows into a destination table.
	//
	// An Importer is created with New, which validates every input before the
	// instance exists: the three files must be present, the schema and mapping
	// documents must parse, and every mapped column must resolve to a source
	// position. Run then streams the data file row by row into the destination.
	//
	// Example usage:
	//
	//	imp, err := importer.New(importer.Config{
	//		DataFile:    "user.csv",
	//		SchemaFile:  "user.xml",
	//		MappingFile: "user.json",
	//		SkipHeader:  true,
	//		Target:      client,
	//	})
	//	if err != nil {
	//		log.Fatal(err)
	//	}
	//
	//	result, err := imp.Run(ctx)
	//	if err != nil {
	//		log.Fatal(err)
	//	}
	//
	//	fmt.Printf("loaded %d rows into %s\n", result.Rows, result.Table)
	Importer struct {
		config    Config
		schema    *schema.Schema
		mapping   *mapping.Mapping
		plan      []planColumn
		insertSQL string
	}

	// Config contains configuration options for creating a new Importer.
	Config struct {
		// DataFile is the CSV or XLSX file holding the rows to load
		DataFile string

		// SchemaFile is the schema document describing the source columns
		SchemaFile string

		// MappingFile is the mapping document naming the destination table and columns
		MappingFile string

		// Database optionally qualifies the destination table
		Database string

		// Strict requires every mapping key to name a schema column
		Strict bool

		// SkipHeader drops the first row of the data file
		SkipHeader bool

		// Journal records each run in mysqlcsvimport.imports
		Journal bool

		// Target is the destination the rows are written to
		Target Target

		// Version to record in journal entries
		Version string
	}

	// Result contains the outcome of a run.
	Result struct {
		// Table is the destination table name
		Table string

		// Rows is the number of data rows loaded (or scanned, for a dry run)
		Rows int

		// Dropped is the number of source columns absent from the mapping
		Dropped int

		// Duration records how long the run took
		Duration time.Duration
	}

	// planColumn binds one source column position to its destination name.
	planColumn struct {
		index       int
		destination string
	}
)

// New creates a new Importer with the provided configuration.
//
// Construction is atomic: the data, schema, and mapping files must exist, the
// schema and mapping documents must parse, and at least one mapping key must
// name a schema column. With Strict set, every mapping key must name one.
// The first failure aborts; no partially validated Importer is returned.
//
// Example usage:
//
//	imp, err := importer.New(importer.Config{
//		DataFile:    "user.csv",
//		SchemaFile:  "user.xml",
//		MappingFile: "user.json",
//	})
func New(config Config) (*Importer, error) {
	inputs := []struct{ kind, path string }{
		{"data", config.DataFile},
		{"schema", config.SchemaFile},
		{"mapping", config.MappingFile},
	}

	for _, in := range inputs {
		if in.path == "" {
			return nil, errors.Errorf("no %s file given", in.kind)
		}

		if _, err := os.Stat(in.path); err != nil {
			return nil, errors.Wrapf(err, "failed to stat %s file", in.kind)
		}
	}

	s, err := schema.ParseFile(config.SchemaFile)
	if err != nil {
		return nil, err
	}

	m, err := mapping.ParseFile(config.MappingFile)
	if err != nil {
		return nil, err
	}

	if config.Strict {
		if err := m.Validate(s); err != nil {
			return nil, err
		}
	}

	imp := &Importer{config: config, schema: s, mapping: m}
	if err := imp.buildPlan(); err != nil {
		return nil, err
	}

	return imp, nil
}

// Run loads the data file into the destination table.
//
// Rows are written one INSERT at a time with no batching or retry. The first
// failing row stops the load; rows inserted before it stay inserted. With
// journaling enabled, the run is recorded in mysqlcsvimport.imports whether
// it succeeded or not.
func (i *Importer) Run(ctx context.Context) (*Result, error) {
	if i.config.Target == nil {
		return nil, errors.New("no import target configured")
	}

	started := time.Now()

	if i.config.Journal {
		if err := i.ensureJournal(ctx); err != nil {
			return nil, err
		}
	}

	result, err := i.scan(func(args []any) error {
		return i.config.Target.Exec(ctx, i.insertSQL, args...)
	})
	result.Duration = time.Since(started)

	if i.config.Journal {
		i.recordImport(ctx, started, result, err)
	}

	if err != nil {
		return nil, err
	}

	return result, nil
}

// Validate performs a dry run: the data file is scanned and checked against
// the schema exactly as Run would, but nothing is written and no journal
// entry is recorded. No destination is required.
func (i *Importer) Validate(ctx context.Context) (*Result, error) {
	started := time.Now()

	result, err := i.scan(nil)
	result.Duration = time.Since(started)
	if err != nil {
		return nil, err
	}

	return result, nil
}

// buildPlan fixes the source position and destination name of every mapped
// column, in schema order, and prepares the INSERT statement shared by all
// rows. Source columns absent from the mapping are dropped.
func (i *Importer) buildPlan() error {
	for idx, col := range i.schema.Columns {
		dst, ok := i.mapping.Destination(col.Name())
		if !ok {
			continue
		}

		i.plan = append(i.plan, planColumn{index: idx, destination: dst})
	}

	if len(i.plan) == 0 {
		return errors.New("no mapped columns present in the schema")
	}

	var database *string
	if i.config.Database != "" {
		database = utils.Ptr(i.config.Database)
	}

	names := make([]string, len(i.plan))
	for n, p := range i.plan {
		names[n] = p.destination
	}

	i.insertSQL = utils.NewSQLBuilder().
		InsertInto(database, i.mapping.Table).
		Columns(names...).
		Values(len(i.plan)).
		StringWithoutSemicolon()

	return nil
}

// scan reads every data row and applies sink to the mapped cell values of
// each. Row numbers in errors count from the first row of the file, header
// included. The returned Result is valid even when scan fails; its Rows field
// then holds the number of rows handled before the failure.
func (i *Importer) scan(sink func([]any) error) (*Result, error) {
	result := &Result{
		Table:   i.mapping.Table,
		Dropped: len(i.schema.Columns) - len(i.plan),
	}

	width := len(i.schema.Columns)

	rows, err := openRows(i.config.DataFile, width)
	if err != nil {
		return result, err
	}
	defer func() { _ = rows.Close() }()

	row := 0

	for {
		cells, err := rows.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, errors.Wrap(err, "failed to read data file")
		}

		row++
		if row == 1 && i.config.SkipHeader {
			continue
		}

		if len(cells) != width {
			return result, errors.Errorf("row %d has %d cells, expected %d", row, len(cells), width)
		}

		if sink != nil {
			args := make([]any, len(i.plan))
			for n, p := range i.plan {
				args[n] = cells[p.index]
			}

			if err := sink(args); err != nil {
				return result, errors.Wrapf(err, "failed to insert row %d", row)
			}
		}

		result.Rows++
	}

	return result, nil
}
