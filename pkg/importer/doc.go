// Package importer loads mapped data rows into a ClickHouse table.
//
// The importer combines three inputs: a data file (CSV or XLSX), a schema
// document describing the source columns, and a mapping document naming the
// destination table and the destination column for each source column it
// keeps. Construction validates all three before any data movement occurs;
// a partially constructed importer never escapes.
//
// # Core Components
//
// The package provides the Importer type for running loads and supporting
// types for configuration and result handling:
//
//   - Importer: validates inputs and runs the load
//   - Config: input paths, destination, and load options
//   - Result: row counts and timing for a completed run
//   - Target: the destination seam, satisfied by clickhouse.Client
//
// # Usage Example
//
//	imp, err := importer.New(importer.Config{
//		DataFile:    "user.csv",
//		SchemaFile:  "user.xml",
//		MappingFile: "user.json",
//		SkipHeader:  true,
//		Journal:     true,
//		Target:      client,
//		Version:     "1.0.0",
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
//	fmt.Printf("loaded %d rows into %s in %v\n", result.Rows, result.Table, result.Duration)
//
// # Load Semantics
//
// Rows are read in file order and written one INSERT at a time. For each row,
// the cells of mapped source columns are bound to the destination columns in
// schema order; source columns absent from the mapping are dropped. A row
// whose width differs from the schema stops the load, naming the row. There
// is no batching, no retry, and no transaction: rows inserted before a
// failure stay inserted.
//
// # Journal Handling
//
// With journaling enabled, every run records one row in
// mysqlcsvimport.imports (created on first use with IF NOT EXISTS): what was
// loaded, where, how long it took, and the error that stopped it, if any. A
// journal write failure is reported as a warning and never fails the load
// itself.
package importer
