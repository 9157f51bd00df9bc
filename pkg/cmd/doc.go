// Package cmd provides CLI commands for the mysqlcsvimport tool.
//
// This package implements the command-line interface for mysqlcsvimport,
// providing the bare three-argument load invocation alongside named
// subcommands for validating inputs and generating the schema and mapping
// documents a load needs.
//
// # Available Commands
//
// The cmd package currently provides:
//   - load: Load a CSV dump into the destination ClickHouse table
//   - validate: Check the data, schema, and mapping files without loading
//   - schema dump: Describe a table on a live MySQL server as an XML document
//   - schema show: Print the columns described by a schema document
//   - mapping init: Generate an identity mapping for a schema document
//
// The bare invocation `mysqlcsvimport <csv_file> <table_schema>
// <column_mapping>` behaves exactly like `load`. Both exit with code 1 for a
// wrong argument count, 2 when the CSV file is missing, 3 when the schema
// document is missing, and 4 when the mapping document is missing.
//
// # Command Structure
//
// Each command is implemented as a separate function that returns a
// *cli.Command, following the urfave/cli/v3 pattern. Commands are collected
// into the application through the fx module in this package, which also
// invokes Run to wire the command tree to the process lifecycle.
//
// # Example Usage
//
// Commands are registered in the main application and can be invoked
// from the command line:
//
//	mysqlcsvimport user.csv user.xml user.json            # Bare invocation
//	mysqlcsvimport load user.csv user.xml user.json       # Same, named
//	mysqlcsvimport validate user.csv user.xml user.json   # Dry construction + scan
//	mysqlcsvimport schema dump --url root@tcp(db:3306)/app --table user
//	mysqlcsvimport schema show user.xml                   # Inspect a document
//	mysqlcsvimport mapping init --schema user.xml --table user
//
// Destination settings (connection URL, database, strict mode, journaling)
// can be given as flags or through the optional mysqlcsvimport.yaml
// configuration file; flags win when both are present.
package cmd
