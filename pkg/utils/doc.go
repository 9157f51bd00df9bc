// Package utils provides common utility functions used throughout the mysqlcsvimport codebase.
//
// This package contains shared helpers used by multiple packages to keep identifier
// quoting and statement assembly consistent across the application.
//
// # Identifier Utilities (identifier.go)
//
// The identifier utilities provide consistent handling of ClickHouse SQL identifiers.
// Destination column names produced by a mapping frequently contain characters like
// ':' (for example "columns:userid"), so every identifier that ends up in a statement
// must be backtick quoted.
//
//	// Simple identifier
//	name := utils.BacktickIdentifier("user")
//	// Result: `user`
//
//	// Qualified identifier
//	qualified := utils.BacktickIdentifier("staging.user")
//	// Result: `staging`.`user`
//
//	// Already backticked (not double-backticked)
//	existing := utils.BacktickIdentifier("`user`")
//	// Result: `user`
//
// BacktickQualifiedName combines an optional database prefix with a table name:
//
//	db := "staging"
//	qualified := utils.BacktickQualifiedName(&db, "user")
//	// Result: `staging`.`user`
//
//	simple := utils.BacktickQualifiedName(nil, "user")
//	// Result: `user`
//
// # SQL Builder (sqlbuilder.go)
//
// SQLBuilder assembles the parameterized INSERT statements the importer sends for
// each accepted row:
//
//	sql := utils.NewSQLBuilder().
//		InsertInto(nil, "user").
//		Columns("columns:userid", "columns:nickname").
//		Values(2).
//		StringWithoutSemicolon()
//	// Result: INSERT INTO `user` (`columns:userid`, `columns:nickname`) VALUES (?, ?)
//
// The builder only quotes identifiers; values are always bound through placeholders,
// never interpolated into the statement text.
package utils
