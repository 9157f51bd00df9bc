package utils

import "strings"

// SQLBuilder provides a fluent interface for building the INSERT statements sent to
// ClickHouse during an import. It handles identifier backticking and placeholder
// generation so that callers never concatenate row values into statement text.
//
// Example usage:
//
//	sql := utils.NewSQLBuilder().
//		InsertInto(nil, "user").
//		Columns("columns:userid", "columns:nickname").
//		Values(2).
//		String()
//	// Output: INSERT INTO `user` (`columns:userid`, `columns:nickname`) VALUES (?, ?);
type SQLBuilder struct {
	parts []string
}

// NewSQLBuilder creates a new SQLBuilder instance.
func NewSQLBuilder() *SQLBuilder {
	return &SQLBuilder{
		parts: make([]string, 0, 4),
	}
}

// InsertInto adds an INSERT INTO clause for the given table, qualified with the
// database when one is provided.
//
// Example:
//
//	builder.InsertInto(nil, "user")                   // INSERT INTO `user`
//	builder.InsertInto(utils.Ptr("staging"), "user")  // INSERT INTO `staging`.`user`
func (b *SQLBuilder) InsertInto(database *string, table string) *SQLBuilder {
	b.parts = append(b.parts, "INSERT", "INTO", BacktickQualifiedName(database, table))
	return b
}

// Columns adds a parenthesized, backticked column list.
//
// Example:
//
//	builder.Columns("columns:userid")  // (`columns:userid`)
func (b *SQLBuilder) Columns(names ...string) *SQLBuilder {
	if len(names) == 0 {
		return b
	}
	quoted := make([]string, len(names))
	for i, name := range names {
		quoted[i] = BacktickIdentifier(name)
	}
	b.parts = append(b.parts, "("+strings.Join(quoted, ", ")+")")
	return b
}

// Values adds a VALUES clause with count bind placeholders.
//
// Example:
//
//	builder.Values(3)  // VALUES (?, ?, ?)
func (b *SQLBuilder) Values(count int) *SQLBuilder {
	if count <= 0 {
		return b
	}
	placeholders := make([]string, count)
	for i := range placeholders {
		placeholders[i] = "?"
	}
	b.parts = append(b.parts, "VALUES ("+strings.Join(placeholders, ", ")+")")
	return b
}

// Raw adds raw SQL text to the builder. Use sparingly for constructs that don't
// fit the fluent pattern.
//
// Example:
//
//	builder.Raw("SETTINGS async_insert = 1")
func (b *SQLBuilder) Raw(sql string) *SQLBuilder {
	if sql != "" {
		b.parts = append(b.parts, sql)
	}
	return b
}

// String builds and returns the final SQL statement with a semicolon.
func (b *SQLBuilder) String() string {
	if len(b.parts) == 0 {
		return ""
	}
	return strings.Join(b.parts, " ") + ";"
}

// StringWithoutSemicolon builds and returns the final SQL statement without a
// trailing semicolon. This is the form handed to the ClickHouse driver, which
// binds the placeholder arguments itself.
func (b *SQLBuilder) StringWithoutSemicolon() string {
	return strings.Join(b.parts, " ")
}
