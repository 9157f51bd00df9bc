package mysql

import (
	"context"
	"database/sql"

	"github.com/pkg/errors"
	"github.com/saintstack/mysqlimport/pkg/schema"
)

// describeQuery mirrors the column set and ordering of a DESCRIBE statement.
const describeQuery = `
SELECT COLUMN_NAME, COLUMN_TYPE, IS_NULLABLE, COLUMN_KEY, COLUMN_DEFAULT, EXTRA
FROM INFORMATION_SCHEMA.COLUMNS
WHERE TABLE_SCHEMA = DATABASE() AND TABLE_NAME = ?
ORDER BY ORDINAL_POSITION`

// Describe reads the definition of table from the connected database and
// returns it as a schema document, one column per table column in definition
// order. Attributes without a value (an empty Key, a NULL default) are
// omitted, matching what a parsed describe document carries.
//
// Example:
//
//	s, err := client.Describe(ctx, "user")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Println(s.ColumnNames())
func (c *Client) Describe(ctx context.Context, table string) (*schema.Schema, error) {
	rows, err := c.db.QueryContext(ctx, describeQuery, table)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to describe table: %s", table)
	}
	defer func() { _ = rows.Close() }()

	s := &schema.Schema{Statement: "describe " + table}

	for rows.Next() {
		var (
			name, colType, nullable, key, extra string

			def sql.NullString
		)
		if err := rows.Scan(&name, &colType, &nullable, &key, &def, &extra); err != nil {
			return nil, errors.Wrapf(err, "failed to describe table: %s", table)
		}

		col, err := describedColumn(name, colType, nullable, key, def, extra)
		if err != nil {
			return nil, err
		}

		s.Columns = append(s.Columns, col)
	}

	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to describe table: %s", table)
	}

	if len(s.Columns) == 0 {
		return nil, errors.Errorf("no such table: %s", table)
	}

	return s, nil
}

// describedColumn converts one information_schema row into a column
// descriptor, dropping attributes whose value is empty or NULL.
func describedColumn(name, colType, nullable, key string, def sql.NullString, extra string) (*schema.Column, error) {
	var attrs []schema.Attr

	add := func(n, v string) {
		if v != "" {
			attrs = append(attrs, schema.Attr{Name: n, Value: v})
		}
	}

	add(schema.ColumnNameKey, name)
	add("Type", colType)
	add("Null", nullable)
	add("Key", key)
	if def.Valid {
		add("Default", def.String)
	}
	add("Extra", extra)

	return schema.NewColumn(attrs...)
}
