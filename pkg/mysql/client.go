package mysql

import (
	"context"
	"database/sql"

	// Registers the "mysql" driver with database/sql.
	_ "github.com/go-sql-driver/mysql"
	"github.com/pkg/errors"
)

// Client wraps a MySQL connection used to read table definitions.
type Client struct {
	db *sql.DB
}

// NewClient creates a new MySQL client and verifies connectivity. The DSN
// uses the go-sql-driver format, e.g. "user:pass@tcp(host:3306)/database".
// The database named in the DSN is the one tables are described against.
//
// Example:
//
//	client, err := mysql.NewClient(ctx, "root@tcp(localhost:3306)/mydb")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer client.Close()
func NewClient(ctx context.Context, dsn string) (*Client, error) {
	db, err := sql.Open("mysql", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open MySQL connection")
	}

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to connect to MySQL")
	}

	return &Client{db: db}, nil
}

// Close closes the underlying connection pool.
func (c *Client) Close() error {
	return errors.Wrap(c.db.Close(), "failed to close MySQL connection")
}
