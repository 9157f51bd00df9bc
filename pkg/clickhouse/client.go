package clickhouse

import (
	"context"
	"strings"

	"github.com/ClickHouse/clickhouse-go/v2"
	"github.com/ClickHouse/clickhouse-go/v2/lib/driver"
	"github.com/pkg/errors"
)

type (
	// Client represents a ClickHouse database connection.
	Client struct {
		conn driver.Conn
	}

	// ClientOptions configures optional connection behavior.
	ClientOptions struct {
		// Database is the database statements run against when set. It overrides
		// any database named in the DSN.
		Database string

		// TLSSettings configures TLS when any of its files are provided.
		TLSSettings TLSSettings
	}
)

// NewClient creates a new ClickHouse client and verifies the server is
// reachable. The DSN can be a plain "host:port" pair or a clickhouse:// or
// tcp:// URL.
//
// Example:
//
//	client, err := clickhouse.NewClient(ctx, "localhost:9000")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer func() { _ = client.Close() }()
func NewClient(ctx context.Context, dsn string) (*Client, error) {
	return NewClientWithOptions(ctx, dsn, ClientOptions{})
}

// NewClientWithOptions creates a new ClickHouse client with the given options.
//
// Example:
//
//	client, err := clickhouse.NewClientWithOptions(ctx, "localhost:9440", clickhouse.ClientOptions{
//	    Database: "staging",
//	    TLSSettings: clickhouse.TLSSettings{
//	        CAFile:   "ca.pem",
//	        CertFile: "client.pem",
//	        KeyFile:  "client.key",
//	    },
//	})
func NewClientWithOptions(ctx context.Context, dsn string, opts ClientOptions) (*Client, error) {
	options, err := parseDSN(dsn)
	if err != nil {
		return nil, err
	}

	if opts.Database != "" {
		options.Auth.Database = opts.Database
	}

	if opts.TLSSettings.enabled() {
		tlsConfig, err := GetTLSConfig(opts.TLSSettings)
		if err != nil {
			return nil, err
		}
		options.TLS = tlsConfig
	}

	conn, err := clickhouse.Open(options)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open ClickHouse connection")
	}

	if err := conn.Ping(ctx); err != nil {
		_ = conn.Close()
		return nil, errors.Wrap(err, "failed to connect to ClickHouse")
	}

	return &Client{conn: conn}, nil
}

// parseDSN turns a DSN into driver options. URL style DSNs are delegated to the
// driver's parser, anything else is treated as a bare host:port address.
func parseDSN(dsn string) (*clickhouse.Options, error) {
	if strings.Contains(dsn, "://") {
		options, err := clickhouse.ParseDSN(dsn)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse ClickHouse DSN: %s", dsn)
		}
		return options, nil
	}

	return &clickhouse.Options{Addr: []string{dsn}}, nil
}

// Query runs a query that returns rows.
func (c *Client) Query(ctx context.Context, sql string, args ...any) (driver.Rows, error) {
	return c.conn.Query(ctx, sql, args...)
}

// Exec runs a statement that returns no rows.
func (c *Client) Exec(ctx context.Context, sql string, args ...any) error {
	return c.conn.Exec(ctx, sql, args...)
}

// Ping verifies the server is still reachable.
func (c *Client) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx)
}

// Version reports the server version string.
func (c *Client) Version(ctx context.Context) (string, error) {
	var version string
	if err := c.conn.QueryRow(ctx, "SELECT version()").Scan(&version); err != nil {
		return "", errors.Wrap(err, "failed to query ClickHouse version")
	}
	return version, nil
}

// Close closes the ClickHouse connection.
func (c *Client) Close() error {
	return c.conn.Close()
}
