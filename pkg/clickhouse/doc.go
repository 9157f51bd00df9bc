// Package clickhouse wraps the native ClickHouse driver behind the small
// surface the importer needs: open a connection from a DSN, run statements,
// and query rows.
//
// DSNs can be a plain "host:port" pair or a full clickhouse:// / tcp:// URL,
// which is handed to the driver's own DSN parser:
//
//	client, err := clickhouse.NewClient(ctx, "localhost:9000")
//	if err != nil {
//		log.Fatal(err)
//	}
//	defer func() { _ = client.Close() }()
//
// Connections can be pointed at a specific database and secured with TLS via
// ClientOptions.
package clickhouse
