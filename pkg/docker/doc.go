// Package docker provides throwaway ClickHouse server containers for
// exercising imports against a real destination.
//
// Loads built by this project are plain INSERTs, but the surrounding
// machinery (DSN parsing, TLS, journal bootstrap) is only meaningful against
// a live server. This package stands one up on demand so integration tests
// and local rehearsals can run a full import and inspect the result, without
// requiring a shared ClickHouse installation.
//
// # Key Features
//
//   - Temporary ClickHouse containers with configurable server version
//   - Pre-created destination database for the import under test
//   - Optional config.d volume mount for server settings
//   - Automatic readiness wait on the HTTP interface
//   - Container lifecycle management with cleanup
//
// # Usage Example
//
//	import (
//		"context"
//		"github.com/saintstack/mysqlimport/pkg/clickhouse"
//		"github.com/saintstack/mysqlimport/pkg/docker"
//	)
//
//	container := docker.NewWithOptions(docker.DockerOptions{
//		Version:  "25.7",
//		Database: "staging",
//	})
//
//	ctx := context.Background()
//	defer container.Stop(ctx)
//
//	if err := container.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//
//	// Connect the import client to the container
//	dsn, _ := container.GetDSN()
//	client, _ := clickhouse.NewClient(ctx, dsn)
//	defer client.Close()
//
// The container is disposable: Stop terminates and removes it, and nothing
// persists between runs.
package docker
