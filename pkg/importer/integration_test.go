package importer_test

import (
	"context"
	"os/exec"
	"testing"
	"time"

	"github.com/saintstack/mysqlimport/pkg/clickhouse"
	"github.com/saintstack/mysqlimport/pkg/docker"
	"github.com/saintstack/mysqlimport/pkg/importer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// skipIfNoDocker skips the test if Docker is not available
func skipIfNoDocker(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("Docker not available")
	}

	cmd := exec.Command("docker", "ps")
	if err := cmd.Run(); err != nil {
		t.Skip("Docker daemon not running")
	}
}

func TestImporterAgainstClickHouse(t *testing.T) {
	skipIfNoDocker(t)

	container := docker.NewWithOptions(docker.DockerOptions{
		Version:  "25.7",
		Database: "staging",
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	defer func() {
		_ = container.Stop(ctx)
	}()

	require.NoError(t, container.Start(ctx), "Failed to start ClickHouse container")

	dsn, err := container.GetDSN()
	require.NoError(t, err)

	client, err := clickhouse.NewClient(ctx, dsn)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	err = client.Exec(ctx, "CREATE TABLE IF NOT EXISTS `user` (`columns:userid` String, `columns:nickname` String) ENGINE = MergeTree() ORDER BY `columns:userid`")
	require.NoError(t, err)

	config := testConfig()
	config.Target = client
	config.Journal = true
	config.Version = "integration-test"

	imp, err := importer.New(config)
	require.NoError(t, err)

	result, err := imp.Run(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, result.Rows)

	// Verify the loaded rows
	rows, err := client.Query(ctx, "SELECT `columns:userid`, `columns:nickname` FROM `user` ORDER BY `columns:userid`")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()

	var loaded [][]string
	for rows.Next() {
		var userid, nickname string
		require.NoError(t, rows.Scan(&userid, &nickname))
		loaded = append(loaded, []string{userid, nickname})
	}
	require.NoError(t, rows.Err())
	assert.Equal(t, [][]string{{"1", "stack"}, {"2", "duboce"}}, loaded)

	// Verify the journal entry
	journal, err := client.Query(ctx, "SELECT rows, error FROM mysqlcsvimport.imports")
	require.NoError(t, err)
	defer func() { _ = journal.Close() }()

	require.True(t, journal.Next(), "expected a journal entry")

	var (
		journaled  uint64
		errorValue *string
	)
	require.NoError(t, journal.Scan(&journaled, &errorValue))
	assert.Equal(t, uint64(2), journaled)
	assert.Nil(t, errorValue)
}
