package docker_test

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/saintstack/mysqlimport/pkg/clickhouse"
	"github.com/saintstack/mysqlimport/pkg/consts"
	"github.com/saintstack/mysqlimport/pkg/docker"
	"github.com/stretchr/testify/require"
)

// skipIfNoDocker skips the test if Docker is not available
func skipIfNoDocker(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("Docker not available")
	}

	// Check if Docker daemon is running
	cmd := exec.Command("docker", "ps")
	if err := cmd.Run(); err != nil {
		t.Skip("Docker daemon not running")
	}
}

// writeServerConfig writes a minimal config.d directory for the container
func writeServerConfig(t *testing.T, tmpDir string) string {
	t.Helper()

	configDir := filepath.Join(tmpDir, "config.d")
	require.NoError(t, os.MkdirAll(configDir, consts.ModeDir))

	configContent := `<?xml version="1.0"?>
<clickhouse>
    <logger>
        <level>warning</level>
        <console>true</console>
    </logger>
    <listen_host>0.0.0.0</listen_host>
    <http_port>8123</http_port>
    <tcp_port>9000</tcp_port>
</clickhouse>`

	configFile := filepath.Join(configDir, "config.xml")
	require.NoError(t, os.WriteFile(configFile, []byte(configContent), consts.ModeFile))

	return configDir
}

func TestContainerLifecycle(t *testing.T) {
	skipIfNoDocker(t)

	opts := docker.DockerOptions{
		Version:   "25.7",
		Database:  "staging",
		ConfigDir: writeServerConfig(t, t.TempDir()),
	}
	container := docker.NewWithOptions(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	defer func() {
		_ = container.Stop(ctx)
	}()

	require.NoError(t, container.Start(ctx))
	require.True(t, container.IsRunning())

	// Starting twice is an error
	require.Error(t, container.Start(ctx))

	httpDSN, err := container.GetHTTPDSN()
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(httpDSN, "http://"))

	dsn, err := container.GetDSN()
	require.NoError(t, err)

	client, err := clickhouse.NewClient(ctx, dsn)
	require.NoError(t, err)
	defer func() { _ = client.Close() }()

	// the Database option created the database on startup
	rows, err := client.Query(ctx, "SELECT name FROM system.databases WHERE name = 'staging'")
	require.NoError(t, err)
	defer func() { _ = rows.Close() }()
	require.True(t, rows.Next())

	require.NoError(t, container.Stop(ctx))
	require.False(t, container.IsRunning())
}

func TestContainerNotRunning(t *testing.T) {
	container := docker.New()
	require.False(t, container.IsRunning())

	_, err := container.GetDSN()
	require.ErrorContains(t, err, "container is not running")

	_, err = container.GetHTTPDSN()
	require.ErrorContains(t, err, "container is not running")

	// Stopping a container that never started is a no-op
	require.NoError(t, container.Stop(context.Background()))
}
