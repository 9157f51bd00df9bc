package docker

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/docker/docker/api/types/container"
	"github.com/docker/docker/api/types/mount"
	"github.com/docker/go-connections/nat"
	"github.com/pkg/errors"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/clickhouse"
	"github.com/testcontainers/testcontainers-go/wait"
)

const (
	// DefaultClickHousePort is the native protocol port for ClickHouse server
	DefaultClickHousePort = 9000

	// DefaultClickHouseHTTPPort is the HTTP port for ClickHouse server
	DefaultClickHouseHTTPPort = 8123
)

type (
	// DockerOptions represents options for running ClickHouse in Docker
	DockerOptions struct {
		// Version is the ClickHouse version to run (default: latest)
		Version string

		// Database is an optional database created on startup, so imports can
		// target it without a separate CREATE DATABASE step
		Database string

		// ConfigDir is an optional ClickHouse config directory mounted as
		// config.d (relative paths will be converted to absolute)
		ConfigDir string
	}

	// Container manages a disposable ClickHouse server for import testing
	Container struct {
		options   DockerOptions
		container *clickhouse.ClickHouseContainer
	}
)

// New creates a container handle with default options. The server is not
// started until Start is called.
//
// Example:
//
//	ch := docker.New()
//	if err := ch.Start(ctx); err != nil {
//		log.Fatal(err)
//	}
//	defer ch.Stop(ctx)
//
//	dsn, err := ch.GetDSN()
func New() *Container {
	return &Container{
		options: DockerOptions{},
	}
}

// NewWithOptions creates a container handle with custom options.
//
// Example:
//
//	ch := docker.NewWithOptions(docker.DockerOptions{
//		Version:  "25.7",
//		Database: "staging",
//	})
func NewWithOptions(opts DockerOptions) *Container {
	return &Container{
		options: opts,
	}
}

// Start starts a ClickHouse Docker container with the configured version.
// It blocks until the server answers on its HTTP interface or the readiness
// deadline expires.
func (c *Container) Start(ctx context.Context) error {
	if c.container != nil {
		return errors.New("container is already running")
	}

	customizers := []testcontainers.ContainerCustomizer{
		clickhouse.WithUsername("default"),
		clickhouse.WithPassword(""),
		testcontainers.WithEnv(map[string]string{"CLICKHOUSE_DEFAULT_ACCESS_MANAGEMENT": "1"}),
		testcontainers.WithWaitStrategyAndDeadline(
			5*time.Minute,
			wait.
				NewHTTPStrategy("/").
				WithPort(nat.Port(fmt.Sprintf("%d/tcp", DefaultClickHouseHTTPPort))).
				WithStatusCodeMatcher(func(status int) bool {
					return status == 200
				}),
		),
	}

	if c.options.Database != "" {
		customizers = append(customizers, clickhouse.WithDatabase(c.options.Database))
	}

	if c.options.ConfigDir != "" {
		modifier, err := configDirModifier(c.options.ConfigDir)
		if err != nil {
			return err
		}
		customizers = append(customizers, modifier)
	}

	container, err := clickhouse.Run(ctx, c.image(), customizers...)
	if err != nil {
		return errors.Wrap(err, "failed to start ClickHouse container")
	}

	c.container = container
	return nil
}

// Stop terminates and removes the container. Stopping a container that never
// started is a no-op.
func (c *Container) Stop(ctx context.Context) error {
	if c.container == nil {
		return nil
	}

	err := c.container.Terminate(ctx)
	c.container = nil

	if err != nil {
		return errors.Wrap(err, "failed to stop ClickHouse container")
	}

	return nil
}

// GetDSN returns the native protocol DSN for the running container, suitable
// for clickhouse.NewClient
func (c *Container) GetDSN() (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	dsn, err := c.container.ConnectionString(context.Background())
	if err != nil {
		return "", errors.Wrap(err, "failed to get connection string")
	}

	return dsn, nil
}

// GetHTTPDSN returns the HTTP DSN for the running container
func (c *Container) GetHTTPDSN() (string, error) {
	if c.container == nil {
		return "", errors.New("container is not running")
	}

	host, err := c.container.Host(context.Background())
	if err != nil {
		return "", errors.Wrap(err, "failed to get container host")
	}

	port, err := c.container.MappedPort(context.Background(), nat.Port(fmt.Sprintf("%d/tcp", DefaultClickHouseHTTPPort)))
	if err != nil {
		return "", errors.Wrap(err, "failed to get container port")
	}

	return fmt.Sprintf("http://%s:%s", host, port.Port()), nil
}

// IsRunning reports whether Start has run and Stop has not.
func (c *Container) IsRunning() bool {
	return c.container != nil
}

func (c *Container) image() string {
	version := c.options.Version
	if version == "" {
		version = "latest"
	}

	return fmt.Sprintf("clickhouse/clickhouse-server:%s-alpine", version)
}

// configDirModifier bind mounts dir over the server's config.d so custom
// settings apply to the containerized instance.
func configDirModifier(dir string) (testcontainers.ContainerCustomizer, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to get absolute path for ConfigDir: %s", dir)
	}

	return testcontainers.WithHostConfigModifier(func(hostConfig *container.HostConfig) {
		hostConfig.Mounts = []mount.Mount{
			{
				Type:   mount.TypeBind,
				Source: absDir,
				Target: "/etc/clickhouse-server/config.d",
			},
		}
	}), nil
}
