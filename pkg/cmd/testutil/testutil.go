// Package testutil provides helpers for exercising CLI commands in tests.
package testutil

import (
	"context"
	"os/exec"
	"testing"

	"github.com/urfave/cli/v3"
)

// RunCommand executes a command under a throwaway parent application and
// returns the resulting error. Exit coder errors are handed back to the
// caller instead of terminating the test process.
func RunCommand(t *testing.T, command *cli.Command, args ...string) error {
	t.Helper()

	app := &cli.Command{
		Name:           "test",
		Commands:       []*cli.Command{command},
		ExitErrHandler: func(context.Context, *cli.Command, error) {},
	}

	return app.Run(t.Context(), append([]string{"test", command.Name}, args...))
}

// SkipIfNoDocker skips the test if Docker is not available
func SkipIfNoDocker(t *testing.T) {
	t.Helper()

	// Check if Docker binary exists
	if _, err := exec.LookPath("docker"); err != nil {
		t.Skip("Docker not available")
	}

	// Check if Docker daemon is running
	cmd := exec.CommandContext(t.Context(), "docker", "ps")
	if err := cmd.Run(); err != nil {
		t.Skip("Docker daemon not running")
	}
}
