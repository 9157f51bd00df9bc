package main

import (
	"context"
	"os"
	"time"

	"github.com/saintstack/mysqlimport/pkg/cmd"
	"github.com/saintstack/mysqlimport/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	fx.New(
		fx.NopLogger,
		// Large loads run inside the start hook, so give them room to finish.
		fx.StartTimeout(time.Hour),
		fx.Provide(
			func() context.Context { return context.Background() },
			func() []string { return os.Args },
			func() *cmd.Version {
				return &cmd.Version{
					Version:   version,
					Commit:    commit,
					Timestamp: date,
				}
			},
		),
		config.Module,
		cmd.Module,
	).Run()
}
