package config

import (
	"os"

	"github.com/saintstack/mysqlimport/pkg/consts"
	"go.uber.org/fx"
)

var Module = fx.Module("config", fx.Provide(
	// Function attempts to load the configuration from mysqlcsvimport.yaml
	// (or the path named by MYSQLCSVIMPORT_CONFIG) if it exists. Returns nil
	// if the file doesn't exist; the Config accessors tolerate that, so
	// commands run the same with or without a project file.
	func() (*Config, error) {
		path := os.Getenv(consts.ConfigEnvVar)
		if path == "" {
			path = consts.ConfigFile
		}

		if _, err := os.Stat(path); os.IsNotExist(err) {
			return nil, nil
		}

		return LoadConfigFile(path)
	},
))
