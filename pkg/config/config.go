package config

import (
	"io"
	"os"

	"github.com/pkg/errors"
	"github.com/saintstack/mysqlimport/pkg/clickhouse"
	"github.com/saintstack/mysqlimport/pkg/consts"
	"gopkg.in/yaml.v3"
)

type (
	// ClickHouse represents destination connection settings.
	ClickHouse struct {
		// URL is the DSN of the destination server (host:port or a
		// clickhouse:// URL)
		URL string `yaml:"url,omitempty"`

		// Database optionally qualifies destination tables
		Database string `yaml:"database,omitempty"`

		// CertFile is the path to a client certificate for mTLS connections
		CertFile string `yaml:"cert_file,omitempty"`

		// KeyFile is the path to the client certificate's private key
		KeyFile string `yaml:"key_file,omitempty"`

		// CAFile is the path to a custom CA bundle used to verify the server
		CAFile string `yaml:"ca_file,omitempty"`
	}

	// Config represents the optional project configuration read from
	// mysqlcsvimport.yaml. Command line flags override these values; the
	// accessor methods apply defaults and are safe to call on a nil Config,
	// so commands behave the same whether or not the file exists.
	Config struct {
		// ClickHouse contains destination connection settings
		ClickHouse ClickHouse `yaml:"clickhouse"`

		// Strict requires every mapping key to name a schema column
		Strict bool `yaml:"strict,omitempty"`

		// Journal toggles recording runs in mysqlcsvimport.imports (on when
		// unset)
		Journal *bool `yaml:"journal,omitempty"`
	}
)

// LoadConfig parses a project configuration from the provided io.Reader.
//
// Example:
//
//	yamlData := `
//	clickhouse:
//	  url: clickhouse://localhost:9000
//	  database: staging
//	strict: true
//	`
//
//	cfg, err := config.LoadConfig(strings.NewReader(yamlData))
//	if err != nil {
//		panic(err)
//	}
//
//	fmt.Printf("Destination: %s\n", cfg.DSN())
func LoadConfig(r io.Reader) (*Config, error) {
	var cfg Config
	if err := yaml.NewDecoder(r).Decode(&cfg); err != nil {
		return nil, errors.Wrap(err, "failed to unmarshal config")
	}

	return &cfg, nil
}

// LoadConfigFile loads a project configuration from the specified file path.
// This is a convenience function that opens the file and calls LoadConfig.
//
// Example:
//
//	cfg, err := config.LoadConfigFile("mysqlcsvimport.yaml")
//	if err != nil {
//		log.Fatal("Failed to load config:", err)
//	}
func LoadConfigFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	return LoadConfig(f)
}

// DSN returns the configured destination DSN, falling back to the default
// when unset.
func (c *Config) DSN() string {
	if c == nil || c.ClickHouse.URL == "" {
		return consts.DefaultClickHouseURL
	}

	return c.ClickHouse.URL
}

// Database returns the configured destination database, if any.
func (c *Config) Database() string {
	if c == nil {
		return ""
	}

	return c.ClickHouse.Database
}

// ClientOptions returns the connection options derived from this
// configuration.
func (c *Config) ClientOptions() clickhouse.ClientOptions {
	if c == nil {
		return clickhouse.ClientOptions{}
	}

	return clickhouse.ClientOptions{
		Database: c.ClickHouse.Database,
		TLSSettings: clickhouse.TLSSettings{
			CertFile: c.ClickHouse.CertFile,
			KeyFile:  c.ClickHouse.KeyFile,
			CAFile:   c.ClickHouse.CAFile,
		},
	}
}

// StrictMode reports whether strict mapping validation is configured.
func (c *Config) StrictMode() bool {
	return c != nil && c.Strict
}

// JournalEnabled reports whether runs should be journaled.
func (c *Config) JournalEnabled() bool {
	if c == nil || c.Journal == nil {
		return true
	}

	return *c.Journal
}
