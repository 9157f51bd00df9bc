package consts

import "os"

const (
	// ModeDir is the standard file mode for creating directories
	ModeDir = os.FileMode(0o755)

	// ModeFile is the standard file mode for creating files
	ModeFile = os.FileMode(0o644)

	// ConfigFile is the optional project configuration file looked up in the
	// working directory
	ConfigFile = "mysqlcsvimport.yaml"

	// ConfigEnvVar overrides the configuration file location when set
	ConfigEnvVar = "MYSQLCSVIMPORT_CONFIG"

	// DefaultClickHouseURL is the destination DSN used when neither the config
	// file nor the --url flag provides one
	DefaultClickHouseURL = "localhost:9000"
)
