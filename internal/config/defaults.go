package config

const (
	defaultConfigPath         = "~/.config/reltag/config.toml"
	projectConfigFile         = "reltag.toml"
	defaultMaxSortPatterns    = 30
	defaultMatchTimeoutMillis = 250
	defaultWorkers            = 4
	defaultLogFormat          = "console"
	defaultLogLevel           = "info"
	defaultLogMaxSizeMB       = 10
	defaultLogMaxBackups      = 3
)

// Default returns a Config populated with repository defaults. Logging format
// and level stay empty so environment fallbacks can apply during Load.
func Default() Config {
	return Config{
		Parser: Parser{
			MaxSortPatterns:    defaultMaxSortPatterns,
			MatchTimeoutMillis: defaultMatchTimeoutMillis,
		},
		Classify: Classify{
			Workers: defaultWorkers,
		},
		Logging: Logging{
			MaxSizeMB:  defaultLogMaxSizeMB,
			MaxBackups: defaultLogMaxBackups,
		},
	}
}
