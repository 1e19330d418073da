package config

const (
	defaultConfigPath       = "~/.config/textanalyzer/config.toml"
	projectConfigName       = "textanalyzer.toml"
	defaultRunDir           = "~/.local/share/textanalyzer/run"
	defaultLogDir           = "~/.local/share/textanalyzer/logs"
	defaultAPIBind          = "127.0.0.1:7488"
	defaultMaxBodyBytes     = 1 << 20
	defaultReadTimeout      = 15
	defaultWriteTimeout     = 30
	defaultLogFormat        = "console"
	defaultLogLevel         = "info"
	defaultLogRetentionDays = 30
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Server: Server{
			Bind:         defaultAPIBind,
			MaxBodyBytes: defaultMaxBodyBytes,
			ReadTimeout:  defaultReadTimeout,
			WriteTimeout: defaultWriteTimeout,
		},
		Paths: Paths{
			RunDir: defaultRunDir,
			LogDir: defaultLogDir,
		},
		Logging: Logging{
			Format:        defaultLogFormat,
			Level:         defaultLogLevel,
			RetentionDays: defaultLogRetentionDays,
		},
		Metrics: Metrics{
			Enabled: true,
		},
	}
}
