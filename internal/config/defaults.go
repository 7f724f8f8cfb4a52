package config

const (
	defaultStateDir               = "~/.local/share/scriptdesk"
	defaultLogDir                 = "~/.local/share/scriptdesk/logs"
	defaultLogFormat              = "console"
	defaultLogLevel               = "info"
	defaultMinFreeSpaceMB         = 64
	defaultPrefsEnabled           = true
	defaultMaxClusters            = 200
	defaultMaxDialoguesPerCluster = 500
)

// Default returns a Config populated with repository defaults.
func Default() Config {
	return Config{
		Paths: Paths{
			StateDir: defaultStateDir,
			LogDir:   defaultLogDir,
		},
		Daemon: Daemon{
			MinFreeSpaceMB: defaultMinFreeSpaceMB,
		},
		Prefs: Prefs{
			Enabled: defaultPrefsEnabled,
		},
		Logging: Logging{
			Format: defaultLogFormat,
			Level:  defaultLogLevel,
		},
		Limits: Limits{
			MaxClusters:            defaultMaxClusters,
			MaxDialoguesPerCluster: defaultMaxDialoguesPerCluster,
		},
	}
}
