package config

// Overrides holds command-line values that take priority over the config file.
type Overrides struct {
	ConfigPath   string
	Debug        bool
	Diagnostics  bool
	TrackAlloc   bool
	DefaultGroup string
	LogFile      string
}

// applyOverrides applies CLI flag overrides to the config.
func applyOverrides(cfg *Config, ov Overrides) {
	if ov.Debug {
		cfg.Logging.Level = "debug"
		cfg.Parser.Diagnostics = true
	}
	if ov.Diagnostics {
		cfg.Parser.Diagnostics = true
	}
	if ov.TrackAlloc {
		cfg.Parser.TrackAlloc = true
	}
	if ov.DefaultGroup != "" {
		cfg.Parser.DefaultGroup = ov.DefaultGroup
	}
	if ov.LogFile != "" {
		cfg.Logging.LogFile = ov.LogFile
	}
}
