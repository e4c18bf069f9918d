// Package config handles objtool configuration loading and management.
package config

import (
	"go.uber.org/zap"

	"github.com/Faultbox/objmesh/pkg/dataarray"
	"github.com/Faultbox/objmesh/pkg/obj"
)

// Config holds all objtool settings.
type Config struct {
	Parser  ParserConfig  `yaml:"parser"`
	Logging LoggingConfig `yaml:"logging"`
}

// ParserConfig holds OBJ parsing settings.
type ParserConfig struct {
	DefaultGroup    string `yaml:"default_group"`    // Name of the implicit first group
	Diagnostics     bool   `yaml:"diagnostics"`      // Report unrecognized records
	MaxLineBytes    int    `yaml:"max_line_bytes"`   // Longest accepted input line
	InitialCapacity int    `yaml:"initial_capacity"` // Initial size of scene arrays
	TrackAlloc      bool   `yaml:"track_alloc"`      // Verify scene teardown
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Parser: ParserConfig{
			DefaultGroup:    obj.DefaultGroupName,
			Diagnostics:     false,
			MaxLineBytes:    obj.DefaultMaxLineBytes,
			InitialCapacity: 100,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
	}
}

// Options converts parser settings into obj.Options.
func (p ParserConfig) Options(log *zap.Logger, tracker dataarray.Tracker) obj.Options {
	return obj.Options{
		DefaultGroup:    p.DefaultGroup,
		Diagnostics:     p.Diagnostics,
		MaxLineBytes:    p.MaxLineBytes,
		InitialCapacity: p.InitialCapacity,
		Logger:          log,
		Tracker:         tracker,
	}
}
