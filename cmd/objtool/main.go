// objtool inspects Wavefront OBJ files.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Faultbox/objmesh/internal/config"
	"github.com/Faultbox/objmesh/internal/logger"
	"github.com/Faultbox/objmesh/pkg/dataarray"
	"github.com/Faultbox/objmesh/pkg/obj"
)

var (
	overrides config.Overrides
	cfg       *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "objtool",
	Short: "Inspect Wavefront OBJ files",
	Long: `objtool loads the vertex, texture coordinate, normal, face and group
records of a Wavefront OBJ file and reports what it found.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load(overrides)
		if err != nil {
			return err
		}
		return logger.Init(cfg.Logging.Level, cfg.Logging.LogFile)
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Sync()
	},
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&overrides.ConfigPath, "config", "", "Path to config file")
	pf.BoolVar(&overrides.Debug, "debug", false, "Enable debug logging and diagnostics")
	pf.BoolVar(&overrides.Diagnostics, "diagnostics", false, "Report unrecognized records")
	pf.BoolVar(&overrides.TrackAlloc, "track-alloc", false, "Verify that the scene is fully released")
	pf.StringVar(&overrides.DefaultGroup, "default-group", "", "Name of the implicit first group")
	pf.StringVar(&overrides.LogFile, "log-file", "", "Also write logs to this file")
}

// withScene parses path, runs fn and releases the scene afterwards.
func withScene(path string, fn func(*obj.Scene) error) error {
	var tracker *dataarray.CountingTracker
	var t dataarray.Tracker
	if cfg.Parser.TrackAlloc {
		tracker = dataarray.NewCountingTracker()
		t = tracker
	}

	scene, err := obj.ParseFile(path, cfg.Parser.Options(logger.Log, t))
	if err != nil {
		return err
	}
	logger.Log.Info("parsed", zap.String("file", path), zap.Int("faces", scene.Faces.Len()))

	for _, d := range scene.Diagnostics {
		logger.Log.Debug("diagnostic", zap.Error(d))
	}

	fnErr := fn(scene)
	scene.Dispose()

	if tracker != nil {
		if err := tracker.Balanced(); err != nil {
			return err
		}
		logger.Log.Info("scene released", zap.Int("live", tracker.Live()))
	}
	return fnErr
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
