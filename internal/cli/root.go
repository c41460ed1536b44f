// Package cli holds the cobra commands of the lightbox binary.
package cli

import (
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/lightbox/internal/config"
	"github.com/phanxgames/lightbox/internal/logging"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "lightbox",
	Short: "Modal image viewer with wheel zoom, drag pan and swipe navigation",
	Long: `lightbox shows the images of one or more directories one at a time.
Scroll to zoom about the cursor, drag to pan zoomed images, swipe or use the
arrow keys to move between images and press Escape to close.

Input scripts can be replayed in the window or headless for testing.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "config file path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

// loadConfig reads and validates the config named by --config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config %s: %w", cfgFile, err)
	}
	return cfg, nil
}

// newLogger builds the process logger from the config's log section.
// --verbose forces debug level.
func newLogger(cfg *config.Config, w io.Writer) zerolog.Logger {
	lc := logging.DefaultConfig()
	lc.Level = logging.ParseLevel(cfg.Log.Level)
	lc.Format = cfg.Log.Format
	if verbose {
		lc.Level = zerolog.DebugLevel
	}
	return logging.NewWithWriter(lc, w)
}
