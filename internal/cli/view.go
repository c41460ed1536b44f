package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/lightbox"
	"github.com/phanxgames/lightbox/internal/app"
	"github.com/phanxgames/lightbox/internal/gallery"
)

var (
	viewScript     string
	viewFullscreen bool
	viewNoWatch    bool
	viewStart      int
)

var viewCmd = &cobra.Command{
	Use:   "view [paths...]",
	Short: "Open the viewer over images in the given files or directories",
	Long: `Opens a window showing the images found in the given paths (default: the
current directory). Directories are searched with the gallery patterns from
the config file.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if viewFullscreen {
			cfg.Window.Fullscreen = true
		}
		if viewNoWatch {
			cfg.Gallery.Watch = false
		}
		log := newLogger(cfg, os.Stderr)

		if len(args) == 0 {
			args = []string{"."}
		}
		g, err := gallery.New(args, cfg.Gallery.Patterns, log)
		if err != nil {
			return err
		}
		g.Select(viewStart)
		log.Info().Int("items", g.Len()).Msg("gallery loaded")

		var runner *lightbox.ScriptRunner
		if viewScript != "" {
			data, err := os.ReadFile(viewScript)
			if err != nil {
				return fmt.Errorf("read script: %w", err)
			}
			runner, err = lightbox.LoadScript(data)
			if err != nil {
				return err
			}
		}
		return app.Run(cmd.Context(), cfg, g, runner, log)
	},
}

func init() {
	viewCmd.Flags().StringVar(&viewScript, "script", "", "replay a JSON input script in the window")
	viewCmd.Flags().BoolVar(&viewFullscreen, "fullscreen", false, "start fullscreen")
	viewCmd.Flags().BoolVar(&viewNoWatch, "no-watch", false, "do not rescan directories on changes")
	viewCmd.Flags().IntVar(&viewStart, "start", 0, "index of the first image shown")
	rootCmd.AddCommand(viewCmd)
}
