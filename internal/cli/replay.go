package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/phanxgames/lightbox"
	"github.com/phanxgames/lightbox/internal/config"
	"github.com/phanxgames/lightbox/internal/gallery"
)

var (
	replayViewportW float64
	replayViewportH float64
	replayContentW  float64
	replayContentH  float64
	replayMaxTicks  int
	replayGallery   []string
)

var replayCmd = &cobra.Command{
	Use:   "replay <script>",
	Short: "Run an input script against a headless viewer and print the result",
	Long: `Replays a JSON input script without opening a window and prints the host
events, the state at every screenshot step and the final viewer state as JSON.

With --gallery the viewer navigates a real gallery: content sizes come from
the image headers and every item change resets zoom.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		data, err := os.ReadFile(args[0])
		if err != nil {
			return fmt.Errorf("read script: %w", err)
		}
		log := newLogger(cfg, os.Stderr)

		res, err := replay(data, replayOptions{
			Viewport: lightbox.Size{Width: replayViewportW, Height: replayViewportH},
			Content:  lightbox.Size{Width: replayContentW, Height: replayContentH},
			MaxTicks: replayMaxTicks,
			Paths:    replayGallery,
			Config:   cfg,
		}, log)
		if err != nil {
			return err
		}
		if err := writeJSON(cmd.OutOrStdout(), res); err != nil {
			return err
		}
		if !res.Finished {
			return fmt.Errorf("script did not finish within %d ticks", replayMaxTicks)
		}
		return nil
	},
}

func init() {
	replayCmd.Flags().Float64Var(&replayViewportW, "width", 800, "viewport width")
	replayCmd.Flags().Float64Var(&replayViewportH, "height", 600, "viewport height")
	replayCmd.Flags().Float64Var(&replayContentW, "content-width", 0, "fitted content width (default: viewport width)")
	replayCmd.Flags().Float64Var(&replayContentH, "content-height", 0, "fitted content height (default: viewport height)")
	replayCmd.Flags().IntVar(&replayMaxTicks, "max-ticks", 10000, "give up after this many updates")
	replayCmd.Flags().StringSliceVar(&replayGallery, "gallery", nil, "navigate images in these paths")
	rootCmd.AddCommand(replayCmd)
}

type replayOptions struct {
	Viewport lightbox.Size
	Content  lightbox.Size
	MaxTicks int
	Paths    []string
	Config   *config.Config
}

type replayEvent struct {
	Tick int    `json:"tick"`
	Type string `json:"type"`
	Item string `json:"item,omitempty"`
}

type replaySnapshot struct {
	Tick  int            `json:"tick"`
	Label string         `json:"label"`
	State lightbox.State `json:"state"`
}

type replayResult struct {
	Finished  bool             `json:"finished"`
	Ticks     int              `json:"ticks"`
	Events    []replayEvent    `json:"events"`
	Snapshots []replaySnapshot `json:"snapshots,omitempty"`
	Item      string           `json:"item,omitempty"`
	State     lightbox.State   `json:"state"`
}

// replay drives a viewer from an input script. Host notifications go
// through a ChannelHost and are applied to the gallery, when there is one,
// after every tick.
func replay(script []byte, opts replayOptions, log zerolog.Logger) (*replayResult, error) {
	runner, err := lightbox.LoadScript(script)
	if err != nil {
		return nil, err
	}
	if opts.Config == nil {
		opts.Config = config.DefaultConfig()
	}
	if opts.MaxTicks <= 0 {
		opts.MaxTicks = 10000
	}
	if opts.Content.Width <= 0 {
		opts.Content.Width = opts.Viewport.Width
	}
	if opts.Content.Height <= 0 {
		opts.Content.Height = opts.Viewport.Height
	}

	var g *gallery.Gallery
	if len(opts.Paths) > 0 {
		g, err = gallery.New(opts.Paths, opts.Config.Gallery.Patterns, log)
		if err != nil {
			return nil, err
		}
	}

	layout := &lightbox.StaticLayout{
		Viewport: lightbox.Rect{Width: opts.Viewport.Width, Height: opts.Viewport.Height},
		Content:  opts.Content,
	}
	host := lightbox.NewChannelHost(64, log)
	vopts := opts.Config.Viewer.Options()
	vopts.Layout = layout
	vopts.Capture = lightbox.CaptureSet{}
	vopts.Logger = log
	v := lightbox.New(host, vopts)
	v.SetZoomable(opts.Config.Viewer.Zoomable)

	res := &replayResult{Events: []replayEvent{}}
	tick := 0
	runner.OnScreenshot = func(label string) {
		res.Snapshots = append(res.Snapshots, replaySnapshot{Tick: tick, Label: label, State: v.Snapshot()})
	}

	currentItem := ""
	sync := func() error {
		if g == nil {
			return nil
		}
		v.SetHideLeftArrow(!g.HasPrevious())
		v.SetHideRightArrow(!g.HasNext())
		item := g.Current()
		if item.ID == currentItem {
			return nil
		}
		size, err := gallery.DecodeSize(item.Path)
		if err != nil {
			return err
		}
		img := lightbox.Size{Width: float64(size.X), Height: float64(size.Y)}
		layout.Content = lightbox.FitContain(img, opts.Viewport)
		v.SetZoomKey(item.ID)
		currentItem = item.ID
		return nil
	}
	drain := func() {
		for {
			select {
			case e := <-host.C:
				if g != nil {
					switch e.Type {
					case lightbox.EventNavigateNext:
						g.NavigateNext(e.ViewerID)
					case lightbox.EventNavigatePrevious:
						g.NavigatePrevious(e.ViewerID)
					case lightbox.EventClose:
						g.Closed(e.ViewerID)
					}
				}
				ev := replayEvent{Tick: tick, Type: e.Type.String()}
				if g != nil {
					ev.Item = g.Current().Name
				}
				res.Events = append(res.Events, ev)
			default:
				return
			}
		}
	}

	for ; tick < opts.MaxTicks; tick++ {
		if runner.Done() && v.Pending() == 0 {
			break
		}
		if err := sync(); err != nil {
			return nil, err
		}
		runner.Step(v)
		v.Update()
		drain()
	}
	if err := sync(); err != nil {
		return nil, err
	}
	v.Update()

	res.Finished = runner.Done() && v.Pending() == 0
	res.Ticks = tick
	res.State = v.Snapshot()
	if g != nil {
		res.Item = g.Current().Name
	}
	log.Debug().Int("ticks", tick).Int("events", len(res.Events)).Bool("finished", res.Finished).Msg("replay done")
	return res, nil
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode result: %w", err)
	}
	return nil
}
