// Package app is the desktop lightbox: an ebiten game that shows a gallery
// through a lightbox.Viewer.
package app

import (
	"context"
	"fmt"
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"github.com/rs/zerolog"

	"github.com/phanxgames/lightbox"
	"github.com/phanxgames/lightbox/internal/config"
	"github.com/phanxgames/lightbox/internal/gallery"
)

var (
	backgroundColor = color.RGBA{10, 10, 12, 255}
	captionColor    = color.RGBA{24, 24, 28, 255}
	chromeColor     = color.RGBA{255, 255, 255, 40}
)

// App implements ebiten.Game.
type App struct {
	cfg     *config.Config
	log     zerolog.Logger
	gallery *gallery.Gallery

	viewer   *lightbox.Viewer
	input    *lightbox.EbitenInput
	renderer *lightbox.Renderer
	smoother *lightbox.Smoother
	layout   *screenLayout
	capture  lightbox.CaptureSet

	runner  *lightbox.ScriptRunner
	shots   *screenshotter
	overlay overlay
	changes <-chan struct{}

	image     *ebiten.Image
	imageID   string
	displayed lightbox.Transform

	// ExitWhenScriptDone ends the game once the input script has finished.
	ExitWhenScriptDone bool
}

var _ ebiten.Game = (*App)(nil)

// New wires a viewer to g using cfg. The viewer starts open on the current
// item.
func New(cfg *config.Config, g *gallery.Gallery, log zerolog.Logger) *App {
	a := &App{
		cfg:      cfg,
		log:      log,
		gallery:  g,
		renderer: lightbox.NewRenderer(),
		layout:   &screenLayout{width: cfg.Window.Width, height: cfg.Window.Height},
		capture:  lightbox.CaptureSet{},
		shots:    newScreenshotter(cfg.ScreenshotDir, log),
	}

	opts := cfg.Viewer.Options()
	opts.Layout = a.layout
	opts.Capture = a.capture
	opts.Logger = log
	a.viewer = lightbox.New(g, opts)
	a.smoother = lightbox.NewSmoother(opts.Transition)

	a.input = lightbox.NewEbitenInput(a.viewer)
	a.input.Intercept = a.intercept

	a.viewer.SetZoomable(cfg.Viewer.Zoomable)
	a.viewer.SetOpen(true)
	return a
}

// SetScript replays r against the viewer, one step per tick.
func (a *App) SetScript(r *lightbox.ScriptRunner) {
	a.runner = r
	r.OnScreenshot = a.shots.Queue
}

// SetChanges makes the app rescan the gallery whenever ch is signalled.
func (a *App) SetChanges(ch <-chan struct{}) {
	a.changes = ch
}

// Viewer returns the wired viewer.
func (a *App) Viewer() *lightbox.Viewer { return a.viewer }

// intercept handles presses on the on-screen controls.
func (a *App) intercept(x, y float64) bool {
	switch a.layout.hitTest(x, y, a.viewer) {
	case hotspotPrevious:
		a.viewer.RequestPrevious()
	case hotspotNext:
		a.viewer.RequestNext()
	case hotspotClose:
		a.viewer.Close()
	default:
		return false
	}
	return true
}

// Update implements ebiten.Game.
func (a *App) Update() error {
	a.pollChanges()
	if err := a.syncItem(); err != nil {
		return err
	}

	a.input.Poll()
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		a.shots.Queue("manual")
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		a.overlay.Toggle()
	}
	if a.runner != nil {
		a.runner.Step(a.viewer)
	}
	a.viewer.Update()

	// Navigation during this tick moved the gallery; reset zoom before drawing.
	if a.gallery.Current().ID != a.imageID {
		if err := a.syncItem(); err != nil {
			return err
		}
		a.viewer.Update()
	}

	if a.gallery.IsClosed() || !a.viewer.Open() {
		a.log.Debug().Msg("viewer closed, exiting")
		return ebiten.Termination
	}
	if a.ExitWhenScriptDone && a.runner != nil && a.runner.Done() && a.viewer.Pending() == 0 && a.shots.Pending() == 0 {
		return ebiten.Termination
	}

	dt := 1 / float64(ebiten.TPS())
	a.displayed = a.smoother.Update(float32(dt), a.viewer.Transform())
	ebiten.SetCursorShape(cursorShape(a.viewer.Cursor()))
	a.overlay.Update(dt, a.viewer.Snapshot(), ebiten.ActualFPS(), ebiten.ActualTPS())
	return nil
}

func (a *App) pollChanges() {
	if a.changes == nil {
		return
	}
	select {
	case <-a.changes:
		if err := a.gallery.Rescan(); err != nil {
			a.log.Warn().Err(err).Msg("gallery rescan failed")
		}
	default:
	}
}

// syncItem loads the current gallery item when it differs from the one on
// screen and hands its identity to the viewer.
func (a *App) syncItem() error {
	item := a.gallery.Current()
	a.viewer.SetHideLeftArrow(!a.gallery.HasPrevious())
	a.viewer.SetHideRightArrow(!a.gallery.HasNext())
	if item.ID == a.imageID {
		return nil
	}

	src, err := item.Decode()
	if err != nil {
		return fmt.Errorf("load %s: %w", item.Name, err)
	}
	if a.image != nil {
		a.image.Deallocate()
	}
	a.image = ebiten.NewImageFromImage(src)
	a.imageID = item.ID
	b := src.Bounds()
	a.layout.image = lightbox.Size{Width: float64(b.Dx()), Height: float64(b.Dy())}

	a.viewer.SetZoomKey(item.ID)
	a.smoother.Reset()
	a.log.Debug().Str("item", item.Name).Int("index", a.gallery.Index()).Msg("showing item")
	return nil
}

// Draw implements ebiten.Game.
func (a *App) Draw(screen *ebiten.Image) {
	screen.Fill(backgroundColor)
	vp := a.layout.ViewportRect()
	a.renderer.Draw(screen, a.image, vp, a.displayed)
	a.drawChrome(screen)
	a.overlay.Draw(screen)
	a.shots.Flush(screen)
}

func (a *App) drawChrome(screen *ebiten.Image) {
	bar := a.layout.captionRect()
	fillRect(screen, bar, captionColor)
	if a.gallery.Len() > 0 {
		item := a.gallery.Current()
		caption := fmt.Sprintf("%s  (%d/%d)", item.Name, a.gallery.Index()+1, a.gallery.Len())
		ebitenutil.DebugPrintAt(screen, caption, int(bar.X)+chromeMargin, int(bar.Y+bar.Height/2)-8)
	}

	// The chrome slides with the swipe, like the rest of the viewer.
	slide := a.displayed.SlideX
	if a.viewer.ShowLeftArrow() {
		r := a.layout.leftArrowRect()
		r.X += slide
		drawButton(screen, r, "<")
	}
	if a.viewer.ShowRightArrow() {
		r := a.layout.rightArrowRect()
		r.X += slide
		drawButton(screen, r, ">")
	}
	drawButton(screen, a.layout.closeRect(), "x")
}

func fillRect(dst *ebiten.Image, r lightbox.Rect, clr color.Color) {
	vector.DrawFilledRect(dst, float32(r.X), float32(r.Y), float32(r.Width), float32(r.Height), clr, false)
}

func drawButton(dst *ebiten.Image, r lightbox.Rect, label string) {
	fillRect(dst, r, chromeColor)
	c := r.Center()
	ebitenutil.DebugPrintAt(dst, label, int(c.X)-3, int(c.Y)-8)
}

// Layout implements ebiten.Game. The logical screen follows the window.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	a.layout.width, a.layout.height = outsideWidth, outsideHeight
	return outsideWidth, outsideHeight
}

func cursorShape(c lightbox.CursorStyle) ebiten.CursorShapeType {
	switch c {
	case lightbox.CursorGrab:
		return ebiten.CursorShapePointer
	case lightbox.CursorGrabbing:
		return ebiten.CursorShapeMove
	default:
		return ebiten.CursorShapeDefault
	}
}

// Run opens the window and blocks until the viewer closes. A watched gallery
// is rescanned on file changes until Run returns.
func Run(ctx context.Context, cfg *config.Config, g *gallery.Gallery, runner *lightbox.ScriptRunner, log zerolog.Logger) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	a := New(cfg, g, log)
	if runner != nil {
		a.SetScript(runner)
		a.ExitWhenScriptDone = true
	}
	if cfg.Gallery.Watch {
		w, err := g.Watch(ctx)
		if err != nil {
			log.Warn().Err(err).Msg("gallery watch disabled")
		} else {
			a.SetChanges(w.Changes())
			go func() {
				for {
					select {
					case <-w.Done():
						return
					case err := <-w.Errors():
						log.Warn().Err(err).Msg("gallery watcher error")
					}
				}
			}()
		}
	}

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(cfg.Window.Fullscreen)

	start := time.Now()
	err := ebiten.RunGame(a)
	log.Debug().Dur("elapsed", time.Since(start)).Msg("window closed")
	return err
}
