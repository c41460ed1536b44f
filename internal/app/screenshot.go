package app

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/rs/zerolog"
)

// screenshotter captures the rendered frame for every queued label at the
// end of Draw and writes each as a timestamped PNG.
type screenshotter struct {
	dir   string
	queue []string
	log   zerolog.Logger
	now   func() time.Time

	// written holds the paths of files created so far.
	written []string
	// taken counts captures per base name within stamp.
	stamp string
	taken map[string]int
}

func newScreenshotter(dir string, log zerolog.Logger) *screenshotter {
	return &screenshotter{dir: dir, log: log, now: time.Now, taken: map[string]int{}}
}

// Queue schedules a capture of the next drawn frame.
func (s *screenshotter) Queue(label string) {
	s.queue = append(s.queue, label)
}

// Pending returns the number of queued captures.
func (s *screenshotter) Pending() int { return len(s.queue) }

// Flush captures screen for every queued label.
func (s *screenshotter) Flush(screen *ebiten.Image) {
	if len(s.queue) == 0 {
		return
	}
	b := screen.Bounds()
	pixels := make([]byte, 4*b.Dx()*b.Dy())
	screen.ReadPixels(pixels)
	s.write(unpremultiply(pixels, b.Dx(), b.Dy()))
}

func (s *screenshotter) write(img *image.NRGBA) {
	defer func() { s.queue = s.queue[:0] }()

	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		s.log.Error().Err(err).Str("dir", s.dir).Msg("screenshot: mkdir failed")
		return
	}
	stamp := s.now().Format("20060102_150405")
	if stamp != s.stamp {
		s.stamp = stamp
		clear(s.taken)
	}
	for _, label := range s.queue {
		base := stamp + "_" + sanitizeLabel(label)
		name := base + ".png"
		if n := s.taken[base]; n > 0 {
			name = fmt.Sprintf("%s_%d.png", base, n)
		}
		s.taken[base]++
		path := filepath.Join(s.dir, name)
		if err := writePNG(path, img); err != nil {
			s.log.Error().Err(err).Msg("screenshot failed")
			continue
		}
		s.written = append(s.written, path)
		s.log.Info().Str("path", path).Msg("screenshot saved")
	}
}

// unpremultiply converts ebiten's premultiplied RGBA pixels to straight
// alpha.
func unpremultiply(pixels []byte, w, h int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	for i := 0; i+3 < len(pixels) && i+3 < len(img.Pix); i += 4 {
		r, g, b, a := pixels[i], pixels[i+1], pixels[i+2], pixels[i+3]
		if a > 0 && a < 255 {
			r = uint8(min(int(r)*255/int(a), 255))
			g = uint8(min(int(g)*255/int(a), 255))
			b = uint8(min(int(b)*255/int(a), 255))
		}
		img.Pix[i] = r
		img.Pix[i+1] = g
		img.Pix[i+2] = b
		img.Pix[i+3] = a
	}
	return img
}

// writePNG encodes an image to a PNG file at the given path.
func writePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return fmt.Errorf("encode %s: %w", path, err)
	}
	return f.Close()
}

// sanitizeLabel replaces characters that are unsafe in file names with
// underscores and falls back to "unlabeled" for empty strings.
func sanitizeLabel(label string) string {
	label = strings.TrimSpace(label)
	if label == "" {
		return "unlabeled"
	}
	var b strings.Builder
	b.Grow(len(label))
	for _, r := range label {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z',
			r >= '0' && r <= '9', r == '-', r == '.':
			b.WriteRune(r)
		default:
			b.WriteByte('_')
		}
	}
	return b.String()
}
