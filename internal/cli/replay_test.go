package cli

import (
	"bytes"
	"encoding/json"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phanxgames/lightbox"
	"github.com/phanxgames/lightbox/internal/config"
)

var replayViewport = lightbox.Size{Width: 800, Height: 600}

func TestReplayZoomPan(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "open"},
		{"action": "wheel", "x": 400, "y": 300, "deltaY": -462},
		{"action": "screenshot", "label": "zoomed"},
		{"action": "drag", "fromX": 400, "fromY": 300, "toX": 1400, "toY": 300, "frames": 3}
	]}`)

	res, err := replay(script, replayOptions{Viewport: replayViewport}, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, res.Finished)
	assert.Empty(t, res.Events)

	require.Len(t, res.Snapshots, 1)
	assert.Equal(t, "zoomed", res.Snapshots[0].Label)
	assert.Greater(t, res.Snapshots[0].State.Scale, 1.0)

	// Dragged far right, the pan saturates at (800*s - 800) / 2.
	want := (800*res.State.Scale - 800) / 2
	assert.InDelta(t, want, res.State.PanX, 1e-9)
	assert.Equal(t, "idle", res.State.Gesture)
}

func TestReplayEvents(t *testing.T) {
	script := []byte(`{"steps": [
		{"action": "open"},
		{"action": "swipe", "fromX": 200, "toX": 150},
		{"action": "key", "key": "ArrowLeft"},
		{"action": "key", "code": "Escape"}
	]}`)
	res, err := replay(script, replayOptions{Viewport: replayViewport}, zerolog.Nop())
	require.NoError(t, err)

	types := make([]string, len(res.Events))
	for i, e := range res.Events {
		types[i] = e.Type
	}
	assert.Equal(t, []string{"next", "previous", "close"}, types)
	assert.False(t, res.State.Open)
}

func TestReplayMaxTicks(t *testing.T) {
	script := []byte(`{"steps": [{"action": "wait", "frames": 100}]}`)
	res, err := replay(script, replayOptions{Viewport: replayViewport, MaxTicks: 5}, zerolog.Nop())
	require.NoError(t, err)
	assert.False(t, res.Finished)
	assert.Equal(t, 5, res.Ticks)
}

func TestReplayBadScript(t *testing.T) {
	_, err := replay([]byte(`{"steps": []}`), replayOptions{Viewport: replayViewport}, zerolog.Nop())
	assert.ErrorIs(t, err, lightbox.ErrEmptyScript)
}

func writeTestPNG(t *testing.T, path string, w, h int) {
	t.Helper()
	f, err := os.Create(path)
	require.NoError(t, err)
	defer f.Close()
	require.NoError(t, png.Encode(f, image.NewNRGBA(image.Rect(0, 0, w, h))))
}

func TestReplayGallery(t *testing.T) {
	dir := t.TempDir()
	writeTestPNG(t, filepath.Join(dir, "a.png"), 1600, 1200)
	writeTestPNG(t, filepath.Join(dir, "b.png"), 400, 300)

	script := []byte(`{"steps": [
		{"action": "open"},
		{"action": "wheel", "x": 400, "y": 300, "deltaY": -462},
		{"action": "key", "key": "ArrowRight"},
		{"action": "wait", "frames": 2},
		{"action": "key", "key": "ArrowRight"}
	]}`)
	res, err := replay(script, replayOptions{
		Viewport: replayViewport,
		Paths:    []string{dir},
		Config:   config.DefaultConfig(),
	}, zerolog.Nop())
	require.NoError(t, err)
	assert.True(t, res.Finished)
	assert.Equal(t, "b.png", res.Item)
	assert.Equal(t, 1.0, res.State.Scale, "item change resets zoom")
	assert.Equal(t, filepath.Join(dir, "b.png"), res.State.ZoomKey)

	require.Len(t, res.Events, 2)
	assert.Equal(t, "b.png", res.Events[0].Item)
	assert.Equal(t, "b.png", res.Events[1].Item, "next at the end stays put")
}

func TestWriteJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, writeJSON(&buf, &replayResult{Finished: true, Events: []replayEvent{}}))

	var out map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &out))
	assert.Equal(t, true, out["finished"])
	assert.Contains(t, out, "state")
}

func TestInitConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lightbox.yml")
	require.NoError(t, initConfig(path, false))

	err := initConfig(path, false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, initConfig(path, true))
	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, config.DefaultConfig(), cfg)
}
