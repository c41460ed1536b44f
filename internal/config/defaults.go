package config

import (
	"time"

	"github.com/phanxgames/lightbox"
)

// DefaultPath is the config file looked up when --config is not given.
const DefaultPath = ".lightbox.yml"

// DefaultPatterns match the image formats the gallery can decode.
var DefaultPatterns = []string{
	"**/*.{jpg,jpeg,png,gif,webp,bmp,tif,tiff}",
	"**/*.{JPG,JPEG,PNG,GIF,WEBP,BMP,TIF,TIFF}",
}

// DefaultConfig returns a Config populated with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Viewer: ViewerConfig{
			ZoomMin:         lightbox.DefaultZoomMin,
			ZoomMax:         lightbox.DefaultZoomMax,
			ZoomStep:        lightbox.DefaultZoomStep,
			ZoomEpsilon:     lightbox.DefaultZoomEpsilon,
			SwipeThreshold:  lightbox.DefaultSwipeThreshold,
			WheelLinePixels: lightbox.DefaultWheelLinePixels,
			TransitionMS:    int(lightbox.DefaultTransition / time.Millisecond),
			Zoomable:        true,
		},
		Window: WindowConfig{
			Title:  "lightbox",
			Width:  1280,
			Height: 800,
		},
		Gallery: GalleryConfig{
			Patterns: append([]string(nil), DefaultPatterns...),
			Watch:    true,
		},
		Log: LogConfig{
			Level:  "info",
			Format: "console",
		},
		ScreenshotDir: "screenshots",
	}
}

// Options converts the viewer section to lightbox.Options. Layout, capture
// and logger are left for the caller.
func (v ViewerConfig) Options() lightbox.Options {
	opts := lightbox.Options{
		ZoomMin:         v.ZoomMin,
		ZoomMax:         v.ZoomMax,
		ZoomStep:        v.ZoomStep,
		ZoomEpsilon:     v.ZoomEpsilon,
		SwipeThreshold:  v.SwipeThreshold,
		WheelLinePixels: v.WheelLinePixels,
		Transition:      time.Duration(v.TransitionMS) * time.Millisecond,
	}
	if v.TransitionMS == 0 {
		opts.Transition = -1
	}
	return opts
}
