package config

// Config is the top-level lightbox configuration, corresponding to
// .lightbox.yml.
type Config struct {
	Viewer        ViewerConfig  `yaml:"viewer" koanf:"viewer"`
	Window        WindowConfig  `yaml:"window" koanf:"window"`
	Gallery       GalleryConfig `yaml:"gallery" koanf:"gallery"`
	Log           LogConfig     `yaml:"log" koanf:"log"`
	ScreenshotDir string        `yaml:"screenshot_dir" koanf:"screenshot_dir"`
}

// ViewerConfig holds the zoom, pan and swipe tuning of the viewer.
type ViewerConfig struct {
	ZoomMin         float64 `yaml:"zoom_min" koanf:"zoom_min"`
	ZoomMax         float64 `yaml:"zoom_max" koanf:"zoom_max"`
	ZoomStep        float64 `yaml:"zoom_step" koanf:"zoom_step"`
	ZoomEpsilon     float64 `yaml:"zoom_epsilon" koanf:"zoom_epsilon"`
	SwipeThreshold  float64 `yaml:"swipe_threshold" koanf:"swipe_threshold"`
	WheelLinePixels float64 `yaml:"wheel_line_pixels" koanf:"wheel_line_pixels"`
	// TransitionMS is the display smoothing in milliseconds; 0 disables it.
	TransitionMS int  `yaml:"transition_ms" koanf:"transition_ms"`
	Zoomable     bool `yaml:"zoomable" koanf:"zoomable"`
}

// WindowConfig holds the desktop window settings.
type WindowConfig struct {
	Title      string `yaml:"title" koanf:"title"`
	Width      int    `yaml:"width" koanf:"width"`
	Height     int    `yaml:"height" koanf:"height"`
	Fullscreen bool   `yaml:"fullscreen" koanf:"fullscreen"`
}

// GalleryConfig controls which files are shown.
type GalleryConfig struct {
	// Patterns are doublestar globs matched against paths relative to each
	// scanned directory.
	Patterns []string `yaml:"patterns" koanf:"patterns"`
	// Watch rescans directories when files are added or removed.
	Watch bool `yaml:"watch" koanf:"watch"`
}

// LogConfig selects log level and output format.
type LogConfig struct {
	Level  string `yaml:"level" koanf:"level"`
	Format string `yaml:"format" koanf:"format"`
}
