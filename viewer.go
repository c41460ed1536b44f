package lightbox

import "github.com/rs/zerolog"

// changeSet records which host-owned properties changed since the last
// Update. Reconciliation runs once per Update, like a reactive render pass.
type changeSet uint8

const (
	changedOpen changeSet = 1 << iota
	changedZoomKey
	changedZoomable
)

func (c changeSet) has(f changeSet) bool { return c&f != 0 }

// Viewer is the modal media viewer engine: navigation, zoom/pan and input
// arbitration for a single displayed item.
//
// A Viewer is not safe for concurrent use. The host calls the Set* methods,
// the Handle* methods and Update from one goroutine (the game loop or UI
// thread), in dispatch order.
type Viewer struct {
	id      string
	host    Host
	layout  Layout
	capture PointerCapture
	log     zerolog.Logger

	limits          zoomLimits
	swipeThreshold  float64
	wheelLinePixels float64

	// Host-owned properties.
	open           bool
	zoomable       bool
	disableTouch   bool
	hideLeftArrow  bool
	hideRightArrow bool
	zoomKey        string
	changed        changeSet

	// Engine-owned state.
	zoom    ZoomState
	slideX  float64
	gesture Gesture

	transform Transform

	// Last measurements seen by Update, used to re-clamp after a resize.
	lastViewport Size
	lastContent  Size

	injectQueue []syntheticEvent
}

// New creates a closed viewer that reports navigation intents to host.
// A nil host discards them.
func New(host Host, opts Options) *Viewer {
	opts = opts.withDefaults()
	if host == nil {
		host = HostFuncs{}
	}
	v := &Viewer{
		id:              opts.ID,
		host:            host,
		layout:          opts.Layout,
		capture:         opts.Capture,
		log:             opts.Logger.With().Str("viewer", opts.ID).Logger(),
		limits:          limitsFromOptions(opts),
		swipeThreshold:  opts.SwipeThreshold,
		wheelLinePixels: opts.WheelLinePixels,
		zoom:            IdentityZoom,
		gesture:         Idle{},
	}
	v.render()
	return v
}

// --- Host-owned properties ---

// SetOpen shows or hides the viewer. Opening resets zoom on the next Update.
// Closing ends any gesture at once and releases pointer capture.
func (v *Viewer) SetOpen(open bool) {
	if v.open == open {
		return
	}
	v.open = open
	v.changed |= changedOpen
	if !open {
		v.endGesture()
		v.slideX = 0
		v.render()
	}
}

// SetZoomable enables or disables wheel zoom and drag panning.
func (v *Viewer) SetZoomable(zoomable bool) {
	if v.zoomable == zoomable {
		return
	}
	v.zoomable = zoomable
	v.changed |= changedZoomable
}

// SetZoomKey sets the identity of the displayed item. Any change resets zoom
// on the next Update.
func (v *Viewer) SetZoomKey(key string) {
	if v.zoomKey == key {
		return
	}
	v.zoomKey = key
	v.changed |= changedZoomKey
}

// SetDisableTouch suppresses swipe, wheel and pan handling while an external
// gesture (such as rectangle selection over the image) owns the input.
// Enabling it abandons any swipe or pan in progress.
func (v *Viewer) SetDisableTouch(disable bool) {
	if v.disableTouch == disable {
		return
	}
	v.disableTouch = disable
	if disable {
		v.endGesture()
		v.slideX = 0
		v.render()
	}
}

// SetHideLeftArrow hides the previous-item affordance at the start of the
// host's collection.
func (v *Viewer) SetHideLeftArrow(hide bool) { v.hideLeftArrow = hide }

// SetHideRightArrow hides the next-item affordance at the end of the host's
// collection.
func (v *Viewer) SetHideRightArrow(hide bool) { v.hideRightArrow = hide }

// --- Accessors ---

// ID returns the identifier sent with every host notification.
func (v *Viewer) ID() string { return v.id }

// Open reports whether the viewer is visible.
func (v *Viewer) Open() bool { return v.open }

// Zoomable reports whether zoom and pan are enabled.
func (v *Viewer) Zoomable() bool { return v.zoomable }

// ZoomKey returns the current item identity.
func (v *Viewer) ZoomKey() string { return v.zoomKey }

// DisableTouch reports whether gesture handling is suppressed.
func (v *Viewer) DisableTouch() bool { return v.disableTouch }

// Zoom returns the current scale and pan.
func (v *Viewer) Zoom() ZoomState { return v.zoom }

// Gesture returns the active gesture session.
func (v *Viewer) Gesture() Gesture { return v.gesture }

// SlideOffset returns the current swipe displacement of the viewer.
func (v *Viewer) SlideOffset() float64 { return v.slideX }

// Transform returns the derived visual state.
func (v *Viewer) Transform() Transform { return v.transform }

// ShowLeftArrow reports whether the previous-item affordance is visible.
func (v *Viewer) ShowLeftArrow() bool { return v.open && !v.hideLeftArrow }

// ShowRightArrow reports whether the next-item affordance is visible.
func (v *Viewer) ShowRightArrow() bool { return v.open && !v.hideRightArrow }

// Cursor returns the cursor the host should display over the content.
func (v *Viewer) Cursor() CursorStyle {
	if _, ok := v.gesture.(Panning); ok {
		return CursorGrabbing
	}
	if v.zoomable {
		return CursorGrab
	}
	return CursorDefault
}

// --- Lifecycle ---

// Update reconciles property changes made since the previous call, consumes
// at most one injected event and re-derives the transform. Call it once per
// tick or after the host changes properties.
func (v *Viewer) Update() {
	changed := v.changed
	v.changed = 0

	if (changed.has(changedOpen) || changed.has(changedZoomKey)) && v.open {
		v.ResetZoom()
	}
	if changed.has(changedZoomable) {
		v.clampPan()
	}
	v.reclampOnResize()

	v.processInjected()
	v.render()
}

// ResetZoom returns to scale 1 with no pan and ends any gesture session.
// Update calls it whenever the viewer opens or the item identity changes.
func (v *Viewer) ResetZoom() {
	v.zoom = IdentityZoom
	v.endGesture()
	v.render()
}

// endGesture drops the active session, releasing pointer capture when a pan
// was in progress.
func (v *Viewer) endGesture() {
	if p, ok := v.gesture.(Panning); ok {
		v.releaseCapture(p.PointerID)
	}
	v.gesture = Idle{}
}

// measure returns the current viewport and content sizes. Both are empty
// without a Layout.
func (v *Viewer) measure() (viewport, content Size) {
	if v.layout == nil {
		return Size{}, Size{}
	}
	return v.layout.ViewportRect().Size(), v.layout.ContentSize()
}

// clampPan constrains the pan to the current scale and measurements.
func (v *Viewer) clampPan() {
	viewport, content := v.measure()
	v.zoom.Pan = ClampPan(v.zoom.Scale, v.zoom.Pan, viewport, content)
}

func (v *Viewer) reclampOnResize() {
	viewport, content := v.measure()
	if viewport == v.lastViewport && content == v.lastContent {
		return
	}
	v.lastViewport, v.lastContent = viewport, content
	v.zoom.Pan = ClampPan(v.zoom.Scale, v.zoom.Pan, viewport, content)
}

// render is the single point where the derived transform is recomputed.
// Every state-mutating handler ends here.
func (v *Viewer) render() {
	_, panning := v.gesture.(Panning)
	slide := v.slideX
	if !v.open || v.zoom.Zoomed() {
		slide = 0
	}
	v.transform = Transform{
		Scale:   v.zoom.Scale,
		PanX:    v.zoom.Pan.X,
		PanY:    v.zoom.Pan.Y,
		SlideX:  slide,
		Panning: panning,
	}
}

// State is a serializable snapshot of a viewer.
type State struct {
	ID           string  `json:"id"`
	Open         bool    `json:"open"`
	Zoomable     bool    `json:"zoomable"`
	ZoomKey      string  `json:"zoomKey"`
	DisableTouch bool    `json:"disableTouch"`
	Scale        float64 `json:"scale"`
	PanX         float64 `json:"panX"`
	PanY         float64 `json:"panY"`
	SlideX       float64 `json:"slideX"`
	Gesture      string  `json:"gesture"`
	Cursor       string  `json:"cursor"`
	CSS          string  `json:"css"`
	SlideCSS     string  `json:"slideCss"`
}

// Snapshot returns the current state.
func (v *Viewer) Snapshot() State {
	t := v.transform
	return State{
		ID:           v.id,
		Open:         v.open,
		Zoomable:     v.zoomable,
		ZoomKey:      v.zoomKey,
		DisableTouch: v.disableTouch,
		Scale:        v.zoom.Scale,
		PanX:         v.zoom.Pan.X,
		PanY:         v.zoom.Pan.Y,
		SlideX:       t.SlideX,
		Gesture:      GestureName(v.gesture),
		Cursor:       v.Cursor().String(),
		CSS:          t.CSS(),
		SlideCSS:     t.SlideCSS(),
	}
}
