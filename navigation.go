package lightbox

// Key identifiers follow the DOM KeyboardEvent code/key values.
const (
	KeyEscape     = "Escape"
	KeyArrowLeft  = "ArrowLeft"
	KeyArrowRight = "ArrowRight"
	KeyLeft       = "Left"  // legacy key value
	KeyRight      = "Right" // legacy key value
)

// KeyEvent is a key press delivered to the viewer. Code identifies the
// physical key, Key the produced value.
type KeyEvent struct {
	Code string
	Key  string
}

// --- Navigation intents ---

// Close hides the viewer and notifies the host.
func (v *Viewer) Close() {
	if !v.open {
		return
	}
	v.SetOpen(false)
	v.render()
	v.log.Debug().Msg("close")
	v.host.Closed(v.id)
}

// RequestPrevious asks the host to show the previous item.
func (v *Viewer) RequestPrevious() {
	v.log.Debug().Msg("navigate previous")
	v.host.NavigatePrevious(v.id)
}

// RequestNext asks the host to show the next item.
func (v *Viewer) RequestNext() {
	v.log.Debug().Msg("navigate next")
	v.host.NavigateNext(v.id)
}

// HandleKey maps Escape to Close and the arrow keys to previous/next.
// It reports whether the key was consumed.
func (v *Viewer) HandleKey(e KeyEvent) bool {
	if !v.open {
		return false
	}
	switch {
	case e.Code == KeyEscape:
		v.Close()
	case e.Key == KeyArrowRight || e.Key == KeyRight:
		v.RequestNext()
	case e.Key == KeyArrowLeft || e.Key == KeyLeft:
		v.RequestPrevious()
	default:
		return false
	}
	return true
}

// --- Touch swipe ---

// swipeAllowed reports whether touch input may drive swipe navigation.
func (v *Viewer) swipeAllowed() bool {
	return v.open && !v.disableTouch && !v.zoom.Zoomed()
}

// HandleTouchStart begins a swipe at the first touch point's page X.
func (v *Viewer) HandleTouchStart(x float64) {
	if !v.swipeAllowed() {
		return
	}
	if _, ok := v.gesture.(Panning); ok {
		return
	}
	v.gesture = Swiping{StartX: x, CurrentX: x}
	v.render()
}

// HandleTouchMove follows the first touch point, sliding the viewer.
func (v *Viewer) HandleTouchMove(x float64) {
	s, ok := v.gesture.(Swiping)
	if !ok || !v.swipeAllowed() {
		return
	}
	s.CurrentX = x
	v.gesture = s
	v.slideX = s.Displacement()
	v.render()
}

// HandleTouchEnd finishes the swipe. A displacement beyond the threshold to
// the left requests the next item, to the right the previous one. The slide
// offset returns to zero whatever the outcome.
func (v *Viewer) HandleTouchEnd() {
	s, swiping := v.gesture.(Swiping)
	if swiping {
		v.gesture = Idle{}
	}
	v.slideX = 0
	v.render()

	if !swiping || !v.swipeAllowed() {
		return
	}
	moved := s.Displacement()
	switch {
	case moved < -v.swipeThreshold:
		v.RequestNext()
	case moved > v.swipeThreshold:
		v.RequestPrevious()
	}
}

// HandleTouchCancel abandons the swipe without navigating.
func (v *Viewer) HandleTouchCancel() {
	if _, ok := v.gesture.(Swiping); ok {
		v.gesture = Idle{}
	}
	v.slideX = 0
	v.render()
}
