package lightbox

// WheelEvent is a wheel rotation at a client-space cursor position. DeltaY
// is in pixels; positive scrolls down (zooms out).
type WheelEvent struct {
	DeltaY float64
	X, Y   float64
}

// PointerEvent is a pointer down, move, up or cancel in client coordinates.
type PointerEvent struct {
	PointerID int
	Type      PointerType
	Button    MouseButton
	X, Y      float64
}

// --- Drag-select arbitration ---

// BeginDragSelect is signalled by a child element (such as a region-marking
// layer over the image) when it starts its own drag. Until EndDragSelect all
// swipe, wheel and pan handling is suppressed.
func (v *Viewer) BeginDragSelect() {
	v.log.Debug().Msg("drag-select start")
	v.SetDisableTouch(true)
}

// EndDragSelect returns gesture handling to the viewer.
func (v *Viewer) EndDragSelect() {
	v.log.Debug().Msg("drag-select end")
	v.SetDisableTouch(false)
}

// --- Wheel zoom ---

// HandleWheel zooms about the cursor. It reports whether the event was
// consumed; hosts should prevent default scrolling when it was.
func (v *Viewer) HandleWheel(e WheelEvent) bool {
	if !v.open || !v.zoomable || v.disableTouch {
		return false
	}
	if v.layout == nil {
		return true
	}
	rect := v.layout.ViewportRect()
	center := rect.Center()
	pointer := Vec2{X: e.X - center.X, Y: e.Y - center.Y}

	next, changed := v.limits.apply(v.zoom, e.DeltaY, pointer, rect.Size(), v.layout.ContentSize())
	if !changed {
		return true
	}
	v.zoom = next
	v.render()
	return true
}

// --- Pointer pan ---

// panAllowed checks the preconditions for starting a pan session.
func (v *Viewer) panAllowed(e PointerEvent) bool {
	return v.open &&
		v.zoomable &&
		!v.disableTouch &&
		v.zoom.Zoomed() &&
		e.Type != PointerTouch &&
		e.Button == MouseButtonPrimary
}

// HandlePointerDown starts a pan session when the content is zoomed and the
// primary button of a non-touch pointer is pressed. It reports whether the
// event was consumed.
func (v *Viewer) HandlePointerDown(e PointerEvent) bool {
	switch g := v.gesture.(type) {
	case Swiping:
		return false
	case Panning:
		if g.PointerID == e.PointerID {
			return true
		}
		// The previous pointer never reported up; its session is stale.
		v.log.Debug().Int("pointer", g.PointerID).Msg("stale pan session dropped")
		v.endGesture()
	}
	if !v.panAllowed(e) {
		v.render()
		return false
	}

	v.gesture = Panning{
		PointerID:  e.PointerID,
		DragOrigin: Vec2{X: e.X, Y: e.Y},
		PanOrigin:  v.zoom.Pan,
	}
	if v.capture != nil {
		v.capture.SetPointerCapture(e.PointerID)
	}
	v.log.Debug().Int("pointer", e.PointerID).Float64("scale", v.zoom.Scale).Msg("pan start")
	v.render()
	return true
}

// HandlePointerMove moves the content with the captured pointer. Events from
// any other pointer are ignored.
func (v *Viewer) HandlePointerMove(e PointerEvent) bool {
	p, ok := v.gesture.(Panning)
	if !ok || !v.open || p.PointerID != e.PointerID || v.disableTouch {
		return false
	}
	delta := Vec2{X: e.X, Y: e.Y}.Sub(p.DragOrigin)
	v.zoom.Pan = p.PanOrigin.Add(delta)
	v.clampPan()
	v.render()
	return true
}

// HandlePointerUp ends the pan session of the captured pointer. An up event
// for a pointer that was never captured is ignored.
func (v *Viewer) HandlePointerUp(e PointerEvent) bool {
	p, ok := v.gesture.(Panning)
	if !ok || !v.open || p.PointerID != e.PointerID {
		return false
	}
	v.endGesture()
	v.log.Debug().Int("pointer", e.PointerID).Msg("pan end")
	v.render()
	return true
}

// HandlePointerCancel is identical to HandlePointerUp.
func (v *Viewer) HandlePointerCancel(e PointerEvent) bool {
	return v.HandlePointerUp(e)
}

func (v *Viewer) releaseCapture(pointerID int) {
	if v.capture != nil && v.capture.HasPointerCapture(pointerID) {
		v.capture.ReleasePointerCapture(pointerID)
	}
}

// CaptureSet is an in-memory PointerCapture for hosts without a native
// capture mechanism.
type CaptureSet map[int]bool

// SetPointerCapture implements PointerCapture.
func (c CaptureSet) SetPointerCapture(id int) { c[id] = true }

// ReleasePointerCapture implements PointerCapture.
func (c CaptureSet) ReleasePointerCapture(id int) { delete(c, id) }

// HasPointerCapture implements PointerCapture.
func (c CaptureSet) HasPointerCapture(id int) bool { return c[id] }
