package lightbox

// syntheticKind selects the handler a queued synthetic event is fed to.
type syntheticKind uint8

const (
	synthKey syntheticKind = iota
	synthWheel
	synthPointerDown
	synthPointerMove
	synthPointerUp
	synthTouchStart
	synthTouchMove
	synthTouchEnd
	synthDragSelectStart
	synthDragSelectEnd
)

// injectPointerID is the pointer ID used for injected mouse drags.
const injectPointerID = 1

// syntheticEvent is a single injected input event. Client coordinates are
// used, identical to real input.
type syntheticEvent struct {
	kind    syntheticKind
	key     KeyEvent
	wheel   WheelEvent
	pointer PointerEvent
	touchX  float64
}

// InjectKey queues a key press. The event is consumed on the next Update.
func (v *Viewer) InjectKey(code, key string) {
	if key == "" {
		key = code
	}
	if code == "" {
		code = key
	}
	v.injectQueue = append(v.injectQueue, syntheticEvent{kind: synthKey, key: KeyEvent{Code: code, Key: key}})
}

// InjectWheel queues a wheel event at the given client coordinates.
func (v *Viewer) InjectWheel(x, y, deltaY float64) {
	v.injectQueue = append(v.injectQueue, syntheticEvent{
		kind:  synthWheel,
		wheel: WheelEvent{DeltaY: deltaY, X: x, Y: y},
	})
}

// InjectDrag queues a full primary-button mouse drag: press at (fromX, fromY),
// linearly interpolated moves over frames-2 intermediate frames, and release
// at (toX, toY). The release frame also moves to the end point first, so the
// sequence consumes frames+1 updates. Minimum frames is 2.
func (v *Viewer) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	ptr := func(x, y float64) PointerEvent {
		return PointerEvent{PointerID: injectPointerID, Type: PointerMouse, Button: MouseButtonPrimary, X: x, Y: y}
	}
	v.injectQueue = append(v.injectQueue, syntheticEvent{kind: synthPointerDown, pointer: ptr(fromX, fromY)})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		x := fromX + (toX-fromX)*t
		y := fromY + (toY-fromY)*t
		v.injectQueue = append(v.injectQueue, syntheticEvent{kind: synthPointerMove, pointer: ptr(x, y)})
	}
	v.injectQueue = append(v.injectQueue,
		syntheticEvent{kind: synthPointerMove, pointer: ptr(toX, toY)},
		syntheticEvent{kind: synthPointerUp, pointer: ptr(toX, toY)},
	)
}

// InjectSwipe queues a single-finger horizontal swipe from fromX to toX:
// touch start, frames-2 interpolated moves, a final move to toX and touch
// end, consuming frames+1 updates. Minimum frames is 2.
func (v *Viewer) InjectSwipe(fromX, toX float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	v.injectQueue = append(v.injectQueue, syntheticEvent{kind: synthTouchStart, touchX: fromX})
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		t := float64(i) / float64(steps+1)
		v.injectQueue = append(v.injectQueue, syntheticEvent{kind: synthTouchMove, touchX: fromX + (toX-fromX)*t})
	}
	v.injectQueue = append(v.injectQueue,
		syntheticEvent{kind: synthTouchMove, touchX: toX},
		syntheticEvent{kind: synthTouchEnd},
	)
}

// InjectDragSelect queues a child drag-select start (true) or end (false).
func (v *Viewer) InjectDragSelect(start bool) {
	kind := synthDragSelectEnd
	if start {
		kind = synthDragSelectStart
	}
	v.injectQueue = append(v.injectQueue, syntheticEvent{kind: kind})
}

// Pending returns the number of queued synthetic events.
func (v *Viewer) Pending() int {
	return len(v.injectQueue)
}

// processInjected pops one event from the inject queue and dispatches
// it. Returns true if an event was consumed.
func (v *Viewer) processInjected() bool {
	if len(v.injectQueue) == 0 {
		return false
	}
	evt := v.injectQueue[0]
	copy(v.injectQueue, v.injectQueue[1:])
	v.injectQueue = v.injectQueue[:len(v.injectQueue)-1]

	switch evt.kind {
	case synthKey:
		v.HandleKey(evt.key)
	case synthWheel:
		v.HandleWheel(evt.wheel)
	case synthPointerDown:
		v.HandlePointerDown(evt.pointer)
	case synthPointerMove:
		v.HandlePointerMove(evt.pointer)
	case synthPointerUp:
		v.HandlePointerUp(evt.pointer)
	case synthTouchStart:
		v.HandleTouchStart(evt.touchX)
	case synthTouchMove:
		v.HandleTouchMove(evt.touchX)
	case synthTouchEnd:
		v.HandleTouchEnd()
	case synthDragSelectStart:
		v.BeginDragSelect()
	case synthDragSelectEnd:
		v.EndDragSelect()
	}
	return true
}
