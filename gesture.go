package lightbox

// Gesture is the live continuous-input session of a Viewer. It is one of
// Idle, Panning or Swiping; only one gesture family is active at a time.
type Gesture interface {
	gesture()
}

// Idle means no pointer or touch session is in progress.
type Idle struct{}

// Panning is an active pointer drag moving zoomed content.
type Panning struct {
	// PointerID is the captured pointer. Events from other pointers are ignored.
	PointerID int
	// DragOrigin is the cursor position at pointer down.
	DragOrigin Vec2
	// PanOrigin is the pan offset at pointer down.
	PanOrigin Vec2
}

// Swiping is an active horizontal touch swipe on unzoomed content.
type Swiping struct {
	StartX   float64
	CurrentX float64
}

func (Idle) gesture()    {}
func (Panning) gesture() {}
func (Swiping) gesture() {}

// Displacement is the horizontal travel of the swipe so far.
func (s Swiping) Displacement() float64 {
	return s.CurrentX - s.StartX
}

// GestureName returns a short label for logging and state dumps.
func GestureName(g Gesture) string {
	switch g.(type) {
	case Panning:
		return "panning"
	case Swiping:
		return "swiping"
	default:
		return "idle"
	}
}
