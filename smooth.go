package lightbox

import (
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Smoother eases the displayed zoom toward the viewer's transform over a
// short linear transition, so wheel steps do not jump. While panning the
// target is shown immediately so content tracks the cursor. The swipe slide
// offset always follows the finger and is never eased.
//
// The viewer's own state is never smoothed; only what is drawn.
type Smoother struct {
	duration float32
	tween    *gween.Tween
	from     Transform
	to       Transform
	current  Transform
	started  bool
}

// NewSmoother creates a Smoother with the given transition. A zero or
// negative duration disables smoothing.
func NewSmoother(d time.Duration) *Smoother {
	return &Smoother{
		duration: float32(d.Seconds()),
		current:  IdentityTransform,
	}
}

// Current returns the last displayed transform.
func (s *Smoother) Current() Transform {
	return s.current
}

// Update advances the transition by dt seconds toward target and returns the
// transform to draw this frame.
func (s *Smoother) Update(dt float32, target Transform) Transform {
	if !s.started || s.duration <= 0 || target.Panning {
		s.snap(target)
		return s.current
	}

	if !sameZoom(target, s.to, 1e-9) {
		// Retarget from wherever the display currently is.
		s.from = s.current
		s.to = target
		s.tween = gween.New(0, 1, s.duration, ease.Linear)
	}

	if s.tween == nil {
		s.current = target
		s.to = target
		return s.current
	}
	f, done := s.tween.Update(dt)
	s.current = s.from.Lerp(s.to, float64(f))
	if done {
		s.current = s.to
		s.tween = nil
	}
	s.current.SlideX = target.SlideX
	s.to.SlideX = target.SlideX
	return s.current
}

// sameZoom compares the eased fields of two transforms.
func sameZoom(a, b Transform, eps float64) bool {
	a.SlideX, b.SlideX = 0, 0
	return approxEqualTransform(a, b, eps)
}

// snap jumps to target, dropping any running transition.
func (s *Smoother) snap(target Transform) {
	s.started = true
	s.from = target
	s.to = target
	s.current = target
	s.tween = nil
}

// Reset jumps to target on the next Update. Hosts call it when the
// displayed item changes so the new item does not animate from the old one.
func (s *Smoother) Reset() {
	s.started = false
}
