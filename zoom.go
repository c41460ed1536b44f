package lightbox

import "math"

// ZoomState is the scale and pan offset applied to the media content.
// Pan is measured in viewport pixels from the centered position.
type ZoomState struct {
	Scale float64
	Pan   Vec2
}

// IdentityZoom is the unzoomed, centered state.
var IdentityZoom = ZoomState{Scale: 1}

// Zoomed reports whether the content is magnified beyond its fitted size.
// Swipe navigation is suppressed and panning is allowed only while zoomed.
func (z ZoomState) Zoomed() bool {
	return z.Scale > 1
}

// zoomLimits holds the wheel zoom tuning taken from Options.
type zoomLimits struct {
	min, max float64
	step     float64
	epsilon  float64
}

func limitsFromOptions(o Options) zoomLimits {
	return zoomLimits{min: o.ZoomMin, max: o.ZoomMax, step: o.ZoomStep, epsilon: o.ZoomEpsilon}
}

// wheelScale returns the clamped scale after a wheel event with the given
// deltaY. Negative deltaY (scroll up / away) zooms in.
func (l zoomLimits) wheelScale(prev, deltaY float64) float64 {
	factor := math.Exp(-deltaY * l.step)
	return clampValue(prev*factor, l.min, l.max)
}

var defaultLimits = zoomLimits{
	min:     DefaultZoomMin,
	max:     DefaultZoomMax,
	step:    DefaultZoomStep,
	epsilon: DefaultZoomEpsilon,
}

// WheelZoom applies one wheel event to z using the default limits. pointer
// is the cursor position relative to the viewport center. The pan is
// adjusted so the content point under the cursor stays fixed, then clamped
// against the measured sizes. It returns false, with z unchanged, when the
// scale change is negligible.
func WheelZoom(z ZoomState, deltaY float64, pointer Vec2, viewport, content Size) (ZoomState, bool) {
	return defaultLimits.apply(z, deltaY, pointer, viewport, content)
}

func (l zoomLimits) apply(z ZoomState, deltaY float64, pointer Vec2, viewport, content Size) (ZoomState, bool) {
	if math.IsNaN(deltaY) {
		return z, false
	}
	prev := z.Scale
	if prev <= 0 {
		prev = 1
	}
	next := l.wheelScale(prev, deltaY)
	if math.Abs(next-prev) < l.epsilon {
		return z, false
	}

	ratio := next / prev
	out := ZoomState{
		Scale: next,
		Pan: Vec2{
			X: pointer.X - ratio*(pointer.X-z.Pan.X),
			Y: pointer.Y - ratio*(pointer.Y-z.Pan.Y),
		},
	}
	out.Pan = ClampPan(out.Scale, out.Pan, viewport, content)
	return out, true
}

// MaxPan returns the largest pan magnitude per axis that keeps the scaled
// content overlapping the viewport. Content smaller than the viewport on an
// axis cannot be panned on that axis.
func MaxPan(scale float64, viewport, content Size) Vec2 {
	return Vec2{
		X: math.Max((content.Width*scale-viewport.Width)/2, 0),
		Y: math.Max((content.Height*scale-viewport.Height)/2, 0),
	}
}

// ClampPan restricts pan to the range allowed at scale. An unzoomed scale
// always recenters. If either measurement is empty the pan is returned
// unchanged so a later, successful measurement can correct it.
func ClampPan(scale float64, pan Vec2, viewport, content Size) Vec2 {
	if scale <= 1 {
		return Vec2{}
	}
	if viewport.Empty() || content.Empty() {
		return pan
	}
	m := MaxPan(scale, viewport, content)
	return Vec2{
		X: clampValue(pan.X, -m.X, m.X),
		Y: clampValue(pan.Y, -m.Y, m.Y),
	}
}
