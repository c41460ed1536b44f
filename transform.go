package lightbox

import (
	"math"
	"strconv"
)

// Transform is the visual state derived from a Viewer after every handler.
// Renderers read it; they never read the viewer's gesture state directly.
type Transform struct {
	Scale float64
	PanX  float64
	PanY  float64
	// SlideX is the horizontal offset of the whole viewer during a swipe.
	SlideX float64
	// Panning disables transform smoothing in the renderer.
	Panning bool
}

// identityTransform is the identity affine matrix.
var identityTransform = [6]float64{1, 0, 0, 1, 0, 0}

// IdentityTransform is the transform of an unzoomed, unswiped viewer.
var IdentityTransform = Transform{Scale: 1}

// CSS returns the content transform in the form a web host applies to the
// zoomed element: "translate3d(Xpx, Ypx, 0) scale(S)".
func (t Transform) CSS() string {
	return "translate3d(" + formatPx(t.PanX) + ", " + formatPx(t.PanY) + ", 0) scale(" + formatNum(t.Scale) + ")"
}

// SlideCSS returns the viewer-level swipe offset: "translateX(Npx)".
func (t Transform) SlideCSS() string {
	return "translateX(" + formatPx(t.SlideX) + ")"
}

func formatNum(v float64) string {
	if v == 0 {
		v = 0 // normalize -0
	}
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func formatPx(v float64) string {
	return formatNum(v) + "px"
}

// Matrix returns the affine matrix [a, b, c, d, tx, ty] mapping
// content-centered coordinates to viewport-centered coordinates. The
// content is scaled about its center, translated by the pan and shifted by
// the swipe offset.
//
//	| a  c  tx |
//	| b  d  ty |
//	| 0  0   1 |
func (t Transform) Matrix() [6]float64 {
	s := t.Scale
	if s == 0 {
		s = 1
	}
	return [6]float64{s, 0, 0, s, t.PanX + t.SlideX, t.PanY}
}

// ContentToViewport converts a point in content-centered coordinates (origin
// at the content center, unscaled pixels) to viewport-centered coordinates.
func (t Transform) ContentToViewport(x, y float64) (float64, float64) {
	return transformPoint(t.Matrix(), x, y)
}

// ViewportToContent is the inverse of ContentToViewport.
func (t Transform) ViewportToContent(x, y float64) (float64, float64) {
	return transformPoint(invertAffine(t.Matrix()), x, y)
}

// Lerp interpolates every numeric field from t toward o by f in [0, 1].
func (t Transform) Lerp(o Transform, f float64) Transform {
	f = clampValue(f, 0, 1)
	return Transform{
		Scale:   t.Scale + (o.Scale-t.Scale)*f,
		PanX:    t.PanX + (o.PanX-t.PanX)*f,
		PanY:    t.PanY + (o.PanY-t.PanY)*f,
		SlideX:  t.SlideX + (o.SlideX-t.SlideX)*f,
		Panning: o.Panning,
	}
}

// approxEqualTransform reports whether two transforms differ by less than eps
// on every numeric field.
func approxEqualTransform(a, b Transform, eps float64) bool {
	return math.Abs(a.Scale-b.Scale) < eps &&
		math.Abs(a.PanX-b.PanX) < eps &&
		math.Abs(a.PanY-b.PanY) < eps &&
		math.Abs(a.SlideX-b.SlideX) < eps
}

// --- Affine helpers ---

// multiplyAffine multiplies two 2D affine matrices: result = parent * child.
func multiplyAffine(p, c [6]float64) [6]float64 {
	return [6]float64{
		p[0]*c[0] + p[2]*c[1],
		p[1]*c[0] + p[3]*c[1],
		p[0]*c[2] + p[2]*c[3],
		p[1]*c[2] + p[3]*c[3],
		p[0]*c[4] + p[2]*c[5] + p[4],
		p[1]*c[4] + p[3]*c[5] + p[5],
	}
}

// invertAffine computes the inverse of a 2D affine matrix.
// Returns the identity matrix if the matrix is singular.
func invertAffine(m [6]float64) [6]float64 {
	det := m[0]*m[3] - m[2]*m[1]
	if det > -1e-12 && det < 1e-12 {
		return identityTransform
	}
	invDet := 1.0 / det
	a := m[3] * invDet
	b := -m[1] * invDet
	c := -m[2] * invDet
	d := m[0] * invDet
	return [6]float64{
		a, b, c, d,
		-(a*m[4] + c*m[5]),
		-(b*m[4] + d*m[5]),
	}
}

// transformPoint applies an affine matrix to a point.
func transformPoint(m [6]float64, x, y float64) (float64, float64) {
	return m[0]*x + m[2]*y + m[4], m[1]*x + m[3]*y + m[5]
}

// translateAffine returns a translation matrix.
func translateAffine(x, y float64) [6]float64 {
	return [6]float64{1, 0, 0, 1, x, y}
}

// scaleAffine returns a uniform scale matrix.
func scaleAffine(s float64) [6]float64 {
	return [6]float64{s, 0, 0, s, 0, 0}
}
