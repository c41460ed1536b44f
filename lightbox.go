package lightbox

// Vec2 is a 2D vector used for cursor positions, pan offsets and drag origins.
type Vec2 struct {
	X, Y float64
}

// Add returns v + o.
func (v Vec2) Add(o Vec2) Vec2 {
	return Vec2{X: v.X + o.X, Y: v.Y + o.Y}
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{X: v.X - o.X, Y: v.Y - o.Y}
}

// Size is a rendered width and height in pixels.
type Size struct {
	Width, Height float64
}

// Empty reports whether either dimension is zero or negative. Layouts that
// have not been measured yet report an empty size.
func (s Size) Empty() bool {
	return s.Width <= 0 || s.Height <= 0
}

// Rect is an axis-aligned rectangle. The coordinate system has its origin at
// the top-left, with Y increasing downward.
type Rect struct {
	X, Y, Width, Height float64
}

// Contains reports whether the point (x, y) lies inside the rectangle.
// Points on the edge are considered inside.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x <= r.X+r.Width &&
		y >= r.Y && y <= r.Y+r.Height
}

// Center returns the midpoint of the rectangle.
func (r Rect) Center() Vec2 {
	return Vec2{X: r.X + r.Width/2, Y: r.Y + r.Height/2}
}

// Size returns the rectangle's dimensions.
func (r Rect) Size() Size {
	return Size{Width: r.Width, Height: r.Height}
}

// PointerType identifies the device that produced a pointer event.
type PointerType uint8

const (
	PointerMouse PointerType = iota // mouse or trackpad
	PointerPen                      // stylus
	PointerTouch                    // finger on a touch surface
)

// String returns the DOM name of the pointer type.
func (p PointerType) String() string {
	switch p {
	case PointerMouse:
		return "mouse"
	case PointerPen:
		return "pen"
	case PointerTouch:
		return "touch"
	default:
		return "unknown"
	}
}

// MouseButton identifies a mouse button using DOM button numbering.
type MouseButton uint8

const (
	MouseButtonPrimary   MouseButton = iota // primary (left) mouse button
	MouseButtonAuxiliary                    // middle mouse button (scroll wheel click)
	MouseButtonSecondary                    // secondary (right) mouse button
)

// CursorStyle is the cursor the host should show over the media content.
type CursorStyle uint8

const (
	CursorDefault  CursorStyle = iota // not zoomable
	CursorGrab                        // zoomable, idle
	CursorGrabbing                    // pan session in progress
)

// String returns the CSS cursor keyword.
func (c CursorStyle) String() string {
	switch c {
	case CursorGrab:
		return "grab"
	case CursorGrabbing:
		return "grabbing"
	default:
		return "default"
	}
}

// clampValue constrains v to [lo, hi].
func clampValue(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
