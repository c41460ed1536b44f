package lightbox

import (
	"math"
	"math/rand"
	"testing"
)

func approxEqual(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

var (
	testViewport = Size{Width: 800, Height: 600}
	testContent  = Size{Width: 800, Height: 600}
)

// --- WheelZoom ---

func TestWheelZoomSaturatesAtMax(t *testing.T) {
	z, changed := WheelZoom(IdentityZoom, -100000, Vec2{}, testViewport, testContent)
	if !changed {
		t.Fatal("expected change")
	}
	if z.Scale != DefaultZoomMax {
		t.Errorf("Scale = %v, want %v", z.Scale, DefaultZoomMax)
	}
}

func TestWheelZoomSaturatesAtMin(t *testing.T) {
	start := ZoomState{Scale: 4, Pan: Vec2{X: 120, Y: -80}}
	z, changed := WheelZoom(start, 100000, Vec2{X: 30, Y: 40}, testViewport, testContent)
	if !changed {
		t.Fatal("expected change")
	}
	if z.Scale != DefaultZoomMin {
		t.Errorf("Scale = %v, want %v", z.Scale, DefaultZoomMin)
	}
	if z.Pan != (Vec2{}) {
		t.Errorf("Pan = %v, want origin at scale 1", z.Pan)
	}
}

func TestWheelZoomScaleAlwaysInRange(t *testing.T) {
	deltas := []float64{-1e9, -100000, -3000, -120, -1, 0, 1, 120, 3000, 100000, 1e9, math.Inf(1), math.Inf(-1)}
	z := IdentityZoom
	for _, d := range deltas {
		z, _ = WheelZoom(z, d, Vec2{X: 10, Y: -10}, testViewport, testContent)
		if z.Scale < DefaultZoomMin || z.Scale > DefaultZoomMax {
			t.Fatalf("deltaY %v: Scale = %v, outside [%v, %v]", d, z.Scale, DefaultZoomMin, DefaultZoomMax)
		}
	}
}

func TestWheelZoomDirection(t *testing.T) {
	in, _ := WheelZoom(IdentityZoom, -120, Vec2{}, testViewport, testContent)
	if in.Scale <= 1 {
		t.Errorf("negative deltaY should zoom in, Scale = %v", in.Scale)
	}
	want := math.Exp(120 * DefaultZoomStep)
	if !approxEqual(in.Scale, want, 1e-12) {
		t.Errorf("Scale = %v, want %v", in.Scale, want)
	}

	out, _ := WheelZoom(ZoomState{Scale: 2}, 120, Vec2{}, testViewport, testContent)
	if out.Scale >= 2 {
		t.Errorf("positive deltaY should zoom out, Scale = %v", out.Scale)
	}
}

func TestWheelZoomCenterAnchored(t *testing.T) {
	z := IdentityZoom
	for _, d := range []float64{-200, -200, 50, -400, 300} {
		z, _ = WheelZoom(z, d, Vec2{}, testViewport, testContent)
		if !approxEqual(z.Pan.X, 0, 1e-12) || !approxEqual(z.Pan.Y, 0, 1e-12) {
			t.Fatalf("deltaY %v at center: Pan = %v, want (0,0)", d, z.Pan)
		}
	}
}

func TestWheelZoomCursorAnchored(t *testing.T) {
	pointer := Vec2{X: 100, Y: 50}
	z, changed := WheelZoom(IdentityZoom, -200, pointer, testViewport, testContent)
	if !changed {
		t.Fatal("expected change")
	}

	// The content point under the cursor is the same before and after.
	before := IdentityTransform
	after := Transform{Scale: z.Scale, PanX: z.Pan.X, PanY: z.Pan.Y}
	bx, by := before.ViewportToContent(pointer.X, pointer.Y)
	ax, ay := after.ViewportToContent(pointer.X, pointer.Y)
	if !approxEqual(bx, ax, 1e-9) || !approxEqual(by, ay, 1e-9) {
		t.Errorf("content under cursor moved: before (%v,%v), after (%v,%v)", bx, by, ax, ay)
	}

	wantX := pointer.X * (1 - z.Scale)
	if !approxEqual(z.Pan.X, wantX, 1e-9) {
		t.Errorf("Pan.X = %v, want %v", z.Pan.X, wantX)
	}
}

func TestWheelZoomNegligibleDelta(t *testing.T) {
	start := ZoomState{Scale: 1.2, Pan: Vec2{X: 5, Y: 5}}
	z, changed := WheelZoom(start, 0.5, Vec2{X: 100}, testViewport, testContent)
	if changed {
		t.Error("deltaY 0.5 should be negligible")
	}
	if z != start {
		t.Errorf("state changed on negligible delta: %v", z)
	}

	if _, changed := WheelZoom(IdentityZoom, -1, Vec2{}, testViewport, testContent); !changed {
		t.Error("deltaY -1 should not be negligible")
	}
}

func TestWheelZoomNoChangeAtLimit(t *testing.T) {
	start := ZoomState{Scale: DefaultZoomMax}
	if _, changed := WheelZoom(start, -500, Vec2{}, testViewport, testContent); changed {
		t.Error("zooming in at max should be a no-op")
	}
	if _, changed := WheelZoom(IdentityZoom, 500, Vec2{}, testViewport, testContent); changed {
		t.Error("zooming out at min should be a no-op")
	}
}

func TestWheelZoomNaN(t *testing.T) {
	if _, changed := WheelZoom(IdentityZoom, math.NaN(), Vec2{}, testViewport, testContent); changed {
		t.Error("NaN delta should be ignored")
	}
}

// --- ClampPan ---

func TestClampPan(t *testing.T) {
	tests := []struct {
		name     string
		scale    float64
		pan      Vec2
		viewport Size
		content  Size
		want     Vec2
	}{
		{"unzoomed recenters", 1, Vec2{X: 40, Y: -40}, testViewport, testContent, Vec2{}},
		{"below one recenters", 0.5, Vec2{X: 40}, testViewport, testContent, Vec2{}},
		{"within bounds", 2, Vec2{X: 100, Y: -100}, testViewport, testContent, Vec2{X: 100, Y: -100}},
		{"clamped positive", 2, Vec2{X: 1000, Y: 1000}, testViewport, testContent, Vec2{X: 400, Y: 300}},
		{"clamped negative", 2, Vec2{X: -1000, Y: -1000}, testViewport, testContent, Vec2{X: -400, Y: -300}},
		{"narrow content locks x", 2, Vec2{X: 50, Y: 50}, testViewport, Size{Width: 300, Height: 600}, Vec2{X: 0, Y: 50}},
		{"empty viewport keeps pan", 2, Vec2{X: 5000}, Size{}, testContent, Vec2{X: 5000}},
		{"empty content keeps pan", 2, Vec2{X: 5000}, testViewport, Size{Width: 0, Height: 10}, Vec2{X: 5000}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ClampPan(tt.scale, tt.pan, tt.viewport, tt.content)
			if !approxEqual(got.X, tt.want.X, 1e-9) || !approxEqual(got.Y, tt.want.Y, 1e-9) {
				t.Errorf("ClampPan = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestMaxPan(t *testing.T) {
	m := MaxPan(3, Size{Width: 800, Height: 600}, Size{Width: 400, Height: 300})
	if !approxEqual(m.X, 200, 1e-9) || !approxEqual(m.Y, 150, 1e-9) {
		t.Errorf("MaxPan = %v, want (200,150)", m)
	}
	m = MaxPan(1.5, Size{Width: 800, Height: 600}, Size{Width: 400, Height: 300})
	if m != (Vec2{}) {
		t.Errorf("MaxPan with content smaller than viewport = %v, want zero", m)
	}
}

func TestClampPanRandomDrags(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	content := Size{Width: 640, Height: 480}
	for i := 0; i < 500; i++ {
		scale := 1 + rng.Float64()*7
		pan := Vec2{X: (rng.Float64() - 0.5) * 20000, Y: (rng.Float64() - 0.5) * 20000}
		got := ClampPan(scale, pan, testViewport, content)
		m := MaxPan(scale, testViewport, content)
		if math.Abs(got.X) > m.X+1e-9 || math.Abs(got.Y) > m.Y+1e-9 {
			t.Fatalf("scale %v pan %v: clamped %v exceeds %v", scale, pan, got, m)
		}
	}
}

func TestZoomFloorIsAlwaysFit(t *testing.T) {
	for _, floor := range []float64{0.5, 2} {
		v := New(nil, Options{
			ZoomMin: floor,
			Layout:  StaticLayout{Viewport: Rect{Width: 800, Height: 600}, Content: Size{Width: 800, Height: 600}},
		})
		v.SetZoomable(true)
		v.SetOpen(true)
		v.Update()

		v.HandleWheel(WheelEvent{DeltaY: 100000, X: 400, Y: 300})
		if got := v.Zoom().Scale; got != DefaultZoomMin {
			t.Errorf("ZoomMin %v: zoomed-out Scale = %v, want %v", floor, got, DefaultZoomMin)
		}
	}
}
