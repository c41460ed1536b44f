package lightbox

import "testing"

func drain(v *Viewer) int {
	n := 0
	for v.Pending() > 0 {
		v.Update()
		n++
	}
	return n
}

func TestInjectKeyConsumedOnUpdate(t *testing.T) {
	v, rec, _ := newTestViewer(t)
	v.InjectKey("", KeyArrowRight)
	if len(rec.events) != 0 {
		t.Fatal("injected key dispatched before Update")
	}
	v.Update()
	if e, ok := rec.last(); !ok || e != EventNavigateNext {
		t.Errorf("events = %v, want [next]", rec.events)
	}
}

func TestInjectKeyFillsCode(t *testing.T) {
	v, _, _ := newTestViewer(t)
	v.InjectKey(KeyEscape, "")
	v.Update()
	if v.Open() {
		t.Error("injected Escape should close the viewer")
	}
}

func TestInjectOneEventPerUpdate(t *testing.T) {
	v, _, _ := newTestViewer(t)
	v.InjectWheel(400, 300, -200)
	v.InjectWheel(400, 300, -200)
	if v.Pending() != 2 {
		t.Fatalf("Pending = %d, want 2", v.Pending())
	}
	v.Update()
	if v.Pending() != 1 {
		t.Errorf("Pending = %d after one Update, want 1", v.Pending())
	}
}

func TestInjectDrag(t *testing.T) {
	v, _, capture := newTestViewer(t)
	v.zoom = ZoomState{Scale: 2}

	v.InjectDrag(400, 300, 300, 250, 4)
	if v.Pending() != 5 {
		t.Fatalf("Pending = %d, want frames+1 = 5", v.Pending())
	}
	v.Update()
	if _, ok := v.Gesture().(Panning); !ok {
		t.Fatalf("Gesture = %T after press, want Panning", v.Gesture())
	}
	if !capture.HasPointerCapture(injectPointerID) {
		t.Error("injected pointer should be captured")
	}
	if n := drain(v); n != 4 {
		t.Errorf("drained %d events, want 4", n)
	}
	if z := v.Zoom(); z.Pan != (Vec2{X: -100, Y: -50}) {
		t.Errorf("Pan = %v, want (-100,-50)", z.Pan)
	}
	if _, ok := v.Gesture().(Idle); !ok {
		t.Errorf("Gesture = %T after release, want Idle", v.Gesture())
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	v, _, _ := newTestViewer(t)
	v.InjectDrag(0, 0, 10, 10, 0)
	if v.Pending() != 3 {
		t.Errorf("Pending = %d, want 3", v.Pending())
	}
}

func TestInjectSwipe(t *testing.T) {
	v, rec, _ := newTestViewer(t)
	v.InjectSwipe(200, 150, 3)
	if v.Pending() != 4 {
		t.Fatalf("Pending = %d, want 4", v.Pending())
	}
	v.Update() // start
	v.Update() // interpolated move to 175
	if got := v.SlideOffset(); got != -25 {
		t.Errorf("SlideOffset = %v, want -25", got)
	}
	drain(v)
	if e, ok := rec.last(); !ok || e != EventNavigateNext {
		t.Errorf("events = %v, want [next]", rec.events)
	}
}

func TestInjectDragSelect(t *testing.T) {
	v, _, _ := newTestViewer(t)
	v.InjectDragSelect(true)
	v.Update()
	if !v.DisableTouch() {
		t.Error("drag-select start should disable touch")
	}
	v.InjectDragSelect(false)
	v.Update()
	if v.DisableTouch() {
		t.Error("drag-select end should enable touch")
	}
}
