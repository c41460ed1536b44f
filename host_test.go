package lightbox

import (
	"testing"

	"github.com/rs/zerolog"
)

func TestHostFuncsNilSafe(t *testing.T) {
	var h HostFuncs
	h.NavigatePrevious("a")
	h.NavigateNext("a")
	h.Closed("a")

	var got []string
	h = HostFuncs{
		OnNext:  func(id string) { got = append(got, "next:"+id) },
		OnClose: func(id string) { got = append(got, "close:"+id) },
	}
	h.NavigatePrevious("b")
	h.NavigateNext("b")
	h.Closed("b")
	if len(got) != 2 || got[0] != "next:b" || got[1] != "close:b" {
		t.Errorf("calls = %v", got)
	}
}

func TestChannelHostDelivers(t *testing.T) {
	h := NewChannelHost(4, zerolog.Nop())
	v := New(h, Options{ID: "lb"})
	v.SetOpen(true)
	v.Update()

	v.RequestNext()
	v.RequestPrevious()
	v.Close()

	want := []Event{
		{Type: EventNavigateNext, ViewerID: "lb"},
		{Type: EventNavigatePrevious, ViewerID: "lb"},
		{Type: EventClose, ViewerID: "lb"},
	}
	for i, w := range want {
		select {
		case e := <-h.C:
			if e != w {
				t.Errorf("event %d = %+v, want %+v", i, e, w)
			}
		default:
			t.Fatalf("event %d missing", i)
		}
	}
}

func TestChannelHostDropsWhenFull(t *testing.T) {
	h := NewChannelHost(0, zerolog.Nop())
	if cap(h.C) != 1 {
		t.Fatalf("cap = %d, want minimum of 1", cap(h.C))
	}
	h.NavigateNext("lb")
	h.NavigateNext("lb") // dropped, must not block
	if len(h.C) != 1 {
		t.Errorf("len = %d, want 1", len(h.C))
	}
}

func TestEventTypeString(t *testing.T) {
	tests := map[EventType]string{
		EventNavigatePrevious: "previous",
		EventNavigateNext:     "next",
		EventClose:            "close",
		EventType(99):         "unknown",
	}
	for e, want := range tests {
		if got := e.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", e, got, want)
		}
	}
}
