package lightbox

import "github.com/rs/zerolog"

// Host receives navigation intents from a Viewer. The host owns the item
// collection and decides what to show next; the viewer never looks at it.
// Calls are made synchronously from the viewer's handlers.
type Host interface {
	NavigatePrevious(viewerID string)
	NavigateNext(viewerID string)
	Closed(viewerID string)
}

// Layout reports the rendered geometry the zoom/pan engine clamps against.
type Layout interface {
	// ViewportRect is the viewer's visible area in client coordinates.
	ViewportRect() Rect
	// ContentSize is the rendered size of the media before zoom is applied.
	ContentSize() Size
}

// PointerCapture routes all events of a pointer to the viewer while a pan
// session is active. It mirrors the DOM setPointerCapture family.
type PointerCapture interface {
	SetPointerCapture(pointerID int)
	ReleasePointerCapture(pointerID int)
	HasPointerCapture(pointerID int) bool
}

// --- Adapters ---

// HostFuncs adapts plain functions to the Host interface. Nil fields are
// skipped.
type HostFuncs struct {
	OnPrevious func(viewerID string)
	OnNext     func(viewerID string)
	OnClose    func(viewerID string)
}

// NavigatePrevious implements Host.
func (h HostFuncs) NavigatePrevious(id string) {
	if h.OnPrevious != nil {
		h.OnPrevious(id)
	}
}

// NavigateNext implements Host.
func (h HostFuncs) NavigateNext(id string) {
	if h.OnNext != nil {
		h.OnNext(id)
	}
}

// Closed implements Host.
func (h HostFuncs) Closed(id string) {
	if h.OnClose != nil {
		h.OnClose(id)
	}
}

// EventType identifies a host notification.
type EventType uint8

const (
	EventNavigatePrevious EventType = iota // move to the previous item
	EventNavigateNext                      // move to the next item
	EventClose                             // the viewer closed itself
)

// String returns the event name used in logs and replay output.
func (e EventType) String() string {
	switch e {
	case EventNavigatePrevious:
		return "previous"
	case EventNavigateNext:
		return "next"
	case EventClose:
		return "close"
	default:
		return "unknown"
	}
}

// Event is a host notification delivered through ChannelHost.
type Event struct {
	Type     EventType
	ViewerID string
}

// ChannelHost forwards notifications onto a buffered channel. Sends never
// block the viewer: when the buffer is full the event is dropped and logged.
type ChannelHost struct {
	C   chan Event
	log zerolog.Logger
}

// NewChannelHost creates a ChannelHost with the given buffer size (minimum 1).
func NewChannelHost(buffer int, log zerolog.Logger) *ChannelHost {
	if buffer < 1 {
		buffer = 1
	}
	return &ChannelHost{C: make(chan Event, buffer), log: log}
}

func (h *ChannelHost) send(e Event) {
	select {
	case h.C <- e:
	default:
		h.log.Warn().Str("event", e.Type.String()).Str("viewer", e.ViewerID).Msg("host channel full, event dropped")
	}
}

// NavigatePrevious implements Host.
func (h *ChannelHost) NavigatePrevious(id string) {
	h.send(Event{Type: EventNavigatePrevious, ViewerID: id})
}

// NavigateNext implements Host.
func (h *ChannelHost) NavigateNext(id string) {
	h.send(Event{Type: EventNavigateNext, ViewerID: id})
}

// Closed implements Host.
func (h *ChannelHost) Closed(id string) {
	h.send(Event{Type: EventClose, ViewerID: id})
}

// StaticLayout is a fixed Layout, useful for headless replay and tests.
type StaticLayout struct {
	Viewport Rect
	Content  Size
}

// ViewportRect implements Layout.
func (l StaticLayout) ViewportRect() Rect { return l.Viewport }

// ContentSize implements Layout.
func (l StaticLayout) ContentSize() Size { return l.Content }
