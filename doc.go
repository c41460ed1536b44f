// Package lightbox is the interaction engine of a modal media viewer: the
// overlay that shows one photo at a time with previous/next navigation,
// cursor-anchored wheel zoom, drag panning and horizontal swipe.
//
// The engine is pure view state. A host owns the item collection, drives the
// [Viewer] with input events and property changes, and renders the derived
// [Transform]. An [Ebitengine] backend ([EbitenInput], [Renderer]) is
// included; web hosts can apply [Transform.CSS] directly.
//
// # Quick start
//
//	host := lightbox.HostFuncs{
//		OnNext:     func(string) { gallery.Next() },
//		OnPrevious: func(string) { gallery.Previous() },
//	}
//	v := lightbox.New(host, lightbox.Options{
//		Layout: &lightbox.StaticLayout{
//			Viewport: lightbox.Rect{Width: 800, Height: 600},
//			Content:  lightbox.Size{Width: 640, Height: 480},
//		},
//	})
//	v.SetZoomable(true)
//	v.SetOpen(true)
//	v.Update()
//
//	v.HandleWheel(lightbox.WheelEvent{DeltaY: -300, X: 400, Y: 300})
//	fmt.Println(v.Transform().CSS())
//
// # Input arbitration
//
// Only one gesture family is honored at a time, checked per event in a fixed
// priority order: a child drag-select ([Viewer.BeginDragSelect]) suppresses
// everything; zoom/pan runs only while zoomable; swipe navigation runs only
// while unzoomed. The live session is a [Gesture]: [Idle], [Panning] or
// [Swiping].
//
// # Lifecycle
//
// Property setters record changes; [Viewer.Update] reconciles them once per
// tick. Opening the viewer or changing the zoom key resets zoom so no state
// leaks between items.
//
// [Ebitengine]: https://ebitengine.org
package lightbox
