// Package pinchzoom is a pinch, drag and double-tap zoom engine for a single
// image-like element inside a fixed container.
//
// The engine is split into small parts. [TransformState] holds the zoom factor
// and pan offset, the [Recognizer] classifies touch snapshots into drag and
// zoom interactions, the [Scheduler] runs one eased tween at a time and the
// [Controller] ties them together. After every change the Controller pushes a
// [Transform] to its [Renderer].
//
// # Quick start
//
// On Ebitengine, [View] hosts a Controller, polls touch input (and the left
// mouse button) and draws the image clipped to its viewport:
//
//	view := pinchzoom.NewView(img, pinchzoom.Rect{Width: 640, Height: 480}, pinchzoom.DefaultConfig())
//
//	func (g *Game) Update() error        { g.view.Update(); return nil }
//	func (g *Game) Draw(s *ebiten.Image) { g.view.Draw(s) }
//
// Other hosts implement [Geometry] and [Renderer] themselves and feed
// [TouchEvent] snapshots to [Controller.HandleTouch], calling
// [Controller.Update] once per frame:
//
//	ctrl := pinchzoom.NewController(pinchzoom.DefaultConfig(), geom, nil)
//	ctrl.SetRenderer(renderer)
//	ctrl.Layout()
//
// # Coordinates
//
// The element is drawn at scale baseZoom×zoomFactor, where baseZoom fits the
// element inside the container. The offset is in container pixels and a
// point p of the element lands on screen at p×scale − offset. Live gestures
// may push the offset out of range; it is corrected with a short animation
// when the interaction ends.
//
// # Events
//
// Lifecycle moments (zoom start/update/end, drag start/update/end, double
// tap) reach [Config.Handlers], handlers registered with [Controller.On] and
// an optional [NotificationSink]. The ecs sub-package publishes
// notifications into a [Donburi] world.
//
// # Scripted input
//
// [Controller.InjectTap], [Controller.InjectDrag] and friends queue
// synthetic touch snapshots, and [LoadTestScript] drives them from JSON
// together with expectations and screenshots.
//
// [Donburi]: https://github.com/yohamta/donburi
package pinchzoom
