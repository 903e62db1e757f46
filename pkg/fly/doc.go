// Package fly positions and drives floating panels (tooltips, dropdowns)
// relative to anchor elements.
//
// A Variant describes one kind of overlay: its default options, the trigger
// events bound on the anchor, and optional hooks. A Factory turns a Variant
// and an anchor into an independent Overlay instance with its own namespace,
// merged options and event registrations:
//
//	f := fly.NewFactory(doc, sched, fly.WithLogger(logger))
//	tip, err := f.Create(fly.Tooltip(), anchor, fly.WithText("Saved"))
//	...
//	tip.Destroy()
//
// The host (elements, document, window) is supplied through the Element and
// Document interfaces. All calls are expected on the host's single event
// loop; content resolution and delay timers re-enter through the Scheduler.
package fly
