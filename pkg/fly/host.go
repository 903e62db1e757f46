// ABOUTME: Host boundary: the element and document capabilities overlays consume
// ABOUTME: Implemented by pkg/tui for terminals and by fakes in tests

package fly

import (
	"github.com/mauromedda/fly-go/pkg/fly/event"
	"github.com/mauromedda/fly-go/pkg/fly/geom"
	"github.com/mauromedda/fly-go/pkg/fly/place"
)

// Element is a host node: an anchor or a panel.
// Implementations must be comparable (pointer types in practice).
type Element interface {
	event.Target
	geom.Boxer

	AddClass(names ...string)
	RemoveClass(names ...string)
	HasClass(name string) bool

	// SetContent replaces the element's content.
	SetContent(content string)
	// MoveTo places the element at document-relative coordinates.
	MoveTo(p place.Point)
	// Contains reports whether other is a strict descendant of the element.
	Contains(other event.Target) bool
	// Remove detaches the element from the document.
	Remove()
}

// Document is the host document. Its own Events receive document-level
// click and keydown events; Window receives resize.
type Document interface {
	event.Target

	Window() event.Target
	Scroll() geom.Offset
	// CreatePanel creates an empty panel element attached to the body.
	// roles tells the host which classes the overlay uses for the panel.
	CreatePanel(roles PanelClasses) Element
}

// PanelClasses names the class roles of a panel. Hosts that style by
// class can ignore it; hosts that draw panels themselves use Hide to
// decide visibility and Base as the modifier-class prefix.
type PanelClasses struct {
	Base string
	Hide string
}
