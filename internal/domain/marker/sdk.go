package marker

// Mapping-SDK and clipboard ports, defined consumer-side. Adapters over the
// real browser/SDK bridge satisfy these; tests use in-memory fakes.

import "context"

// Options is the free-form option bag handed to the mapping SDK when a
// marker is placed. Keys mirror the SDK's marker option names.
type Options map[string]any

// MapSurface is the slice of a map instance the factory needs.
type MapSurface interface {
	// NewMarker places a marker on the surface with the given options.
	NewMarker(opts Options) (Marker, error)

	// NewInfoWindow creates an unopened info window bound to this surface.
	NewInfoWindow() InfoWindow
}

// Marker is a placed map marker.
type Marker interface {
	// OnClick registers the click handler. Subsequent calls replace it.
	OnClick(fn func())

	// Remove detaches the marker from its surface.
	Remove()
}

// InfoWindow displays a content tree anchored to a marker.
// Content is structured nodes, never pre-serialized markup, so interaction
// handlers survive whatever sanitization the adapter applies.
type InfoWindow interface {
	SetContent(root *Node)
	Open(anchor Marker)
	Close()
}

// Clipboard writes text to the user's clipboard. The write may suspend and
// may be rejected in restricted contexts.
type Clipboard interface {
	WriteText(ctx context.Context, text string) error
}
