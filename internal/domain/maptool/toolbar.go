// Package maptool models the map interaction toolbar: four mutually
// exclusive drawing modes, an independent base-map toggle, and a momentary
// locate action. The toolbar is fully controlled; it retains no state beyond
// what the caller passes in.
package maptool

// ToolMode is the active map-drawing interaction.
type ToolMode string

const (
	// ToolNone means no drawing tool is active (plain pan).
	ToolNone      ToolMode = ""
	ToolSelect    ToolMode = "select"
	ToolPoint     ToolMode = "point"
	ToolPolygon   ToolMode = "polygon"
	ToolRectangle ToolMode = "rectangle"
)

// Valid reports whether the tool mode is one of the four drawing modes.
func (m ToolMode) Valid() bool {
	switch m {
	case ToolSelect, ToolPoint, ToolPolygon, ToolRectangle:
		return true
	default:
		return false
	}
}

// MapType is the base-map imagery selection, independent of ToolMode.
type MapType string

const (
	MapTypeRoadmap MapType = "roadmap"
	MapTypeHybrid  MapType = "hybrid"
)

// Valid reports whether the map type is supported.
func (t MapType) Valid() bool {
	return t == MapTypeRoadmap || t == MapTypeHybrid
}

// Toggle cycles between exactly the two supported map types.
// Unknown values normalize to roadmap.
func (t MapType) Toggle() MapType {
	if t == MapTypeRoadmap {
		return MapTypeHybrid
	}
	return MapTypeRoadmap
}

// NextActive returns the drawing mode that results from pressing mode m
// while cur is latched. Pressing the latched mode releases it; an invalid
// mode releases whatever is latched.
func NextActive(cur, m ToolMode) ToolMode {
	if !m.Valid() || cur == m {
		return ToolNone
	}
	return m
}

// Callbacks holds the externally supplied handlers the toolbar dispatches to.
// Every field is optional; invoking an absent callback is a no-op, not an
// error.
type Callbacks struct {
	Select    func()
	Point     func()
	Polygon   func()
	Rectangle func()
	MapType   func(MapType)
	Locate    func()
}

// Toolbar is a controlled view over the active tool and map type.
// Active is the single source of truth for which drawing mode is highlighted.
type Toolbar struct {
	Active  ToolMode
	MapType MapType
	On      Callbacks
}

// IsActive reports whether the given mode is the highlighted one.
func (t Toolbar) IsActive(m ToolMode) bool { return t.Active == m && m != ToolNone }

// Press dispatches the callback for a drawing-mode button.
// Unknown modes and absent callbacks are no-ops.
func (t Toolbar) Press(m ToolMode) {
	var cb func()
	switch m {
	case ToolSelect:
		cb = t.On.Select
	case ToolPoint:
		cb = t.On.Point
	case ToolPolygon:
		cb = t.On.Polygon
	case ToolRectangle:
		cb = t.On.Rectangle
	default:
		return
	}
	if cb != nil {
		cb()
	}
}

// ToggleMapType computes the next map type and dispatches it.
// It returns the next value so callers can hold the new state.
func (t Toolbar) ToggleMapType() MapType {
	next := t.MapType.Toggle()
	if t.On.MapType != nil {
		t.On.MapType(next)
	}
	return next
}

// Locate dispatches the momentary center-on-my-location action.
// It does not change the active tool.
func (t Toolbar) Locate() {
	if t.On.Locate != nil {
		t.On.Locate()
	}
}
