package maptool

// Preferences is a user's saved map state: the base layer and the last
// active drawing tool. It round-trips through storage as JSON.
type Preferences struct {
	MapType    MapType  `json:"map_type"`
	ActiveTool ToolMode `json:"active_tool"`
}

// DefaultPreferences returns the state a user starts with: roadmap imagery
// and no drawing tool armed.
func DefaultPreferences() Preferences {
	return Preferences{MapType: MapTypeRoadmap, ActiveTool: ToolNone}
}

// Normalize coerces out-of-range values back to safe defaults. Stored
// preferences may predate the current tool set.
func (p Preferences) Normalize() Preferences {
	if !p.MapType.Valid() {
		p.MapType = MapTypeRoadmap
	}
	if p.ActiveTool != ToolNone && !p.ActiveTool.Valid() {
		p.ActiveTool = ToolNone
	}
	return p
}
