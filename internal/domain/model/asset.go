//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

import (
	"errors"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"
)

const maxAssetTitleLen = 255

// Asset is a custom prospect marker a broker dropped on the map.
// Coordinates are WGS84 (SRID 4326); the database stores them as a
// PostGIS point alongside the flat lat/lng columns used by the API.
type Asset struct {
	ID            string         `json:"id"                       db:"id"`
	Title         *string        `json:"title,omitempty"          db:"title"`
	Lat           float64        `json:"lat"                      db:"lat"`
	Lng           float64        `json:"lng"                      db:"lng"`
	Submarket     *string        `json:"submarket,omitempty"      db:"submarket"`
	Phone         *string        `json:"phone,omitempty"          db:"phone"`
	MarkerOptions map[string]any `json:"marker_options,omitempty" db:"marker_options"`
	Demo          bool           `json:"demo"                     db:"demo"`
	CreatedAt     time.Time      `json:"created_at"               db:"created_at"`
	UpdatedAt     time.Time      `json:"updated_at"               db:"updated_at"`
}

// DisplayTitle returns the asset title, or the literal default used by the
// marker info window when no title was supplied.
func (a *Asset) DisplayTitle() string {
	if a.Title != nil && strings.TrimSpace(*a.Title) != "" {
		return *a.Title
	}
	return "Custom Asset"
}

// CoordinateReadout formats the asset position to 5 decimal places for display.
func (a *Asset) CoordinateReadout() string {
	return strconv.FormatFloat(a.Lat, 'f', 5, 64) + ", " + strconv.FormatFloat(a.Lng, 'f', 5, 64)
}

// MapsSearchURL returns the external map-search hyperlink for the asset.
func (a *Asset) MapsSearchURL() string {
	return "https://www.google.com/maps/search/?api=1&query=" +
		strconv.FormatFloat(a.Lat, 'f', -1, 64) + "," +
		strconv.FormatFloat(a.Lng, 'f', -1, 64)
}

// CreateAssetRequest represents parameters to create an Asset.
type CreateAssetRequest struct {
	Title         *string        `json:"title,omitempty"`
	Lat           float64        `json:"lat"`
	Lng           float64        `json:"lng"`
	Submarket     *string        `json:"submarket,omitempty"`
	Phone         *string        `json:"phone,omitempty"`
	MarkerOptions map[string]any `json:"marker_options,omitempty"`
	Demo          bool           `json:"demo,omitempty"`
}

// Validate validates CreateAssetRequest.
func (r *CreateAssetRequest) Validate() error {
	if r.Lat < -90 || r.Lat > 90 {
		return errors.New("lat must be between -90 and 90")
	}
	if r.Lng < -180 || r.Lng > 180 {
		return errors.New("lng must be between -180 and 180")
	}
	if r.Title != nil && utf8.RuneCountInString(strings.TrimSpace(*r.Title)) > maxAssetTitleLen {
		return errors.New("title cannot exceed 255 characters")
	}
	return nil
}

// BoundingBox is a west/south/east/north envelope in WGS84 degrees.
type BoundingBox struct {
	West  float64
	South float64
	East  float64
	North float64
}

// Validate validates the envelope ordering and coordinate ranges.
func (b BoundingBox) Validate() error {
	if b.West < -180 || b.East > 180 || b.South < -90 || b.North > 90 {
		return errors.New("bbox coordinates out of range")
	}
	if b.West > b.East {
		return errors.New("bbox west must not exceed east")
	}
	if b.South > b.North {
		return errors.New("bbox south must not exceed north")
	}
	return nil
}

// AssetsListOptions controls paging and filtering for listing assets.
type AssetsListOptions struct {
	Limit     int
	Offset    int
	Submarket *string      // exact match
	Bounds    *BoundingBox // spatial envelope filter
	DemoOnly  bool
}
