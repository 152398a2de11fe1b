package model

import (
	"strings"
	"time"
)

// Submarket is a named trade area with an optional boundary geometry.
// The boundary lives only in the database (PostGIS polygon); the API surface
// exposes name and centroid.
type Submarket struct {
	ID          string    `json:"id"           db:"id"`
	Name        string    `json:"name"         db:"name"`
	CentroidLat float64   `json:"centroid_lat" db:"centroid_lat"`
	CentroidLng float64   `json:"centroid_lng" db:"centroid_lng"`
	Demo        bool      `json:"demo"         db:"demo"`
	CreatedAt   time.Time `json:"created_at"   db:"created_at"`
}

// UniqueSubmarketNames deduplicates submarket names case-insensitively,
// preserving the first-seen casing and original order. Names are trimmed
// before comparison; empty results are dropped.
func UniqueSubmarketNames(names []string) []string {
	seen := make(map[string]struct{}, len(names))
	out := make([]string, 0, len(names))
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		key := strings.ToLower(name)
		if _, ok := seen[key]; ok {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, name)
	}
	return out
}
