package service

import (
	"context"
	"errors"

	"github.com/landsight/prospect-api/internal/core"
	"github.com/landsight/prospect-api/internal/domain/maptool"
)

// MapPrefsServiceOptions groups dependencies for MapPrefsService.
type MapPrefsServiceOptions struct {
	Store core.MapPrefsStore
}

// MapPrefsService persists per-user toolbar state so the map reopens the
// way the broker left it. Tool activation rules live in maptool; this
// service only stores the outcome.
type MapPrefsService struct {
	store core.MapPrefsStore
}

// NewMapPrefsService constructs a new MapPrefsService.
func NewMapPrefsService(opts MapPrefsServiceOptions) *MapPrefsService {
	return &MapPrefsService{store: opts.Store}
}

// Get returns the user's stored preferences, or defaults when none exist.
func (s *MapPrefsService) Get(ctx context.Context, userID string) (maptool.Preferences, error) {
	if userID == "" {
		return maptool.DefaultPreferences(), errors.New("user ID is required")
	}
	return s.store.Get(ctx, userID)
}

// SetMapType stores the base-map choice, preserving the active tool.
func (s *MapPrefsService) SetMapType(ctx context.Context, userID string, mt maptool.MapType) (maptool.Preferences, error) {
	return s.update(ctx, userID, func(p maptool.Preferences) maptool.Preferences {
		p.MapType = mt
		return p
	})
}

// SetActiveTool stores the latched tool, preserving the base map. Activating
// the already-active tool clears it, matching toolbar toggle behavior.
func (s *MapPrefsService) SetActiveTool(ctx context.Context, userID string, tool maptool.ToolMode) (maptool.Preferences, error) {
	return s.update(ctx, userID, func(p maptool.Preferences) maptool.Preferences {
		p.ActiveTool = maptool.NextActive(p.ActiveTool, tool)
		return p
	})
}

func (s *MapPrefsService) update(ctx context.Context, userID string, fn func(maptool.Preferences) maptool.Preferences) (maptool.Preferences, error) {
	if userID == "" {
		return maptool.DefaultPreferences(), errors.New("user ID is required")
	}
	prefs, err := s.store.Get(ctx, userID)
	if err != nil {
		return maptool.DefaultPreferences(), err
	}
	prefs = fn(prefs).Normalize()
	if err := s.store.Save(ctx, userID, prefs); err != nil {
		return maptool.DefaultPreferences(), err
	}
	return prefs, nil
}
