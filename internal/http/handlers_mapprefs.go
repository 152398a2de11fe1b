package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/landsight/prospect-api/internal/domain/maptool"
)

// MapPrefsService defines the service surface the map preference handlers need.
type MapPrefsService interface {
	Get(ctx context.Context, userID string) (maptool.Preferences, error)
	SetMapType(ctx context.Context, userID string, mt maptool.MapType) (maptool.Preferences, error)
	SetActiveTool(ctx context.Context, userID string, tool maptool.ToolMode) (maptool.Preferences, error)
}

// MapPrefsHandlers provides HTTP handlers for per-user map toolbar state.
type MapPrefsHandlers struct {
	Svc MapPrefsService
}

// Get handles GET /api/map/prefs for the signed-in user.
func (h *MapPrefsHandlers) Get(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	prefs, err := h.Svc.Get(r.Context(), userID)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "prefs_read_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, prefs)
}

// SetMapType handles PUT /api/map/prefs/map-type. The active tool is
// untouched; base-map choice and drawing mode are independent axes.
func (h *MapPrefsHandlers) SetMapType(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		MapType maptool.MapType `json:"map_type"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if !req.MapType.Valid() {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_map_type",
			Err:     errors.New("map_type must be roadmap or hybrid"),
		})
		return
	}

	prefs, err := h.Svc.SetMapType(r.Context(), userID, req.MapType)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "prefs_write_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, prefs)
}

// SetActiveTool handles PUT /api/map/prefs/tool. Pressing the latched tool
// again releases it; the response carries the resulting state.
func (h *MapPrefsHandlers) SetActiveTool(w http.ResponseWriter, r *http.Request) {
	userID, ok := requireUserID(w, r)
	if !ok {
		return
	}

	var req struct {
		Tool maptool.ToolMode `json:"tool"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}
	if req.Tool != maptool.ToolNone && !req.Tool.Valid() {
		WriteError(w, ErrorParams{
			Code:    http.StatusBadRequest,
			ErrCode: "invalid_tool",
			Err:     errors.New("tool must be select, point, polygon, rectangle, or empty"),
		})
		return
	}

	prefs, err := h.Svc.SetActiveTool(r.Context(), userID, req.Tool)
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "prefs_write_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, prefs)
}

// requireUserID pulls the session user from context, writing a 401 when the
// route was mounted without RequireAuth.
func requireUserID(w http.ResponseWriter, r *http.Request) (string, bool) {
	session, ok := GetUserSessionFromContext(r.Context())
	if !ok || session == nil {
		WriteError(w, ErrorParams{
			Code:    http.StatusUnauthorized,
			ErrCode: "authentication_required",
			Err:     errors.New("authentication required"),
		})
		return "", false
	}
	return session.UserID, true
}
