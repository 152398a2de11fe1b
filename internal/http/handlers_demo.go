package httpx

import (
	"context"
	"errors"
	"net/http"

	"github.com/landsight/prospect-api/internal/domain/maptool"
)

// DemoService defines the service surface the demo handlers need.
type DemoService interface {
	Enabled(ctx context.Context) (bool, error)
	SetEnabled(ctx context.Context, on bool) error
	Reset(ctx context.Context) error
	Rearm()
}

// DemoHandlers provides HTTP handlers for demo mode management.
type DemoHandlers struct {
	Svc DemoService
}

// Status handles GET /api/demo. It reports whether demo mode is on.
func (h *DemoHandlers) Status(w http.ResponseWriter, r *http.Request) {
	on, err := h.Svc.Enabled(r.Context())
	if err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "flag_read_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"enabled": on})
}

// SetEnabled handles PUT /api/demo. Admin only.
func (h *DemoHandlers) SetEnabled(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Enabled bool `json:"enabled"`
	}
	if !DecodeJSON(w, r, &req) {
		return
	}

	if err := h.Svc.SetEnabled(r.Context(), req.Enabled); err != nil {
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "flag_write_failed", Err: err})
		return
	}

	WriteJSON(w, http.StatusOK, map[string]bool{"enabled": req.Enabled})
}

// Reset handles POST /api/demo/reset. Concurrent callers coalesce onto one
// wipe-and-reseed; a reset already past the coalescing window gets a 409.
// On success the client is expected to reload the map, then the server
// rearms the trigger for the next run.
func (h *DemoHandlers) Reset(w http.ResponseWriter, r *http.Request) {
	err := h.Svc.Reset(r.Context())
	switch {
	case errors.Is(err, maptool.ErrResetInFlight):
		WriteError(w, ErrorParams{Code: http.StatusConflict, ErrCode: "reset_in_flight", Err: err})
		return
	case err != nil:
		WriteError(w, ErrorParams{Code: http.StatusInternalServerError, ErrCode: "reset_failed", Err: err})
		return
	}

	// The handler response is the reload signal, so rearm before replying.
	h.Svc.Rearm()

	WriteJSON(w, http.StatusOK, map[string]string{
		"status":      "reset",
		"redirect_to": "/",
	})
}
