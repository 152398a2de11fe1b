package httpx

import (
	"net/http"
	"strconv"
	"strings"

	apperrors "github.com/landsight/prospect-api/internal/errors"
)

// validationErrorPatterns classifies service errors as 400s. The substrings
// cover the messages produced by domain validation: coordinate ranges, bbox
// checks, title length, and required fields.
var validationErrorPatterns = []string{ //nolint:gochecknoglobals // read-only pattern cache
	"must be between",
	"cannot exceed",
	"cannot be empty",
	"is required",
	"bbox ",
}

// parseIntQuery returns the integer value of a query param or a default.
// It is tolerant of missing/invalid values.
func parseIntQuery(r *http.Request, key string, def int) int {
	if v := r.URL.Query().Get(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

// ParseLimitOffset parses common pagination params and clamps to sane bounds.
// - defLimit: default limit when not specified
// - maxLimit: maximum allowed limit (values > maxLimit are clamped to maxLimit).
func ParseLimitOffset(r *http.Request, defLimit, maxLimit int) (int, int) {
	if maxLimit < 1 {
		maxLimit = 1
	}

	lim := parseIntQuery(r, "limit", defLimit)
	off := parseIntQuery(r, "offset", 0)
	if lim < 1 {
		lim = 1
	}
	if lim > maxLimit {
		lim = maxLimit
	}
	if off < 0 {
		off = 0
	}
	return lim, off
}

// isValidationError checks for common validation error patterns to decide 400 vs 5xx.
func isValidationError(err error) bool {
	if err == nil {
		return false
	}
	if apperrors.IsValidation(err) {
		return true
	}
	msg := err.Error()
	for _, p := range validationErrorPatterns {
		if strings.Contains(msg, p) {
			return true
		}
	}
	return false
}

// appErrorParams maps a classified data-layer error to response parameters.
// The second return is false for errors without an AppError in their chain.
func appErrorParams(err error) (ErrorParams, bool) {
	switch apperrors.GetCode(err) {
	case apperrors.ErrCodeNotFound:
		return ErrorParams{Code: http.StatusNotFound, ErrCode: "not_found", Err: err}, true
	case apperrors.ErrCodeConflict:
		return ErrorParams{Code: http.StatusConflict, ErrCode: "conflict", Err: err}, true
	case apperrors.ErrCodeValidation, apperrors.ErrCodeForeignKey:
		return ErrorParams{Code: http.StatusBadRequest, ErrCode: "validation_error", Err: err}, true
	case apperrors.ErrCodeTimeout:
		return ErrorParams{Code: http.StatusGatewayTimeout, ErrCode: "timeout", Err: err}, true
	case apperrors.ErrCodeCanceled:
		return ErrorParams{Code: http.StatusServiceUnavailable, ErrCode: "canceled", Err: err}, true
	default:
		return ErrorParams{}, false
	}
}
