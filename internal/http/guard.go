package httpx

import (
	"context"
	"io"
	"net/http"

	"github.com/landsight/prospect-api/internal/domain/gate"
)

// DemoFlagReader reads the persisted demo-mode flag. Failures must not break
// page gating; the guard downgrades them to "demo off".
type DemoFlagReader interface {
	Enabled(ctx context.Context) (bool, error)
}

// GuardConfig groups dependencies for GuardPage.
type GuardConfig struct {
	Auth AuthServiceInterface
	// Demo may be nil when demo mode is not deployed.
	Demo DemoFlagReader
}

// spinnerPage is the blocking loading indicator served while an OAuth code
// exchange is in flight. It carries no protected content.
const spinnerPage = `<!doctype html>
<html lang="en">
<head><meta charset="utf-8"><title>Signing in…</title></head>
<body>
<div class="spinner" role="status" aria-label="Loading"></div>
<noscript>Completing sign-in, please reload.</noscript>
</body>
</html>
`

// GuardPage wraps protected page routes with the session gate. Per request it
// takes a snapshot of the session world and decides:
//
//   - spinner: an OAuth exchange is in flight, render the loading page only
//   - redirect: no user and no demo mode, 303 to the landing page
//   - render: pass through to the wrapped handler, session in context
//
// The snapshot is evaluated exactly once per request, so a redirect can never
// fire twice for the same navigation.
func GuardPage(cfg GuardConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			session := getSessionFromRequest(r, cfg.Auth)

			snap := gate.Snapshot{
				UserPresent:   session != nil && !session.IsGuest(),
				Demo:          demoEnabled(r.Context(), cfg.Demo),
				OAuthInFlight: gate.OAuthInFlight(r.URL.RawQuery),
			}

			switch gate.Decide(gate.Resolve(snap)) {
			case gate.DecisionSpinner:
				w.Header().Set("Content-Type", "text/html; charset=utf-8")
				w.WriteHeader(http.StatusOK)
				if _, err := io.WriteString(w, spinnerPage); err != nil {
					return
				}
			case gate.DecisionRedirect:
				http.Redirect(w, r, gate.RedirectTarget, http.StatusSeeOther)
			case gate.DecisionRender:
				ctx := SetSessionInContext(r.Context(), session)
				next.ServeHTTP(w, r.WithContext(ctx))
			}
		})
	}
}

// demoEnabled reads the demo flag, swallowing storage failures. Restricted
// or unavailable storage must never break gating.
func demoEnabled(ctx context.Context, demo DemoFlagReader) bool {
	if demo == nil {
		return false
	}
	on, err := demo.Enabled(ctx)
	if err != nil {
		return false
	}
	return on
}
