package httpx

import (
	"io"
	"log/slog"
	"net/http"

	domainauth "github.com/landsight/prospect-api/internal/domain/auth"
	"github.com/landsight/prospect-api/internal/service"
)

// RouterServices holds all the services needed by the HTTP router.
type RouterServices struct {
	Assets     AssetsService
	Submarkets SubmarketsService
	MapView    MapViewService
	MapPrefs   MapPrefsService
	Demo       DemoService
	Auth       *service.AuthService

	CookieDomain string
	Logger       *slog.Logger // Logger for HTTP errors (optional)
}

// NewRouter creates and configures a new HTTP router.
func NewRouter(services RouterServices) http.Handler {
	mux := http.NewServeMux()

	var authHandlers *AuthHandlers
	if services.Auth != nil {
		authHandlers = &AuthHandlers{Svc: services.Auth, Demo: demoReader(services), CookieDomain: services.CookieDomain, Logger: services.Logger}
	}

	guards := buildRouteGuards(services)
	registerAssetRoutes(mux, &AssetHandlers{Svc: services.Assets}, guards)
	registerSubmarketRoutes(mux, &SubmarketHandlers{Svc: services.Submarkets}, guards)
	registerMapRoutes(mux, mapRouteHandlers{
		View:  &MapViewHandlers{Svc: services.MapView},
		Prefs: &MapPrefsHandlers{Svc: services.MapPrefs},
	}, guards)
	registerDemoRoutes(mux, &DemoHandlers{Svc: services.Demo}, guards)

	mux.Handle("GET /healthz", http.HandlerFunc(healthHandler))
	mux.Handle("HEAD /healthz", http.HandlerFunc(healthHandler))
	if authHandlers != nil {
		registerAuthRoutes(mux, authHandlers)
	}

	// The map page itself is gated: guests see a redirect to the landing
	// flow, OAuth callbacks see the spinner, everyone else gets the page.
	guardCfg := GuardConfig{Demo: services.Demo}
	if services.Auth != nil {
		guardCfg.Auth = services.Auth
	}
	guard := GuardPage(guardCfg)
	mux.Handle("GET /{$}", guard(http.HandlerFunc(mapPageHandler)))

	return mux
}

// authWrap applies mw only when auth is configured; mock-auth dev setups run open.
func authWrap(auth *service.AuthService, mw func(AuthServiceInterface) func(http.Handler) http.Handler) func(http.Handler) http.Handler {
	if auth == nil {
		return func(h http.Handler) http.Handler { return h }
	}
	return mw(auth)
}

// demoReader extracts the demo flag reader from the wired services. A nil
// demo service means no demo deployment, so the reader stays nil.
func demoReader(services RouterServices) DemoFlagReader {
	if services.Demo == nil {
		return nil
	}
	return services.Demo
}

// routeGuards bundles the access wrappers the route groups share.
//
// The demo flag sanctions unauthenticated exploration, so demoOpen routes
// (read-only endpoints the map page calls, plus the demo reset) admit
// anonymous visitors while the flag is on. Mutations stay behind authed or
// adminOnly even during a demo: an anonymous caller must never be able to
// alter or delete data that outlives the next reset.
type routeGuards struct {
	authed    func(http.Handler) http.Handler
	demoOpen  func(http.Handler) http.Handler
	adminOnly func(http.Handler) http.Handler
}

func buildRouteGuards(services RouterServices) routeGuards {
	authed := authWrap(services.Auth, RequireAuth)
	optional := authWrap(services.Auth, OptionalAuth)
	adminOnly := authWrap(services.Auth, func(a AuthServiceInterface) func(http.Handler) http.Handler {
		return RequireRole(a, domainauth.RoleAdmin)
	})

	return routeGuards{
		authed:    authed,
		demoOpen:  AllowDemo(demoReader(services), authed, optional),
		adminOnly: adminOnly,
	}
}

func registerAssetRoutes(mux *http.ServeMux, h *AssetHandlers, g routeGuards) {
	mux.Handle("POST /api/assets", g.authed(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/assets", g.demoOpen(http.HandlerFunc(h.List)))
	mux.Handle("GET /api/assets/{id}", g.demoOpen(http.HandlerFunc(h.GetByID)))
	mux.Handle("DELETE /api/assets/{id}", g.authed(http.HandlerFunc(h.Delete)))
}

func registerSubmarketRoutes(mux *http.ServeMux, h *SubmarketHandlers, g routeGuards) {
	mux.Handle("POST /api/submarkets", g.adminOnly(http.HandlerFunc(h.Create)))
	mux.Handle("GET /api/submarkets", g.demoOpen(http.HandlerFunc(h.List)))
	// Literal segments before the wildcard so "names" and "nearest" never
	// resolve as submarket names.
	mux.Handle("GET /api/submarkets/names", g.demoOpen(http.HandlerFunc(h.Names)))
	mux.Handle("GET /api/submarkets/nearest", g.demoOpen(http.HandlerFunc(h.Nearest)))
	mux.Handle("GET /api/submarkets/{name}", g.demoOpen(http.HandlerFunc(h.GetByName)))
}

// mapRouteHandlers groups the map endpoints' handlers (≤3 params rule).
type mapRouteHandlers struct {
	View  *MapViewHandlers
	Prefs *MapPrefsHandlers
}

func registerMapRoutes(mux *http.ServeMux, h mapRouteHandlers, g routeGuards) {
	mux.Handle("GET /api/map/view", g.demoOpen(http.HandlerFunc(h.View.Load)))
	// Preferences are keyed by user; they need a real session even in demo.
	mux.Handle("GET /api/map/prefs", g.authed(http.HandlerFunc(h.Prefs.Get)))
	mux.Handle("PUT /api/map/prefs/map-type", g.authed(http.HandlerFunc(h.Prefs.SetMapType)))
	mux.Handle("PUT /api/map/prefs/tool", g.authed(http.HandlerFunc(h.Prefs.SetActiveTool)))
}

func registerDemoRoutes(mux *http.ServeMux, h *DemoHandlers, g routeGuards) {
	mux.Handle("GET /api/demo", g.demoOpen(http.HandlerFunc(h.Status)))
	mux.Handle("PUT /api/demo", g.adminOnly(http.HandlerFunc(h.SetEnabled)))
	// The reset wipes only demo rows and reseeds, so the demo flag itself is
	// sufficient authorization while it is on.
	mux.Handle("POST /api/demo/reset", g.demoOpen(http.HandlerFunc(h.Reset)))
}

func registerAuthRoutes(mux *http.ServeMux, h *AuthHandlers) {
	mux.HandleFunc("GET /auth/login", h.Login)
	mux.HandleFunc("GET /auth/callback", h.Callback)
	mux.HandleFunc("POST /auth/logout", h.Logout)
	mux.HandleFunc("GET /auth/status", h.Status)
}

// mapPage is the single-page shell for the prospecting map. The client bundle
// boots the map and talks to /api from there.
const mapPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>LandSight</title>
</head>
<body>
<div id="map-root"></div>
<script type="module" src="/static/js/app.js"></script>
</body>
</html>
`

func mapPageHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := io.WriteString(w, mapPage); err != nil {
		return
	}
}
