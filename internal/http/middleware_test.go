package httpx

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	domainauth "github.com/landsight/prospect-api/internal/domain/auth"
)

func okHandler() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
}

func TestRequireAuth_NoCookie(t *testing.T) {
	handler := RequireAuth(&mockAuthService{})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_InvalidSession(t *testing.T) {
	handler := RequireAuth(&mockAuthService{
		getSessionFunc: func(context.Context, string) (*domainauth.Session, error) {
			return nil, errors.New("expired")
		},
	})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "stale"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestRequireAuth_ValidSessionPassesThrough(t *testing.T) {
	handler := RequireAuth(&mockAuthService{})(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "good"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRequireRole_Hierarchy(t *testing.T) {
	tests := []struct {
		name     string
		userRole domainauth.Role
		required domainauth.Role
		want     int
	}{
		{"admin can use broker routes", domainauth.RoleAdmin, domainauth.RoleBroker, http.StatusOK},
		{"broker can use broker routes", domainauth.RoleBroker, domainauth.RoleBroker, http.StatusOK},
		{"broker cannot use admin routes", domainauth.RoleBroker, domainauth.RoleAdmin, http.StatusForbidden},
		{"guest cannot use broker routes", domainauth.RoleGuest, domainauth.RoleBroker, http.StatusForbidden},
		{"unknown role is rejected", domainauth.Role("superuser"), domainauth.RoleBroker, http.StatusForbidden},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockAuthService{
				getSessionFunc: func(_ context.Context, id string) (*domainauth.Session, error) {
					return &domainauth.Session{ID: id, UserID: "u1", Role: tt.userRole}, nil
				},
			}
			handler := RequireRole(svc, tt.required)(okHandler())

			req := httptest.NewRequest(http.MethodGet, "/api/demo", nil)
			req.AddCookie(&http.Cookie{Name: "session_id", Value: "sess"})
			w := httptest.NewRecorder()
			handler.ServeHTTP(w, req)

			assert.Equal(t, tt.want, w.Code)
		})
	}
}

func TestAllowDemo_DemoOnAdmitsAnonymous(t *testing.T) {
	auth := &mockAuthService{}
	demo := &mockDemoService{
		enabledFunc: func(context.Context) (bool, error) { return true, nil },
	}
	handler := AllowDemo(demo, RequireAuth(auth), OptionalAuth(auth))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAllowDemo_DemoOffFallsBackToAuth(t *testing.T) {
	auth := &mockAuthService{}
	demo := &mockDemoService{
		enabledFunc: func(context.Context) (bool, error) { return false, nil },
	}
	handler := AllowDemo(demo, RequireAuth(auth), OptionalAuth(auth))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAllowDemo_SessionKeptInContextDuringDemo(t *testing.T) {
	var hadSession bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadSession = GetUserSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	auth := &mockAuthService{}
	demo := &mockDemoService{
		enabledFunc: func(context.Context) (bool, error) { return true, nil },
	}
	handler := AllowDemo(demo, RequireAuth(auth), OptionalAuth(auth))(next)

	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	req.AddCookie(&http.Cookie{Name: "session_id", Value: "good"})
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, hadSession, "a signed-in demo visitor keeps their session")
}

func TestAllowDemo_NilReaderMeansOff(t *testing.T) {
	auth := &mockAuthService{}
	handler := AllowDemo(nil, RequireAuth(auth), OptionalAuth(auth))(okHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestOptionalAuth_AnonymousContinues(t *testing.T) {
	var hadSession bool
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, hadSession = GetUserSessionFromContext(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	handler := OptionalAuth(&mockAuthService{
		getSessionFunc: func(context.Context, string) (*domainauth.Session, error) {
			return nil, errors.New("none")
		},
	})(next)

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.False(t, hadSession)
}
