package httpx

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	mocks "github.com/landsight/prospect-api/internal/mocks/auth"
	"github.com/landsight/prospect-api/internal/service"
)

// newTestAuthService builds a real auth service on in-memory doubles so the
// router tests exercise the same middleware chain production uses.
func newTestAuthService() *service.AuthService {
	return service.NewAuthService(service.AuthServiceOptions{
		Provider: mocks.NewMockAuthProvider(),
		Sessions: mocks.NewMemorySessionStore(),
		Roles:    mocks.StaticRoleMapper{AdminGroup: "admins", BrokerGroup: "brokers"},
	})
}

func newTestRouter(demo *mockDemoService) http.Handler {
	return NewRouter(RouterServices{
		Assets: &mockAssetsService{},
		Demo:   demo,
		Auth:   newTestAuthService(),
	})
}

func TestRouter_DemoVisitorCanResetDemoData(t *testing.T) {
	var resetRan bool
	demo := &mockDemoService{
		enabledFunc: func(context.Context) (bool, error) { return true, nil },
		resetFunc: func(context.Context) error {
			resetRan = true
			return nil
		},
	}
	router := newTestRouter(demo)

	req := httptest.NewRequest(http.MethodPost, "/api/demo/reset", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"redirect_to":"/"`)
	assert.True(t, resetRan, "an anonymous visitor can reset while demo mode is on")
}

func TestRouter_ResetRequiresSessionWhenDemoOff(t *testing.T) {
	var resetRan bool
	demo := &mockDemoService{
		resetFunc: func(context.Context) error {
			resetRan = true
			return nil
		},
	}
	router := newTestRouter(demo)

	req := httptest.NewRequest(http.MethodPost, "/api/demo/reset", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.False(t, resetRan, "with demo off the reset stays behind authentication")
}

func TestRouter_DemoVisitorCanBrowseAssets(t *testing.T) {
	demo := &mockDemoService{
		enabledFunc: func(context.Context) (bool, error) { return true, nil },
	}
	router := newTestRouter(demo)

	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestRouter_DemoVisitorCannotDeleteAssets(t *testing.T) {
	demo := &mockDemoService{
		enabledFunc: func(context.Context) (bool, error) { return true, nil },
	}
	router := newTestRouter(demo)

	req := httptest.NewRequest(http.MethodDelete, "/api/assets/some-id", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code, "writes stay gated even during a demo")
}

func TestRouter_AnonymousBlockedWhenDemoOff(t *testing.T) {
	router := newTestRouter(&mockDemoService{})

	req := httptest.NewRequest(http.MethodGet, "/api/assets", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
