package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	domainauth "github.com/landsight/prospect-api/internal/domain/auth"
	"github.com/landsight/prospect-api/internal/ports"
)

// defaultGuestSessionTTL caps how long a guest session lives. Guests have no
// brokerage group behind them, so their sessions expire quickly regardless of
// what the IdP token says.
const defaultGuestSessionTTL = time.Hour

// AuthServiceOptions groups dependencies for AuthService.
type AuthServiceOptions struct {
	Provider ports.AuthProvider
	Sessions ports.SessionStore
	Roles    ports.RoleMapper

	// GuestSessionTTL overrides the guest session cap; zero means the default.
	GuestSessionTTL time.Duration
}

// AuthService runs the login flow end to end: it asks the provider for an
// auth URL, exchanges the callback code for a verified identity, maps IdP
// groups onto the broker role hierarchy, and persists the resulting session.
type AuthService struct {
	provider ports.AuthProvider
	sessions ports.SessionStore
	roles    ports.RoleMapper
	guestTTL time.Duration
}

var errSessionExpired = errors.New("session expired")

// NewAuthService constructs a new AuthService.
func NewAuthService(opts AuthServiceOptions) *AuthService {
	guestTTL := opts.GuestSessionTTL
	if guestTTL <= 0 {
		guestTTL = defaultGuestSessionTTL
	}
	return &AuthService{
		provider: opts.Provider,
		sessions: opts.Sessions,
		roles:    opts.Roles,
		guestTTL: guestTTL,
	}
}

// BeginLoginResult contains the result of beginning a login flow.
type BeginLoginResult struct {
	AuthURL string
	State   string
	Nonce   string
}

// BeginLogin initiates an authentication flow and returns the provider auth URL with state and nonce.
func (s *AuthService) BeginLogin(ctx context.Context, redirectURL string) (*BeginLoginResult, error) {
	if redirectURL == "" {
		return nil, errors.New("redirect URL is required")
	}

	authURL, state, nonce, err := s.provider.Begin(ctx, ports.BeginInput{RedirectURL: redirectURL})
	if err != nil {
		return nil, fmt.Errorf("begin auth flow: %w", err)
	}

	return &BeginLoginResult{
		AuthURL: authURL,
		State:   state,
		Nonce:   nonce,
	}, nil
}

// CompleteLoginInput groups parameters for completing a login flow.
type CompleteLoginInput struct {
	Code  string
	State string
	Nonce string
}

// CompleteLoginResult contains the result of completing a login flow.
type CompleteLoginResult struct {
	Session domainauth.Session
}

// CompleteLogin exchanges the authorization code for an identity and persists
// a session for it. An identity whose token already lapsed is rejected
// outright rather than saved as a dead session.
func (s *AuthService) CompleteLogin(ctx context.Context, input CompleteLoginInput) (*CompleteLoginResult, error) {
	if input.Code == "" {
		return nil, errors.New("authorization code is required")
	}
	if input.State == "" {
		return nil, errors.New("state parameter is required")
	}
	if input.Nonce == "" {
		return nil, errors.New("nonce parameter is required")
	}

	identity, err := s.provider.Exchange(ctx, ports.ExchangeInput{
		Code:  input.Code,
		State: input.State,
		Nonce: input.Nonce,
	})
	if err != nil {
		return nil, fmt.Errorf("exchange authorization code: %w", err)
	}
	if !identity.ExpiresAt.After(time.Now()) {
		return nil, errors.New("identity token already expired")
	}

	session := s.buildSession(identity)
	if saveErr := s.sessions.Save(ctx, session); saveErr != nil {
		return nil, fmt.Errorf("save session: %w", saveErr)
	}

	return &CompleteLoginResult{Session: session}, nil
}

// buildSession turns a verified identity into the session record we persist.
// Users outside the admin and broker groups land on the guest role and get
// the capped guest TTL.
func (s *AuthService) buildSession(identity domainauth.Identity) domainauth.Session {
	role := s.roles.Map(identity.Groups)

	expiresAt := identity.ExpiresAt
	if role == domainauth.RoleGuest {
		if guestCap := time.Now().Add(s.guestTTL); expiresAt.After(guestCap) {
			expiresAt = guestCap
		}
	}

	return domainauth.Session{
		ID:        generateSessionID(),
		UserID:    identity.UserID,
		FirstName: identity.FirstName,
		LastName:  identity.LastName,
		Email:     identity.Email,
		Brokerage: identity.Brokerage,
		Role:      role,
		ExpiresAt: expiresAt,
	}
}

// GetSession retrieves a session by ID, lazily deleting it when expired.
func (s *AuthService) GetSession(ctx context.Context, sessionID string) (*domainauth.Session, error) {
	if sessionID == "" {
		return nil, errors.New("session ID is required")
	}

	session, err := s.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("get session: %w", err)
	}

	if time.Now().After(session.ExpiresAt) {
		if deleteErr := s.sessions.Delete(ctx, sessionID); deleteErr != nil {
			return nil, errors.Join(errSessionExpired, fmt.Errorf("delete session: %w", deleteErr))
		}
		return nil, errSessionExpired
	}

	return &session, nil
}

// Logout removes a session. An empty ID is a no-op: there is nothing to
// invalidate for anonymous demo visitors.
func (s *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := s.sessions.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}

	return nil
}

// generateSessionID creates an opaque session identifier. UUIDs are URL-safe
// and carry enough entropy for a cookie value.
func generateSessionID() string {
	return uuid.NewString()
}
