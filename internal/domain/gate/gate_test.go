package gate

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestDecisionTable exercises every combination of the input tuple and checks
// the guard renders exactly one of spinner, redirect, or children.
func TestDecisionTable(t *testing.T) {
	for _, loading := range []bool{false, true} {
		for _, user := range []bool{false, true} {
			for _, demo := range []bool{false, true} {
				for _, inFlight := range []bool{false, true} {
					s := Snapshot{
						Loading:       loading,
						UserPresent:   user,
						Demo:          demo,
						OAuthInFlight: inFlight,
					}

					want := DecisionRender
					switch {
					case loading || inFlight:
						want = DecisionSpinner
					case !user && !demo:
						want = DecisionRedirect
					}

					assert.Equal(t, want, Decide(Resolve(s)), "snapshot %+v", s)
				}
			}
		}
	}
}

func TestResolve_LoadingDominatesAuthorization(t *testing.T) {
	// A present user or demo flag must not shortcut past loading or an
	// in-flight code exchange.
	assert.Equal(t, StatusLoading, Resolve(Snapshot{Loading: true, UserPresent: true}))
	assert.Equal(t, StatusLoading, Resolve(Snapshot{OAuthInFlight: true, Demo: true}))
	assert.Equal(t, StatusLoading, Resolve(Snapshot{Loading: true, OAuthInFlight: true}))
}

func TestGate_RedirectFiresOncePerTuple(t *testing.T) {
	var fired []string
	g := &Gate{Navigate: func(path string) { fired = append(fired, path) }}

	unauthorized := Snapshot{}
	assert.Equal(t, DecisionRedirect, g.Evaluate(unauthorized))
	assert.Equal(t, []string{RedirectTarget}, fired)

	// Unrelated re-render with the same tuple: no duplicate redirect.
	assert.Equal(t, DecisionRedirect, g.Evaluate(unauthorized))
	assert.Equal(t, []string{RedirectTarget}, fired)

	// Tuple changes to authorized and back: the effect re-arms.
	assert.Equal(t, DecisionRender, g.Evaluate(Snapshot{UserPresent: true}))
	assert.Equal(t, DecisionRedirect, g.Evaluate(unauthorized))
	assert.Equal(t, []string{RedirectTarget, RedirectTarget}, fired)
}

func TestGate_NilNavigateIsNoOp(t *testing.T) {
	g := &Gate{}
	assert.NotPanics(t, func() {
		assert.Equal(t, DecisionRedirect, g.Evaluate(Snapshot{}))
	})
}

func TestGate_NoRedirectWhileExchangeInFlight(t *testing.T) {
	var fired int
	g := &Gate{Navigate: func(string) { fired++ }}

	// Missing user with a code in the URL must not race the callback.
	assert.Equal(t, DecisionSpinner, g.Evaluate(Snapshot{OAuthInFlight: true}))
	assert.Zero(t, fired)
}

func TestOAuthInFlight(t *testing.T) {
	assert.True(t, OAuthInFlight("code=abc123&state=xyz"))
	assert.False(t, OAuthInFlight("state=xyz"))
	assert.False(t, OAuthInFlight("code="))
	assert.False(t, OAuthInFlight(""))
	// Malformed query strings are swallowed, not propagated.
	assert.False(t, OAuthInFlight("code=%zz"))
}

func TestDemoFlag(t *testing.T) {
	assert.True(t, DemoFlag("true", nil))
	assert.False(t, DemoFlag("false", nil))
	assert.False(t, DemoFlag("1", nil))
	assert.False(t, DemoFlag("", nil))
	// Storage failures downgrade to false.
	assert.False(t, DemoFlag("true", errors.New("storage restricted")))
}
