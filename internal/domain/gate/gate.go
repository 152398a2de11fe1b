// Package gate implements the session gate that decides whether a protected
// page renders, redirects, or blocks on a loading indicator.
//
// The gate is pure: it sees only a snapshot of the session world
// (loading flag, user presence, demo flag, OAuth in-flight) and returns a
// decision. Side effects (the one-shot redirect) are confined to Gate, which
// tracks the last evaluated snapshot so an unchanged re-evaluation never
// re-fires navigation.
package gate

import "net/url"

// Status is the session resolver's tri-state output.
type Status int

const (
	// StatusLoading means session resolution has not settled yet, or an
	// OAuth code exchange is in flight. No redirect may be taken.
	StatusLoading Status = iota
	// StatusAuthorized means a user is present or demo mode is on.
	StatusAuthorized
	// StatusUnauthorized means no user, no demo, and no exchange in flight.
	StatusUnauthorized
)

// Decision is what the route guard does with a resolver status.
type Decision int

const (
	// DecisionSpinner renders a blocking loading indicator and nothing else.
	DecisionSpinner Decision = iota
	// DecisionRedirect navigates to the root path and renders nothing.
	DecisionRedirect
	// DecisionRender renders the wrapped subtree unchanged.
	DecisionRender
)

// Snapshot is the input tuple the gate is evaluated against.
// Two snapshots with equal fields are the same tuple for redirect
// deduplication purposes.
type Snapshot struct {
	Loading       bool
	UserPresent   bool
	Demo          bool
	OAuthInFlight bool
}

// Resolve computes the resolver status for a snapshot.
// Loading and OAuth in-flight dominate: protected content must never render,
// and no redirect may fire, while either is true.
func Resolve(s Snapshot) Status {
	if s.Loading || s.OAuthInFlight {
		return StatusLoading
	}
	if s.UserPresent || s.Demo {
		return StatusAuthorized
	}
	return StatusUnauthorized
}

// Decide maps a resolver status to a guard decision.
func Decide(st Status) Decision {
	switch st {
	case StatusAuthorized:
		return DecisionRender
	case StatusUnauthorized:
		return DecisionRedirect
	default:
		return DecisionSpinner
	}
}

// RedirectTarget is where unauthorized navigations land.
const RedirectTarget = "/"

// Gate evaluates snapshots and fires the navigation side effect at most once
// per distinct snapshot. Navigate may be nil; an absent callback is a no-op.
type Gate struct {
	Navigate func(path string)

	last    Snapshot
	hasLast bool
}

// Evaluate resolves the snapshot and, when the decision is a redirect and the
// snapshot differs from the previously evaluated one, fires Navigate exactly
// once. Repeated evaluations of an unchanged snapshot are side-effect free.
func (g *Gate) Evaluate(s Snapshot) Decision {
	changed := !g.hasLast || g.last != s
	g.last = s
	g.hasLast = true

	d := Decide(Resolve(s))
	if d == DecisionRedirect && changed && g.Navigate != nil {
		g.Navigate(RedirectTarget)
	}
	return d
}

// OAuthInFlight reports whether a raw query string carries an OAuth
// authorization code. Malformed query strings are treated as "not in flight";
// the guard must not fail a page load over an unparsable URL.
func OAuthInFlight(rawQuery string) bool {
	values, err := url.ParseQuery(rawQuery)
	if err != nil {
		return false
	}
	return values.Get("code") != ""
}

// DemoFlag interprets a stored demo-mode value. Only the literal string
// "true" enables demo mode; a read error is swallowed and treated as false,
// since restricted storage must never break gating.
func DemoFlag(value string, err error) bool {
	if err != nil {
		return false
	}
	return value == "true"
}
