package maptool

import (
	"context"
	"errors"
	"sync"
)

// ErrResetInFlight is returned when a reset is triggered while one is running.
var ErrResetInFlight = errors.New("demo reset already in flight")

// ResetControl models the demo-data-reset trigger. The control disables
// itself for the duration of the call and re-enables only on failure; on
// success it stays disabled because a full reload follows.
type ResetControl struct {
	// Reset performs the wipe. Required; Trigger fails fast when nil.
	Reset func(ctx context.Context) error

	mu       sync.Mutex
	disabled bool
}

// Rearm re-enables a control left disabled by a successful reset, once the
// follow-up reload has finished.
func (c *ResetControl) Rearm() {
	c.mu.Lock()
	c.disabled = false
	c.mu.Unlock()
}

// Disabled reports whether the trigger is currently disabled.
func (c *ResetControl) Disabled() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.disabled
}

// Trigger fires the reset. A disabled control rejects further triggers.
func (c *ResetControl) Trigger(ctx context.Context) error {
	if c.Reset == nil {
		return errors.New("reset action not configured")
	}

	c.mu.Lock()
	if c.disabled {
		c.mu.Unlock()
		return ErrResetInFlight
	}
	c.disabled = true
	c.mu.Unlock()

	if err := c.Reset(ctx); err != nil {
		c.mu.Lock()
		c.disabled = false
		c.mu.Unlock()
		return err
	}
	return nil
}
