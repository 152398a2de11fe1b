package service

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/landsight/prospect-api/internal/core"
	"github.com/landsight/prospect-api/internal/devseed"
	"github.com/landsight/prospect-api/internal/domain/gate"
	"github.com/landsight/prospect-api/internal/domain/maptool"
	"github.com/landsight/prospect-api/internal/ports"
)

// DemoServiceOptions groups dependencies for DemoService.
type DemoServiceOptions struct {
	ResetRepo    core.DemoResetRepository
	Flags        ports.FlagStore
	FlagKey      string
	ResetTimeout time.Duration
	Logger       *slog.Logger
}

// DemoService owns demo mode: the persisted enablement flag and the
// wipe-and-reseed reset. Concurrent resets collapse into one database
// round trip; the trigger control rejects re-entry from the same caller
// while a reset is in flight.
type DemoService struct {
	resetRepo    core.DemoResetRepository
	flags        ports.FlagStore
	flagKey      string
	resetTimeout time.Duration
	logger       *slog.Logger

	group   singleflight.Group
	control maptool.ResetControl
}

// NewDemoService constructs a new DemoService.
func NewDemoService(opts DemoServiceOptions) *DemoService {
	s := &DemoService{
		resetRepo:    opts.ResetRepo,
		flags:        opts.Flags,
		flagKey:      opts.FlagKey,
		resetTimeout: opts.ResetTimeout,
		logger:       opts.Logger,
	}
	if s.flagKey == "" {
		s.flagKey = "demo-mode"
	}
	if s.resetTimeout <= 0 {
		s.resetTimeout = 30 * time.Second
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}
	s.control.Reset = s.runReset
	return s
}

// Enabled reports whether demo mode is switched on. Only the literal flag
// value "true" counts; a missing or mangled flag reads as off, the same rule
// the gate applies. A storage failure is surfaced so the caller can decide
// whether to fail open or closed.
func (s *DemoService) Enabled(ctx context.Context) (bool, error) {
	if s.flags == nil {
		return false, nil
	}
	raw, err := s.flags.Get(ctx, s.flagKey)
	if err != nil {
		return false, fmt.Errorf("read demo flag: %w", err)
	}
	return gate.DemoFlag(raw, nil), nil
}

// SetEnabled persists the demo-mode flag.
func (s *DemoService) SetEnabled(ctx context.Context, enabled bool) error {
	if s.flags == nil {
		return fmt.Errorf("flag store not configured")
	}
	if err := s.flags.Set(ctx, s.flagKey, strconv.FormatBool(enabled)); err != nil {
		return fmt.Errorf("write demo flag: %w", err)
	}
	return nil
}

// Reset restores the demo dataset. Overlapping calls from different
// requests share a single underlying reset and all observe its outcome.
func (s *DemoService) Reset(ctx context.Context) error {
	_, err, _ := s.group.Do("demo-reset", func() (any, error) {
		return nil, s.control.Trigger(ctx)
	})
	return err
}

// ResetInFlight reports whether a reset is currently running.
func (s *DemoService) ResetInFlight() bool {
	return s.control.Disabled()
}

// Rearm re-enables the reset trigger after the post-reset reload completes.
func (s *DemoService) Rearm() {
	s.control.Rearm()
}

func (s *DemoService) runReset(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, s.resetTimeout)
	defer cancel()

	start := time.Now()
	err := s.resetRepo.Reset(ctx, devseed.SubmarketNames(), devseed.Assets())
	if err != nil {
		s.logger.ErrorContext(ctx, "demo reset failed",
			"error", err,
			"duration", time.Since(start))
		return fmt.Errorf("reset demo data: %w", err)
	}

	s.logger.InfoContext(ctx, "demo reset complete",
		"submarkets", len(devseed.SubmarketNames()),
		"assets", len(devseed.Assets()),
		"duration", time.Since(start))
	return nil
}
