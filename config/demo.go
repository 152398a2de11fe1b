package config

import "time"

// DemoConfig controls the unauthenticated demo-exploration mode.
type DemoConfig struct {
	// Enabled allows the demo-mode flag to gate pages without a session.
	Enabled bool `env:"DEMO_ENABLED" envDefault:"false"`

	// FlagKey is the storage key for the demo-mode flag.
	FlagKey string `env:"DEMO_FLAG_KEY" envDefault:"demo-mode"`

	// ResetTimeout bounds a single demo-data reset, including reseeding.
	ResetTimeout time.Duration `env:"DEMO_RESET_TIMEOUT" envDefault:"30s"`
}

// Sanitize applies guardrails to demo configuration values.
func (d *DemoConfig) Sanitize() {
	if d.FlagKey == "" {
		d.FlagKey = "demo-mode"
	}
	if d.ResetTimeout <= 0 {
		d.ResetTimeout = 30 * time.Second
	}
}
