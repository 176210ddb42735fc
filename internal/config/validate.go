// internal/config/validate.go
package config

import (
	"fmt"
	"strings"
)

// Validate checks configuration correctness.
// It performs declarative validation only.
// It MUST NOT mutate configuration.
func Validate(cfg *Config) error {
	b := cfg.Bridge

	if b.Listen != "" && !strings.HasPrefix(b.Listen, "tcp://") {
		return fmt.Errorf("listen %q: must be a tcp:// URL", b.Listen)
	}

	if b.Poll.IntervalMs < 0 {
		return fmt.Errorf("poll.interval_ms must be >= 0, got %d", b.Poll.IntervalMs)
	}

	switch b.Source.Kind {
	case "", SourceYHub, SourceSim:
	default:
		return fmt.Errorf(
			"source.kind %q: must be %q or %q",
			b.Source.Kind, SourceYHub, SourceSim,
		)
	}

	if b.Source.TimeoutMs < 0 {
		return fmt.Errorf("source.timeout_ms must be >= 0, got %d", b.Source.TimeoutMs)
	}

	return nil
}
