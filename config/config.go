// Package config loads library configuration from the environment.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
)

// Diagnostics selects where vitals diagnostics are written.
type Diagnostics struct {
	// Sink is "stderr", "stdout", "discard", or a file path appended to.
	Sink string `env:"PARTYSTATE_DIAG_SINK" envDefault:"stderr"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// Writer opens the configured diagnostic sink. File sinks stay open for
// the life of the process, matching the lifetime of the records they
// observe.
func (d Diagnostics) Writer() (io.Writer, error) {
	switch d.Sink {
	case "", "stderr":
		return os.Stderr, nil
	case "stdout":
		return os.Stdout, nil
	case "discard":
		return io.Discard, nil
	default:
		f, err := os.OpenFile(d.Sink, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open diagnostic sink: %w", err)
		}
		return f, nil
	}
}
