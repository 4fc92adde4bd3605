package config

import (
	"errors"
	"fmt"
	"path"

	"github.com/tusharlock10/sipxnu/internal/report"
)

type Config struct {
	Debug         bool
	Format        string
	NoColor       bool
	LibSystemPath string
	Version       string // set from ldflags at build time; empty in dev builds
}

// Validate checks the options collected from the command line.
// Fails fast on the first error.
func (c *Config) Validate() error {
	if _, err := report.ParseFormat(c.Format); err != nil {
		return err
	}

	if c.LibSystemPath == "" {
		return errors.New("libSystem path is required")
	}
	if !path.IsAbs(c.LibSystemPath) {
		return fmt.Errorf("libSystem path must be absolute: %s", c.LibSystemPath)
	}

	return nil
}
