package config

import (
	"fmt"
	"os"
)

var validLogLevels = map[string]bool{
	"debug": true, "info": true, "warn": true, "error": true, "": true,
}

var validNamingModes = map[string]bool{
	"same": true, "suffix": true, "custom": true,
}

// Validate checks the configuration for errors.
// Returns a slice of error messages (empty if valid).
func (c *Config) Validate() []string {
	var errs []string

	if !validLogLevels[c.LogLevel] {
		errs = append(errs, fmt.Sprintf("log_level: must be one of debug, info, warn, error; got %q", c.LogLevel))
	}

	if c.Convert.Scale <= 0 {
		errs = append(errs, fmt.Sprintf("convert.scale: must be positive, got %g", c.Convert.Scale))
	}
	if !validNamingModes[c.Convert.Naming] {
		errs = append(errs, fmt.Sprintf("convert.naming: must be one of same, suffix, custom; got %q", c.Convert.Naming))
	}
	if c.Convert.Naming == "custom" && c.Convert.CustomBase == "" {
		errs = append(errs, "convert.custom_base: required when naming is custom")
	}

	// Output directory warning (non-fatal at load time; the directory is
	// created on demand during a run)
	if c.Convert.OutputDir != "" {
		if fi, err := os.Stat(c.Convert.OutputDir); err == nil && !fi.IsDir() {
			errs = append(errs, fmt.Sprintf("convert.output_dir: %q is not a directory", c.Convert.OutputDir))
		}
	}

	return errs
}
