package convert

import (
	"fmt"
	"math"
)

// NamingMode selects how output base names are derived.
type NamingMode string

const (
	// NameSame keeps the source file name.
	NameSame NamingMode = "same"
	// NameSuffix appends Config.Suffix to the source file name.
	NameSuffix NamingMode = "suffix"
	// NameCustom uses Config.CustomBase, auto-numbered for batches.
	NameCustom NamingMode = "custom"
)

// Config is the immutable per-run configuration. A BatchRun snapshots it at
// start; later edits never affect an in-flight run.
type Config struct {
	WeldVertices   bool
	CleanupMesh    bool
	CenterToOrigin bool
	SwapYZ         bool
	FlipX          bool
	FlipY          bool
	FlipZ          bool
	ScaleFactor    float64

	// OutputDir is the target directory for all outputs. Empty means each
	// output lands next to its input.
	OutputDir  string
	NamingMode NamingMode
	Suffix     string
	CustomBase string
}

// DefaultConfig returns the options a fresh run starts from.
func DefaultConfig() Config {
	return Config{
		WeldVertices: true,
		CleanupMesh:  true,
		ScaleFactor:  1.0,
		NamingMode:   NameSame,
		Suffix:       "_converted",
	}
}

// Validate checks the configuration before a run starts. Any error here
// aborts the run entirely; naming problems are never per-item failures.
func (c Config) Validate() error {
	if c.ScaleFactor <= 0 || math.IsNaN(c.ScaleFactor) || math.IsInf(c.ScaleFactor, 0) {
		return fmt.Errorf("%w: scale factor must be a positive number, got %g", ErrConfig, c.ScaleFactor)
	}
	switch c.NamingMode {
	case NameSame, NameSuffix:
	case NameCustom:
		if SanitizeBaseName(c.CustomBase) == "" {
			return fmt.Errorf("%w: custom naming selected but no base name provided", ErrConfig)
		}
	default:
		return fmt.Errorf("%w: unknown naming mode %q", ErrConfig, c.NamingMode)
	}
	return nil
}
