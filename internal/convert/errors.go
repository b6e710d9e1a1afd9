// Package convert implements the batch conversion core: configuration,
// output naming, the ordered transform pipeline, and the batch runner.
package convert

import "errors"

var (
	// ErrConfig indicates invalid run configuration. It is detected before
	// any work starts and blocks the whole run.
	ErrConfig = errors.New("invalid configuration")

	// ErrNoInput indicates an empty work list.
	ErrNoInput = errors.New("no input files")
)

// Stage names identify where a per-item failure happened.
const (
	StageLoad      = "load"
	StageTransform = "transform"
	StageExport    = "export"
)
