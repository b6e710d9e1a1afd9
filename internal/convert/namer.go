package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// Namer computes collision-free output paths for one run. The used-path set
// is exclusively owned by that run; never share a Namer across runs, or the
// pairwise-distinct guarantee is lost.
type Namer struct {
	used map[string]bool // lowercased candidate paths handed out this run
}

// NewNamer creates a namer with an empty used-path set.
func NewNamer() *Namer {
	return &Namer{used: make(map[string]bool)}
}

// Resolve returns the output path for the index-th item (1-based) of a run
// with total items. The configuration must already have passed Validate.
//
// The candidate is <dir>/<base>.obj where dir is the configured output
// directory or the source's own directory, and base depends on the naming
// mode. If the candidate exists on disk or was already handed out this run,
// _1, _2, ... are appended until a free path is found. The chosen path is
// recorded so no two items of a run can resolve to the same file.
func (n *Namer) Resolve(sourcePath string, index, total int, cfg Config) string {
	dir := cfg.OutputDir
	if dir == "" {
		dir = filepath.Dir(sourcePath)
	}

	base := n.baseName(sourcePath, index, total, cfg)

	candidate := filepath.Join(dir, base+".obj")
	for counter := 1; n.taken(candidate); counter++ {
		candidate = filepath.Join(dir, fmt.Sprintf("%s_%d.obj", base, counter))
	}

	n.used[strings.ToLower(candidate)] = true
	return candidate
}

func (n *Namer) baseName(sourcePath string, index, total int, cfg Config) string {
	stem := strings.TrimSuffix(filepath.Base(sourcePath), filepath.Ext(sourcePath))

	switch cfg.NamingMode {
	case NameSuffix:
		return stem + SanitizeBaseName(cfg.Suffix)
	case NameCustom:
		base := SanitizeBaseName(cfg.CustomBase)
		if total == 1 {
			return base
		}
		// Width is derived from the run total so names sort in
		// conversion order: _01.._99, then _001.. for bigger batches.
		return fmt.Sprintf("%s_%0*d", base, indexWidth(total), index)
	default:
		return stem
	}
}

// taken reports whether the candidate collides with a file on disk or with
// a path already claimed this run. Comparison is case-insensitive: safe on
// case-insensitive filesystems, merely conservative on case-sensitive ones.
func (n *Namer) taken(candidate string) bool {
	if n.used[strings.ToLower(candidate)] {
		return true
	}
	_, err := os.Stat(candidate)
	return err == nil
}

// indexWidth returns the zero-pad width for batch numbering: at least two
// digits, widening once the total needs more.
func indexWidth(total int) int {
	width := 2
	for limit := 99; total > limit; limit = limit*10 + 9 {
		width++
	}
	return width
}
