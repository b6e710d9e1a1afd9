package convert

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hbollon/go-edlib"
)

// WorkItem is one input file in a run's work list.
type WorkItem struct {
	SourcePath string
}

// BuildWorkList turns raw paths into an ordered, de-duplicated work list.
// If selected is non-empty it names the indices (into paths) to process;
// an empty selection means the whole list. Out-of-range indices are ignored.
func BuildWorkList(paths []string, selected []int) []WorkItem {
	use := paths
	if len(selected) > 0 {
		use = make([]string, 0, len(selected))
		picked := make(map[int]bool, len(selected))
		for _, i := range selected {
			if i < 0 || i >= len(paths) || picked[i] {
				continue
			}
			picked[i] = true
			use = append(use, paths[i])
		}
	}

	seen := make(map[string]bool, len(use))
	items := make([]WorkItem, 0, len(use))
	for _, p := range use {
		key := strings.ToLower(filepath.Clean(p))
		if seen[key] {
			continue
		}
		seen[key] = true
		items = append(items, WorkItem{SourcePath: p})
	}
	return items
}

// ExpandDir lists the .stl files directly inside dir (non-recursive),
// matching the extension case-insensitively, sorted by name.
func ExpandDir(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read directory %s: %w", dir, err)
	}

	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.EqualFold(filepath.Ext(e.Name()), ".stl") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)
	return paths, nil
}

// suggestThreshold is the minimum Jaro-Winkler similarity for a
// did-you-mean suggestion.
const suggestThreshold = 0.7

// ClosestMatch returns the candidate most similar to target, for suggesting
// a fix when an input file does not exist. Jaro-Winkler favors shared
// prefixes, which suits near-miss filenames.
func ClosestMatch(target string, candidates []string) (string, bool) {
	best := ""
	bestScore := 0.0
	for _, c := range candidates {
		score := float64(edlib.JaroWinklerSimilarity(
			strings.ToLower(target), strings.ToLower(filepath.Base(c))))
		if score > bestScore {
			bestScore = score
			best = c
		}
	}
	if bestScore < suggestThreshold {
		return "", false
	}
	return best, true
}
