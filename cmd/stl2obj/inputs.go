package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/ashdale/stl2obj/internal/convert"
)

// expandInputs turns command arguments into a flat list of STL paths:
// directories expand to the .stl files directly inside them. A missing file
// is an error up front, with a did-you-mean suggestion when a similarly
// named sibling exists.
func expandInputs(args []string) ([]string, error) {
	var paths []string
	for _, arg := range args {
		fi, err := os.Stat(arg)
		if err != nil {
			return nil, missingInputError(arg)
		}
		if fi.IsDir() {
			found, err := convert.ExpandDir(arg)
			if err != nil {
				return nil, err
			}
			if len(found) == 0 {
				return nil, fmt.Errorf("no .stl files in %s", arg)
			}
			paths = append(paths, found...)
			continue
		}
		paths = append(paths, arg)
	}
	return paths, nil
}

func missingInputError(arg string) error {
	siblings, err := convert.ExpandDir(filepath.Dir(arg))
	if err == nil {
		if match, ok := convert.ClosestMatch(filepath.Base(arg), siblings); ok {
			return fmt.Errorf("no such file: %s (did you mean %s?)", arg, match)
		}
	}
	return fmt.Errorf("no such file: %s", arg)
}
