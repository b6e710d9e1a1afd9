package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/ashdale/stl2obj/internal/mesh"
)

func printJSON(v any) {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	_ = enc.Encode(v)
}

// formatVec renders a vector to two decimals for the stats output.
func formatVec(v mesh.Vec3) string {
	return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
}
