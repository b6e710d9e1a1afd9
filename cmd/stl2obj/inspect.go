package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/ashdale/stl2obj/internal/mesh"
)

var inspectCmd = &cobra.Command{
	Use:   "inspect <file.stl|directory>...",
	Short: "Show mesh stats without converting",
	Long: `Show vertex/face counts and bounding-box extents for STL files.

Purely informational: nothing is written. Stats describe the file as
stored (triangle soup), before any welding or transforms.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInspectCmd,
}

func init() {
	rootCmd.AddCommand(inspectCmd)
	inspectCmd.Flags().Int("concurrency", 4, "Files inspected in parallel")
}

// inspection is one file's stats, or the error that prevented them.
type inspection struct {
	Path        string    `json:"path"`
	Error       string    `json:"error,omitempty"`
	VertexCount int       `json:"vertex_count"`
	FaceCount   int       `json:"face_count"`
	BoundsMin   mesh.Vec3 `json:"bounds_min"`
	BoundsMax   mesh.Vec3 `json:"bounds_max"`
	Extents     mesh.Vec3 `json:"extents"`
}

func runInspectCmd(cmd *cobra.Command, args []string) error {
	paths, err := expandInputs(args)
	if err != nil {
		return err
	}
	concurrency, _ := cmd.Flags().GetInt("concurrency")

	// Inspection has no ordering constraints, so files load in parallel;
	// results land in a pre-sized slice to keep output in input order.
	results := make([]inspection, len(paths))
	g := new(errgroup.Group)
	g.SetLimit(max(concurrency, 1))
	for i, p := range paths {
		i, p := i, p
		g.Go(func() error {
			results[i] = inspectOne(p)
			return nil
		})
	}
	_ = g.Wait()

	if jsonOutput {
		printJSON(results)
		return nil
	}

	for i, r := range results {
		if i > 0 {
			fmt.Println()
		}
		fmt.Println(filepath.Base(r.Path))
		if r.Error != "" {
			fmt.Printf("  Error: %s\n", r.Error)
			continue
		}
		fmt.Printf("  Vertices: %d | Faces: %d\n", r.VertexCount, r.FaceCount)
		fmt.Printf("  Bounds min: %s\n", formatVec(r.BoundsMin))
		fmt.Printf("  Bounds max: %s\n", formatVec(r.BoundsMax))
		fmt.Printf("  Extents:    %s\n", formatVec(r.Extents))
	}
	return nil
}

func inspectOne(path string) inspection {
	r := inspection{Path: path}
	m, err := mesh.LoadSTL(path)
	if err != nil {
		r.Error = err.Error()
		return r
	}
	s := mesh.Collect(m)
	r.VertexCount = s.VertexCount
	r.FaceCount = s.FaceCount
	r.BoundsMin = s.BoundsMin
	r.BoundsMax = s.BoundsMax
	r.Extents = s.Extents()
	return r
}
