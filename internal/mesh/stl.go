package mesh

import (
	"errors"
	"fmt"
	"os"

	"github.com/hschendel/stl"
)

var (
	// ErrNotFound indicates the input file does not exist or cannot be read.
	ErrNotFound = errors.New("input file not found or unreadable")

	// ErrDecode indicates the file exists but is not a valid STL.
	ErrDecode = errors.New("not a valid STL file")

	// ErrEmptyMesh indicates the STL decoded cleanly but contains no triangles.
	ErrEmptyMesh = errors.New("mesh contains no triangles")
)

// LoadSTL decodes a binary or ASCII STL file into triangle soup.
// The three failure modes are distinguishable with errors.Is: ErrNotFound
// for filesystem problems, ErrDecode for corrupt input, ErrEmptyMesh for a
// valid file with zero triangles.
func LoadSTL(path string) (*Mesh, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
	}

	solid, err := stl.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDecode, path, err)
	}
	if len(solid.Triangles) == 0 {
		return nil, fmt.Errorf("%w: %s", ErrEmptyMesh, path)
	}

	// Triangle soup: three independent vertices per face. Sharing is
	// introduced later by Weld, never here.
	m := &Mesh{
		Vertices: make([]Vec3, 0, len(solid.Triangles)*3),
		Faces:    make([][3]int, 0, len(solid.Triangles)),
	}
	for _, t := range solid.Triangles {
		base := len(m.Vertices)
		for _, v := range t.Vertices {
			m.Vertices = append(m.Vertices, Vec3{
				float64(v[0]), float64(v[1]), float64(v[2]),
			})
		}
		m.Faces = append(m.Faces, [3]int{base, base + 1, base + 2})
	}
	return m, nil
}
