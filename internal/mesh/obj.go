package mesh

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
)

// WriteOBJ serializes the mesh as Wavefront OBJ text: one `v x y z` line per
// vertex followed by one `f i j k` line per face, indices 1-based. No
// materials, normals, or texture coordinates are emitted.
func WriteOBJ(m *Mesh, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() { _ = f.Close() }()

	w := bufio.NewWriter(f)
	for _, v := range m.Vertices {
		w.WriteString("v ")
		w.WriteString(strconv.FormatFloat(v[0], 'g', -1, 64))
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(v[1], 'g', -1, 64))
		w.WriteByte(' ')
		w.WriteString(strconv.FormatFloat(v[2], 'g', -1, 64))
		w.WriteByte('\n')
	}
	for _, face := range m.Faces {
		fmt.Fprintf(w, "f %d %d %d\n", face[0]+1, face[1]+1, face[2]+1)
	}

	if err := w.Flush(); err != nil {
		_ = os.Remove(path)
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := f.Sync(); err != nil {
		return fmt.Errorf("sync %s: %w", path, err)
	}
	return nil
}
