package mesh

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWriteOBJ(t *testing.T) {
	m := &Mesh{
		Vertices: []Vec3{{0, 0, 0}, {1, 0, 0}, {0, 1, 0}},
		Faces:    [][3]int{{0, 1, 2}},
	}
	path := filepath.Join(t.TempDir(), "tri.obj")
	require.NoError(t, WriteOBJ(m, path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 4)
	assert.Equal(t, "v 0 0 0", lines[0])
	assert.Equal(t, "v 1 0 0", lines[1])
	assert.Equal(t, "v 0 1 0", lines[2])
	// Face indices are 1-based.
	assert.Equal(t, "f 1 2 3", lines[3])
}

func TestWriteOBJ_OnlyVertexAndFaceLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cube.obj")
	require.NoError(t, WriteOBJ(cubeIndexed(), path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var vs, fs int
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		switch {
		case strings.HasPrefix(line, "v "):
			vs++
		case strings.HasPrefix(line, "f "):
			fs++
		default:
			t.Fatalf("unexpected line %q", line)
		}
	}
	assert.Equal(t, 8, vs)
	assert.Equal(t, 12, fs)
}

func TestWriteOBJ_CreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deep", "nested", "tri.obj")
	require.NoError(t, WriteOBJ(cubeIndexed(), path))

	_, err := os.Stat(path)
	assert.NoError(t, err)
}
