package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWeld_CubeSoup(t *testing.T) {
	soup := cubeSoup()
	welded := Weld(soup)

	assert.Equal(t, 8, len(welded.Vertices))
	assert.Equal(t, 12, len(welded.Faces))

	// Every face index must be valid and the three corners distinct.
	for _, f := range welded.Faces {
		for _, idx := range f {
			require.Less(t, idx, len(welded.Vertices))
		}
		assert.NotEqual(t, f[0], f[1])
		assert.NotEqual(t, f[1], f[2])
		assert.NotEqual(t, f[0], f[2])
	}

	// Geometry is preserved: same bounds as the soup.
	assert.Equal(t, Collect(soup).BoundsMin, Collect(welded).BoundsMin)
	assert.Equal(t, Collect(soup).BoundsMax, Collect(welded).BoundsMax)
}

func TestWeld_Idempotent(t *testing.T) {
	once := Weld(cubeSoup())
	twice := Weld(once)
	assert.Equal(t, once.Vertices, twice.Vertices)
	assert.Equal(t, once.Faces, twice.Faces)
}

func TestWeld_DoesNotMutateInput(t *testing.T) {
	soup := cubeSoup()
	before := len(soup.Vertices)
	_ = Weld(soup)
	assert.Equal(t, before, len(soup.Vertices))
}

func TestWeld_Empty(t *testing.T) {
	m := Weld(&Mesh{})
	assert.True(t, m.Empty())
}
