package mesh

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCollect(t *testing.T) {
	m := &Mesh{
		Vertices: []Vec3{{-1, 0, 2}, {3, -4, 0}, {0, 5, -6}},
		Faces:    [][3]int{{0, 1, 2}},
	}
	s := Collect(m)

	assert.Equal(t, 3, s.VertexCount)
	assert.Equal(t, 1, s.FaceCount)
	assert.Equal(t, Vec3{-1, -4, -6}, s.BoundsMin)
	assert.Equal(t, Vec3{3, 5, 2}, s.BoundsMax)
	assert.Equal(t, Vec3{4, 9, 8}, s.Extents())
}

func TestCollect_Empty(t *testing.T) {
	s := Collect(&Mesh{})
	assert.Zero(t, s.VertexCount)
	assert.Zero(t, s.FaceCount)
	assert.Equal(t, Vec3{}, s.Extents())
}
