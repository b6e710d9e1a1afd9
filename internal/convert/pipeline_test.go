package convert

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ashdale/stl2obj/internal/mesh"
)

func testMesh(vertices ...mesh.Vec3) *mesh.Mesh {
	m := &mesh.Mesh{Vertices: vertices}
	for i := 0; i+2 < len(vertices); i += 3 {
		m.Faces = append(m.Faces, [3]int{i, i + 1, i + 2})
	}
	return m
}

func identityConfig() Config {
	return Config{ScaleFactor: 1, NamingMode: NameSame}
}

func TestPipeline_IdentityPassThrough(t *testing.T) {
	p := NewPipeline(MeshAdapter{})
	in := testMesh(mesh.Vec3{1, 2, 3}, mesh.Vec3{4, 5, 6}, mesh.Vec3{7, 8, 9})

	out := p.Apply(in, identityConfig())
	assert.Equal(t, in.Vertices, out.Vertices)
	assert.Equal(t, in.Faces, out.Faces)

	// And again: bit-identical under repeated application.
	again := p.Apply(out, identityConfig())
	assert.Equal(t, out.Vertices, again.Vertices)
}

func TestPipeline_SwapYZ(t *testing.T) {
	p := NewPipeline(MeshAdapter{})
	cfg := identityConfig()
	cfg.SwapYZ = true

	out := p.Apply(testMesh(mesh.Vec3{1, 2, 3}), cfg)
	assert.Equal(t, mesh.Vec3{1, 3, 2}, out.Vertices[0])
}

func TestPipeline_FlipAfterSwap(t *testing.T) {
	// Flips refer to post-swap axes: swapping then flipping Y negates
	// what was the Z component of the input.
	p := NewPipeline(MeshAdapter{})
	cfg := identityConfig()
	cfg.SwapYZ = true
	cfg.FlipY = true

	out := p.Apply(testMesh(mesh.Vec3{1, 2, 3}), cfg)
	assert.Equal(t, mesh.Vec3{1, -3, 2}, out.Vertices[0])
}

func TestPipeline_Flips(t *testing.T) {
	p := NewPipeline(MeshAdapter{})
	cfg := identityConfig()
	cfg.FlipX, cfg.FlipY, cfg.FlipZ = true, true, true

	out := p.Apply(testMesh(mesh.Vec3{1, 2, 3}), cfg)
	assert.Equal(t, mesh.Vec3{-1, -2, -3}, out.Vertices[0])
}

func TestPipeline_Scale(t *testing.T) {
	p := NewPipeline(MeshAdapter{})
	cfg := identityConfig()
	cfg.ScaleFactor = 0.001

	out := p.Apply(testMesh(mesh.Vec3{1000, 2000, -500}), cfg)
	assert.Equal(t, mesh.Vec3{1, 2, -0.5}, out.Vertices[0])
}

func TestPipeline_CenterToOrigin(t *testing.T) {
	p := NewPipeline(MeshAdapter{})
	cfg := identityConfig()
	cfg.CenterToOrigin = true

	out := p.Apply(testMesh(
		mesh.Vec3{1, 1, 1}, mesh.Vec3{3, 5, 9}, mesh.Vec3{2, 2, 2},
	), cfg)

	s := mesh.Collect(out)
	mid := s.BoundsMin.Add(s.BoundsMax).Scale(0.5)
	for i := 0; i < 3; i++ {
		assert.InDelta(t, 0, mid[i], 1e-12)
	}
}

func TestPipeline_CenterRunsAfterScale(t *testing.T) {
	// Scale then center: the midpoint must be exact for the scaled mesh,
	// which only holds if centering runs last.
	p := NewPipeline(MeshAdapter{})
	cfg := identityConfig()
	cfg.ScaleFactor = 0.5
	cfg.CenterToOrigin = true

	out := p.Apply(testMesh(mesh.Vec3{0, 0, 0}, mesh.Vec3{4, 4, 4}), cfg)
	assert.Equal(t, mesh.Vec3{-1, -1, -1}, out.Vertices[0])
	assert.Equal(t, mesh.Vec3{1, 1, 1}, out.Vertices[1])
}

func TestPipeline_CleanupThenWeld(t *testing.T) {
	// A soup cube with one duplicated triangle: cleanup drops the
	// duplicate, weld shares the corners.
	p := NewPipeline(MeshAdapter{})

	soup := &mesh.Mesh{}
	corners := []mesh.Vec3{
		{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
		{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
	}
	faces := [][3]int{
		{0, 2, 1}, {0, 3, 2}, {4, 5, 6}, {4, 6, 7},
		{0, 1, 5}, {0, 5, 4}, {2, 3, 7}, {2, 7, 6},
		{0, 4, 7}, {0, 7, 3}, {1, 2, 6}, {1, 6, 5},
		{0, 2, 1}, // duplicate of the first
	}
	for _, f := range faces {
		base := len(soup.Vertices)
		soup.Vertices = append(soup.Vertices, corners[f[0]], corners[f[1]], corners[f[2]])
		soup.Faces = append(soup.Faces, [3]int{base, base + 1, base + 2})
	}

	cfg := identityConfig()
	cfg.CleanupMesh = true
	cfg.WeldVertices = true

	out := p.Apply(soup, cfg)
	assert.Equal(t, 12, len(out.Faces))
	assert.Equal(t, 8, len(out.Vertices))
}

func TestPipeline_EmptyMesh(t *testing.T) {
	p := NewPipeline(MeshAdapter{})
	cfg := identityConfig()
	cfg.CleanupMesh = true
	cfg.WeldVertices = true
	cfg.SwapYZ = true
	cfg.FlipX = true
	cfg.ScaleFactor = 2
	cfg.CenterToOrigin = true

	out := p.Apply(&mesh.Mesh{}, cfg)
	require.NotNil(t, out)
	assert.True(t, out.Empty())
}

func TestPipeline_NoNaNsFromFiniteInput(t *testing.T) {
	p := NewPipeline(MeshAdapter{})
	cfg := identityConfig()
	cfg.SwapYZ = true
	cfg.FlipZ = true
	cfg.ScaleFactor = 123.456
	cfg.CenterToOrigin = true

	out := p.Apply(testMesh(
		mesh.Vec3{-1e9, 2, 3}, mesh.Vec3{4, -5e-9, 6}, mesh.Vec3{7, 8, 9e9},
	), cfg)
	for _, v := range out.Vertices {
		for _, c := range v {
			assert.False(t, math.IsNaN(c))
		}
	}
}
