package convert

import (
	"github.com/ashdale/stl2obj/internal/mesh"
)

// Pipeline applies the geometric normalization steps in their fixed order.
// The order must not change: weld runs after cleanup so cleanup cannot
// re-fragment welded geometry, flips refer to post-swap axes, scale runs
// before centering so the bounding-box midpoint reflects final size, and
// centering runs last so it is exact no matter which steps were enabled.
type Pipeline struct {
	adapter Adapter
}

// NewPipeline creates a pipeline over the given adapter.
func NewPipeline(adapter Adapter) *Pipeline {
	return &Pipeline{adapter: adapter}
}

// Apply runs the enabled steps and returns the transformed mesh. It is
// deterministic and total: any mesh goes in, a mesh comes out. The input is
// never mutated. With everything disabled and ScaleFactor 1 the output is
// identical to the input.
func (p *Pipeline) Apply(m *mesh.Mesh, cfg Config) *mesh.Mesh {
	if cfg.CleanupMesh {
		m = p.adapter.Cleanup(m, p.adapter.CleanupOps())
	}
	if cfg.WeldVertices {
		m = p.adapter.Weld(m)
	}

	if cfg.SwapYZ {
		m = mapVertices(m, func(v mesh.Vec3) mesh.Vec3 {
			return mesh.Vec3{v[0], v[2], v[1]}
		})
	}
	if cfg.FlipX {
		m = mapVertices(m, func(v mesh.Vec3) mesh.Vec3 {
			return mesh.Vec3{-v[0], v[1], v[2]}
		})
	}
	if cfg.FlipY {
		m = mapVertices(m, func(v mesh.Vec3) mesh.Vec3 {
			return mesh.Vec3{v[0], -v[1], v[2]}
		})
	}
	if cfg.FlipZ {
		m = mapVertices(m, func(v mesh.Vec3) mesh.Vec3 {
			return mesh.Vec3{v[0], v[1], -v[2]}
		})
	}

	if cfg.ScaleFactor != 1.0 {
		f := cfg.ScaleFactor
		m = mapVertices(m, func(v mesh.Vec3) mesh.Vec3 {
			return v.Scale(f)
		})
	}

	if cfg.CenterToOrigin && len(m.Vertices) > 0 {
		s := mesh.Collect(m)
		center := s.BoundsMin.Add(s.BoundsMax).Scale(0.5)
		m = mapVertices(m, func(v mesh.Vec3) mesh.Vec3 {
			return v.Sub(center)
		})
	}

	return m
}

// mapVertices returns a copy of m with fn applied to every vertex.
func mapVertices(m *mesh.Mesh, fn func(mesh.Vec3) mesh.Vec3) *mesh.Mesh {
	out := m.Clone()
	for i, v := range out.Vertices {
		out.Vertices[i] = fn(v)
	}
	return out
}
