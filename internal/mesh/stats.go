package mesh

// Stats summarizes a mesh for display: counts plus axis-aligned bounds.
type Stats struct {
	VertexCount int
	FaceCount   int
	BoundsMin   Vec3
	BoundsMax   Vec3
}

// Extents returns the per-axis bounding-box size (max - min).
func (s Stats) Extents() Vec3 {
	return s.BoundsMax.Sub(s.BoundsMin)
}

// Collect computes stats over any mesh. Pure; an empty mesh yields zero
// bounds.
func Collect(m *Mesh) Stats {
	s := Stats{
		VertexCount: len(m.Vertices),
		FaceCount:   len(m.Faces),
	}
	if len(m.Vertices) == 0 {
		return s
	}

	s.BoundsMin, s.BoundsMax = m.Vertices[0], m.Vertices[0]
	for _, v := range m.Vertices[1:] {
		for i := 0; i < 3; i++ {
			if v[i] < s.BoundsMin[i] {
				s.BoundsMin[i] = v[i]
			}
			if v[i] > s.BoundsMax[i] {
				s.BoundsMax[i] = v[i]
			}
		}
	}
	return s
}
