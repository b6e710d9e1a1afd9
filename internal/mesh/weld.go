package mesh

// Weld merges vertices with exactly identical coordinates and remaps face
// indices accordingly. A 36-vertex triangle-soup cube welds down to 8
// vertices. Vertices keep the order of their first occurrence, so welding
// is deterministic.
func Weld(m *Mesh) *Mesh {
	if m.Empty() {
		return m.Clone()
	}

	index := make(map[Vec3]int, len(m.Vertices))
	remap := make([]int, len(m.Vertices))
	out := &Mesh{Faces: make([][3]int, len(m.Faces))}

	for i, v := range m.Vertices {
		if j, ok := index[v]; ok {
			remap[i] = j
			continue
		}
		j := len(out.Vertices)
		out.Vertices = append(out.Vertices, v)
		index[v] = j
		remap[i] = j
	}

	for i, f := range m.Faces {
		out.Faces[i] = [3]int{remap[f[0]], remap[f[1]], remap[f[2]]}
	}
	return out
}
