package mesh

import "math"

// CleanupOp names one best-effort cleanup sub-operation.
type CleanupOp string

const (
	OpDropNonFinite    CleanupOp = "drop-nonfinite"
	OpDropDegenerate   CleanupOp = "drop-degenerate"
	OpDropDuplicate    CleanupOp = "drop-duplicate"
	OpDropUnreferenced CleanupOp = "drop-unreferenced"
	OpFixWinding       CleanupOp = "fix-winding"
)

// cleanupFuncs maps each supported sub-operation to its implementation.
var cleanupFuncs = map[CleanupOp]func(*Mesh) *Mesh{
	OpDropNonFinite:    dropNonFinite,
	OpDropDegenerate:   dropDegenerate,
	OpDropDuplicate:    dropDuplicate,
	OpDropUnreferenced: dropUnreferenced,
	OpFixWinding:       fixWinding,
}

// cleanupOrder is the application order. Vertex-level repairs run before
// face-level ones so later steps see stable indices.
var cleanupOrder = []CleanupOp{
	OpDropNonFinite,
	OpDropDegenerate,
	OpDropDuplicate,
	OpDropUnreferenced,
	OpFixWinding,
}

// CleanupOps returns the sub-operations this build supports, in application
// order. Callers probe this once and pass the result (or a subset) to
// Cleanup; an op missing from the list is skipped, never an error.
func CleanupOps() []CleanupOp {
	ops := make([]CleanupOp, len(cleanupOrder))
	copy(ops, cleanupOrder)
	return ops
}

// Cleanup applies the requested sub-operations in canonical order. Unknown
// or unsupported ops are skipped. The input mesh is never mutated.
func Cleanup(m *Mesh, ops []CleanupOp) *Mesh {
	requested := make(map[CleanupOp]bool, len(ops))
	for _, op := range ops {
		requested[op] = true
	}

	out := m.Clone()
	for _, op := range cleanupOrder {
		if !requested[op] {
			continue
		}
		if fn, ok := cleanupFuncs[op]; ok {
			out = fn(out)
		}
	}
	return out
}

// dropNonFinite removes vertices with NaN or Inf components and every face
// referencing one.
func dropNonFinite(m *Mesh) *Mesh {
	finite := func(v Vec3) bool {
		for _, c := range v {
			if math.IsNaN(c) || math.IsInf(c, 0) {
				return false
			}
		}
		return true
	}

	remap := make([]int, len(m.Vertices))
	out := &Mesh{}
	for i, v := range m.Vertices {
		if !finite(v) {
			remap[i] = -1
			continue
		}
		remap[i] = len(out.Vertices)
		out.Vertices = append(out.Vertices, v)
	}
	for _, f := range m.Faces {
		a, b, c := remap[f[0]], remap[f[1]], remap[f[2]]
		if a < 0 || b < 0 || c < 0 {
			continue
		}
		out.Faces = append(out.Faces, [3]int{a, b, c})
	}
	return out
}

// dropDegenerate removes faces whose corners collapse onto fewer than three
// distinct points. Comparison is by coordinate, not index, so degenerate
// soup triangles are caught before any weld.
func dropDegenerate(m *Mesh) *Mesh {
	out := &Mesh{Vertices: m.Vertices}
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		if a == b || b == c || a == c {
			continue
		}
		out.Faces = append(out.Faces, f)
	}
	return out
}

// dropDuplicate removes faces covering the same three points regardless of
// winding, keeping the first occurrence.
func dropDuplicate(m *Mesh) *Mesh {
	type key [3]Vec3
	canonical := func(f [3]int) key {
		k := key{m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]}
		// Sort the three corners so winding and rotation don't matter.
		if less(k[1], k[0]) {
			k[0], k[1] = k[1], k[0]
		}
		if less(k[2], k[1]) {
			k[1], k[2] = k[2], k[1]
		}
		if less(k[1], k[0]) {
			k[0], k[1] = k[1], k[0]
		}
		return k
	}

	seen := make(map[key]bool, len(m.Faces))
	out := &Mesh{Vertices: m.Vertices}
	for _, f := range m.Faces {
		k := canonical(f)
		if seen[k] {
			continue
		}
		seen[k] = true
		out.Faces = append(out.Faces, f)
	}
	return out
}

func less(a, b Vec3) bool {
	for i := range a {
		if a[i] != b[i] {
			return a[i] < b[i]
		}
	}
	return false
}

// dropUnreferenced removes vertices no face points at and remaps indices.
func dropUnreferenced(m *Mesh) *Mesh {
	used := make([]bool, len(m.Vertices))
	for _, f := range m.Faces {
		used[f[0]], used[f[1]], used[f[2]] = true, true, true
	}

	remap := make([]int, len(m.Vertices))
	out := &Mesh{Faces: make([][3]int, len(m.Faces))}
	for i, v := range m.Vertices {
		if !used[i] {
			remap[i] = -1
			continue
		}
		remap[i] = len(out.Vertices)
		out.Vertices = append(out.Vertices, v)
	}
	for i, f := range m.Faces {
		out.Faces[i] = [3]int{remap[f[0]], remap[f[1]], remap[f[2]]}
	}
	return out
}

// fixWinding is a best-effort normal repair: when the mesh's signed volume
// is negative (faces wound inward), every face is flipped. Open meshes are
// left alone by construction since their signed volume carries no meaning
// anyone should rely on.
func fixWinding(m *Mesh) *Mesh {
	if signedVolume(m) >= 0 {
		return m
	}
	out := &Mesh{Vertices: m.Vertices, Faces: make([][3]int, len(m.Faces))}
	for i, f := range m.Faces {
		out.Faces[i] = [3]int{f[0], f[2], f[1]}
	}
	return out
}

// signedVolume sums tetrahedron volumes against the origin.
func signedVolume(m *Mesh) float64 {
	var total float64
	for _, f := range m.Faces {
		a, b, c := m.Vertices[f[0]], m.Vertices[f[1]], m.Vertices[f[2]]
		total += a[0]*(b[1]*c[2]-b[2]*c[1]) -
			a[1]*(b[0]*c[2]-b[2]*c[0]) +
			a[2]*(b[0]*c[1]-b[1]*c[0])
	}
	return total / 6
}
