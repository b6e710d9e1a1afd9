// Package mesh provides the triangle-mesh primitives behind the converter:
// STL decoding, welding, best-effort cleanup, stats, and OBJ serialization.
package mesh

// Vec3 is a point or direction in model space.
type Vec3 [3]float64

// Add returns v + w.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{v[0] + w[0], v[1] + w[1], v[2] + w[2]}
}

// Sub returns v - w.
func (v Vec3) Sub(w Vec3) Vec3 {
	return Vec3{v[0] - w[0], v[1] - w[1], v[2] - w[2]}
}

// Scale returns v with every component multiplied by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{v[0] * f, v[1] * f, v[2] * f}
}

// Mesh is an indexed triangle mesh. A freshly decoded STL is triangle soup:
// every face references its own three vertices with no sharing.
type Mesh struct {
	Vertices []Vec3
	Faces    [][3]int
}

// Clone returns a deep copy. Transform steps never mutate their input.
func (m *Mesh) Clone() *Mesh {
	c := &Mesh{
		Vertices: make([]Vec3, len(m.Vertices)),
		Faces:    make([][3]int, len(m.Faces)),
	}
	copy(c.Vertices, m.Vertices)
	copy(c.Faces, m.Faces)
	return c
}

// Empty reports whether the mesh has no geometry.
func (m *Mesh) Empty() bool {
	return len(m.Vertices) == 0 || len(m.Faces) == 0
}
