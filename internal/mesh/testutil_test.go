package mesh

// Shared fixtures for the mesh package tests.

// cubeCorners are the 8 corners of the unit cube.
var cubeCorners = []Vec3{
	{0, 0, 0}, {1, 0, 0}, {1, 1, 0}, {0, 1, 0},
	{0, 0, 1}, {1, 0, 1}, {1, 1, 1}, {0, 1, 1},
}

// cubeFaces index cubeCorners with outward winding.
var cubeFaces = [][3]int{
	{0, 2, 1}, {0, 3, 2}, // bottom
	{4, 5, 6}, {4, 6, 7}, // top
	{0, 1, 5}, {0, 5, 4}, // front
	{2, 3, 7}, {2, 7, 6}, // back
	{0, 4, 7}, {0, 7, 3}, // left
	{1, 2, 6}, {1, 6, 5}, // right
}

// cubeSoup builds the unit cube as triangle soup: 12 faces, 36 vertices,
// no sharing, the way an STL decodes.
func cubeSoup() *Mesh {
	m := &Mesh{}
	for _, f := range cubeFaces {
		base := len(m.Vertices)
		m.Vertices = append(m.Vertices,
			cubeCorners[f[0]], cubeCorners[f[1]], cubeCorners[f[2]])
		m.Faces = append(m.Faces, [3]int{base, base + 1, base + 2})
	}
	return m
}

// cubeIndexed builds the unit cube with shared vertices: 8 verts, 12 faces.
func cubeIndexed() *Mesh {
	m := &Mesh{
		Vertices: make([]Vec3, len(cubeCorners)),
		Faces:    make([][3]int, len(cubeFaces)),
	}
	copy(m.Vertices, cubeCorners)
	copy(m.Faces, cubeFaces)
	return m
}
