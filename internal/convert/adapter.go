package convert

import (
	"github.com/ashdale/stl2obj/internal/mesh"
)

//go:generate mockgen -source=adapter.go -destination=mocks/adapter.go -package=mocks

// Adapter is the boundary to the mesh library. The runner only talks to
// meshes through it, which keeps load/export failure modes mockable.
type Adapter interface {
	// Load decodes an STL file into triangle soup. Failures are
	// distinguishable: mesh.ErrNotFound, mesh.ErrDecode, mesh.ErrEmptyMesh.
	Load(path string) (*mesh.Mesh, error)

	// CleanupOps lists the cleanup sub-operations this adapter supports.
	CleanupOps() []mesh.CleanupOp

	// Cleanup applies the given sub-operations best-effort; unsupported
	// ops are skipped, never failed.
	Cleanup(m *mesh.Mesh, ops []mesh.CleanupOp) *mesh.Mesh

	// Weld merges exactly coincident vertices.
	Weld(m *mesh.Mesh) *mesh.Mesh

	// Stats computes counts and bounds.
	Stats(m *mesh.Mesh) mesh.Stats

	// Export writes the mesh as OBJ text, creating parent directories.
	Export(m *mesh.Mesh, path string) error
}

// MeshAdapter is the production Adapter over the internal mesh package.
type MeshAdapter struct{}

func (MeshAdapter) Load(path string) (*mesh.Mesh, error) { return mesh.LoadSTL(path) }

func (MeshAdapter) CleanupOps() []mesh.CleanupOp { return mesh.CleanupOps() }

func (MeshAdapter) Cleanup(m *mesh.Mesh, ops []mesh.CleanupOp) *mesh.Mesh {
	return mesh.Cleanup(m, ops)
}

func (MeshAdapter) Weld(m *mesh.Mesh) *mesh.Mesh { return mesh.Weld(m) }

func (MeshAdapter) Stats(m *mesh.Mesh) mesh.Stats { return mesh.Collect(m) }

func (MeshAdapter) Export(m *mesh.Mesh, path string) error { return mesh.WriteOBJ(m, path) }
