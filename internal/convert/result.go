package convert

import (
	"github.com/ashdale/stl2obj/internal/mesh"
)

// Status is the per-item outcome.
type Status string

const (
	// StatusSuccess means the item was converted and written.
	StatusSuccess Status = "success"
	// StatusFailed means load, transform, or export failed; the run went on.
	StatusFailed Status = "failed"
	// StatusCancelled means the item was never started because the run was
	// cancelled. No file was written for it.
	StatusCancelled Status = "cancelled"
)

// RunState is the terminal state of a batch run.
type RunState string

const (
	StateRunning   RunState = "running"
	StateCompleted RunState = "completed"
	StateCancelled RunState = "cancelled"
)

// Result records the outcome of one work item.
type Result struct {
	SourcePath string
	Status     Status
	OutputPath string // set on success
	Stage      string // set on failure: load, transform, export
	Message    string

	// Stats of the transformed mesh, as written. Zero on failure.
	VertexCount int
	FaceCount   int
	Extents     mesh.Vec3
}

// BatchRun aggregates one conversion invocation: the frozen config, the
// ordered work list, and the results produced so far. It is mutated only by
// the runner's worker goroutine; consumers read it after the notification
// channel closes.
type BatchRun struct {
	Config  Config
	Items   []WorkItem
	Results []Result
	State   RunState
}

// Counts tallies results by status.
func (r *BatchRun) Counts() (succeeded, failed, cancelled int) {
	for _, res := range r.Results {
		switch res.Status {
		case StatusSuccess:
			succeeded++
		case StatusFailed:
			failed++
		case StatusCancelled:
			cancelled++
		}
	}
	return
}
