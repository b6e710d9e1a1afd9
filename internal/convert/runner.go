package convert

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
)

// Notification is one progress message from the worker to the control side.
// Result is a read-only snapshot; consumers never see run internals until
// the channel closes.
type Notification struct {
	Result    Result // zero when Final
	Completed int
	Total     int
	Final     bool
	State     RunState // terminal state, set when Final
}

// Runner executes batch runs: one worker goroutine per run, items strictly
// in input order, one mesh in memory at a time.
type Runner struct {
	adapter  Adapter
	pipeline *Pipeline
	log      *slog.Logger
}

// NewRunner creates a runner over the given adapter.
func NewRunner(adapter Adapter, log *slog.Logger) *Runner {
	if log == nil {
		log = slog.Default()
	}
	return &Runner{
		adapter:  adapter,
		pipeline: NewPipeline(adapter),
		log:      log,
	}
}

// Start validates the configuration, then launches the run on its own
// goroutine and returns immediately. A configuration error aborts before
// any work: no goroutine, no output files.
//
// Notifications arrive on the returned channel in processing order, ending
// with a Final notification carrying the terminal state; the channel is then
// closed. The channel is buffered for the whole run, so the worker never
// blocks on a slow consumer. The BatchRun must not be read until the channel
// has closed.
//
// Cancelling ctx stops the run between items: the in-flight item always
// finishes, items never started are recorded StatusCancelled with no file
// written.
func (r *Runner) Start(ctx context.Context, items []WorkItem, cfg Config) (*BatchRun, <-chan Notification, error) {
	if err := cfg.Validate(); err != nil {
		return nil, nil, err
	}
	if len(items) == 0 {
		return nil, nil, ErrNoInput
	}

	run := &BatchRun{Config: cfg, Items: items, State: StateRunning}
	ch := make(chan Notification, len(items)+1)

	go func() {
		defer close(ch)
		r.process(ctx, run, ch)
	}()

	return run, ch, nil
}

func (r *Runner) process(ctx context.Context, run *BatchRun, ch chan<- Notification) {
	total := len(run.Items)
	namer := NewNamer()
	r.log.Info("run started", "items", total)

	cancelled := false
	for i, item := range run.Items {
		// Cancellation takes effect only between items: finish the
		// current file, then stop.
		if !cancelled && ctx.Err() != nil {
			cancelled = true
			r.log.Warn("run cancelled", "completed", i, "remaining", total-i)
		}

		var res Result
		if cancelled {
			res = Result{
				SourcePath: item.SourcePath,
				Status:     StatusCancelled,
				Message:    "cancelled before start",
			}
		} else {
			res = r.convertOne(item.SourcePath, i+1, total, run.Config, namer)
		}

		run.Results = append(run.Results, res)
		ch <- Notification{Result: res, Completed: i + 1, Total: total}
	}

	if cancelled {
		run.State = StateCancelled
	} else {
		run.State = StateCompleted
	}

	succeeded, failed, skipped := run.Counts()
	r.log.Info("run finished",
		"state", string(run.State),
		"succeeded", succeeded,
		"failed", failed,
		"cancelled", skipped,
	)
	ch <- Notification{Completed: total, Total: total, Final: true, State: run.State}
}

// convertOne runs one item through load -> pipeline -> name -> export. Every
// failure is isolated: the result records the stage and cause, the batch
// goes on.
func (r *Runner) convertOne(src string, index, total int, cfg Config, namer *Namer) Result {
	res := Result{SourcePath: src}

	m, err := r.adapter.Load(src)
	if err != nil {
		return r.failed(res, StageLoad, err)
	}

	m = r.pipeline.Apply(m, cfg)

	out := namer.Resolve(src, index, total, cfg)
	if err := r.adapter.Export(m, out); err != nil {
		return r.failed(res, StageExport, err)
	}

	// Stats are computed on the transformed mesh so what is displayed
	// matches what was written.
	st := r.adapter.Stats(m)
	res.Status = StatusSuccess
	res.OutputPath = out
	res.Message = "converted to " + filepath.Base(out)
	res.VertexCount = st.VertexCount
	res.FaceCount = st.FaceCount
	res.Extents = st.Extents()

	r.log.Info("converted",
		"source", filepath.Base(src),
		"output", out,
		"vertices", res.VertexCount,
		"faces", res.FaceCount,
	)
	return res
}

func (r *Runner) failed(res Result, stage string, err error) Result {
	res.Status = StatusFailed
	res.Stage = stage
	res.Message = fmt.Sprintf("%s: %v", stage, err)
	r.log.Warn("item failed", "source", res.SourcePath, "stage", stage, "error", err)
	return res
}
