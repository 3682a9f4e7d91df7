package renderer

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// RowTask renders one image row. Rows never share output slots, so tasks
// may run in any order on any goroutine.
type RowTask func(ctx context.Context, row int) error

// WorkerPool runs row tasks on a bounded number of goroutines
type WorkerPool struct {
	numWorkers int
}

// NewWorkerPool creates a worker pool with the specified number of workers
func NewWorkerPool(numWorkers int) *WorkerPool {
	if numWorkers <= 0 {
		numWorkers = runtime.NumCPU()
	}
	return &WorkerPool{numWorkers: numWorkers}
}

// GetNumWorkers returns the number of workers in the pool
func (wp *WorkerPool) GetNumWorkers() int {
	return wp.numWorkers
}

// Run submits rows [0, rows) and waits for them. The first failing row
// cancels the rest and its error is returned. A panic inside a task is
// converted into that row's error.
func (wp *WorkerPool) Run(ctx context.Context, rows int, task RowTask) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(wp.numWorkers)

	for row := 0; row < rows; row++ {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() (err error) {
			defer func() {
				if r := recover(); r != nil {
					err = panicError(row, r)
				}
			}()
			return task(gctx, row)
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	return ctx.Err()
}

func panicError(row int, r any) error {
	if err, ok := r.(error); ok {
		return fmt.Errorf("row %d: %w", row, err)
	}
	return fmt.Errorf("row %d: %v", row, r)
}
