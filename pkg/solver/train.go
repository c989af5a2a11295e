package solver

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/behrlich/echo-solver/pkg/game"
	"github.com/behrlich/echo-solver/pkg/phase"
)

// ProgressFunc is called after every iteration TrainParallel completes,
// for a caller to drive a progress bar or log a checkpoint. completed is
// the number of iterations just finished (always 1), not a running
// total; calls come from the worker goroutines concurrently.
type ProgressFunc func(completed int)

// TrainParallel runs CFR for the given number of iterations, spread
// across runtime.GOMAXPROCS workers. Every worker shares the same
// Scope tree: DecisionVector.ApplyRegretUpdate serializes the
// read-modify-write each traversal performs on a node's regret and
// strategy sums, so concurrent iterations interleave safely. Splitting
// work by top-level reveal index was considered and rejected — every
// iteration necessarily starts at the shared root node regardless of
// which branch it eventually reaches, so no partition avoids contention
// there; per-vector locking is the simpler, definitely-correct choice.
func (c *CFR) TrainParallel(ctx context.Context, iterations int, progress ProgressFunc) (*Scope, error) {
	workers := runtime.GOMAXPROCS(0)
	if workers > iterations {
		workers = iterations
	}
	if workers < 1 {
		workers = 1
	}

	summary := c.state.ToSummary()
	hidden, hiddenIndices := rootHiddenStates(summary, c.state)

	g, gctx := errgroup.WithContext(ctx)
	perWorker := iterations / workers
	remainder := iterations % workers

	for w := 0; w < workers; w++ {
		share := perWorker
		if w < remainder {
			share++
		}
		g.Go(func() error {
			for i := 0; i < share; i++ {
				select {
				case <-gctx.Done():
					return gctx.Err()
				default:
				}
				c.traverse(&c.root, c.state, summary, phase.NewMainPhase(), hidden, hiddenIndices, game.Pair[float64]{1, 1})
				if progress != nil {
					progress(1)
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &c.root, nil
}
