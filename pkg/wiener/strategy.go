package wiener

import (
	"context"
	"math/big"
	"runtime"
	"sync"

	"golang.org/x/sync/errgroup"
)

// SearchStrategy defines how the ordered convergent sequence of e/N is
// searched for a valid key. Implement this interface to create custom
// search strategies.
//
// Whatever the evaluation order, implementations must return the success with
// the lowest convergent index, matching the sequential first-match semantics.
type SearchStrategy interface {
	// Search tests convergents against the public key (N, e) and returns
	// the lowest-index verified key, or nil if none verifies. The context
	// can be used for cancellation.
	Search(ctx context.Context, e, n *big.Int, convergents []Convergent) *RecoveredKey

	// Name returns a human-readable name for this strategy.
	Name() string
}

// SequentialStrategy scans convergents in index order and short-circuits on
// the first verified candidate. This is the default: the sequence is short
// (O(log N) entries), so a plain ordered scan is already fast.
type SequentialStrategy struct{}

// Name returns the name of this strategy.
func (s *SequentialStrategy) Name() string {
	return "Sequential"
}

// Search implements the SearchStrategy interface.
func (s *SequentialStrategy) Search(ctx context.Context, e, n *big.Int, convergents []Convergent) *RecoveredKey {
	for i, conv := range convergents {
		select {
		case <-ctx.Done():
			return nil
		default:
		}

		if key := verifyCandidate(e, n, conv); key != nil {
			key.ConvergentIndex = i
			return key
		}
	}
	return nil
}

// ParallelStrategy verifies convergents concurrently. Each verification is
// independent of the others' outcome, so they can run on separate workers;
// the result is still resolved to the lowest-index success to preserve
// first-match semantics.
type ParallelStrategy struct {
	workers int
}

// NewParallelStrategy creates a parallel strategy sized to the number of CPUs.
func NewParallelStrategy() *ParallelStrategy {
	return &ParallelStrategy{workers: runtime.NumCPU()}
}

// WithWorkers sets the number of concurrent workers (0 = auto-detect).
func (s *ParallelStrategy) WithWorkers(n int) *ParallelStrategy {
	if n > 0 {
		s.workers = n
	}
	return s
}

// Name returns the name of this strategy.
func (s *ParallelStrategy) Name() string {
	return "Parallel"
}

// Search implements the SearchStrategy interface.
func (s *ParallelStrategy) Search(ctx context.Context, e, n *big.Int, convergents []Convergent) *RecoveredKey {
	workers := s.workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	var (
		mu   sync.Mutex
		best *RecoveredKey
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, conv := range convergents {
		mu.Lock()
		skip := best != nil && best.ConvergentIndex < i
		mu.Unlock()
		if skip {
			// A lower-index success already exists; later indices
			// cannot win anymore.
			break
		}

		if gctx.Err() != nil {
			break
		}

		i, conv := i, conv
		g.Go(func() error {
			key := verifyCandidate(e, n, conv)
			if key == nil {
				return nil
			}
			key.ConvergentIndex = i

			mu.Lock()
			if best == nil || key.ConvergentIndex < best.ConvergentIndex {
				best = key
			}
			mu.Unlock()
			return nil
		})
	}

	// verifyCandidate never errors; Wait only reflects context cancellation.
	_ = g.Wait()

	if ctx.Err() != nil {
		return nil
	}
	return best
}
