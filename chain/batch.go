package chain

import (
	"context"
	"fmt"
	"runtime"
	"sync"

	"github.com/katalvlaran/keychain/keypad"
)

// Option configures SolveAll via functional arguments. Invalid options
// are recorded and surfaced as ErrOptionViolation when SolveAll runs.
type Option func(*SolveOptions)

// SolveOptions holds SolveAll parameters.
type SolveOptions struct {
	// Workers is the goroutine count; 0 means runtime.NumCPU().
	Workers int

	// Cache is shared by all workers. Nil means a fresh cache per call.
	Cache *Cache

	// Private gives every code its own cache instead of sharing one.
	Private bool

	err error
}

// DefaultOptions returns NumCPU workers and one shared fresh cache.
func DefaultOptions() SolveOptions {
	return SolveOptions{}
}

// WithWorkers sets the worker count.
//
//	n > 0: exactly n goroutines
//	n == 0: runtime.NumCPU()
//	n < 0: invalid option → ErrOptionViolation
func WithWorkers(n int) Option {
	return func(o *SolveOptions) {
		if n < 0 {
			o.err = fmt.Errorf("%w: workers cannot be negative (%d)", ErrOptionViolation, n)
			return
		}
		o.Workers = n
	}
}

// WithCache shares cache across calls, e.g. between runs of the same chain.
func WithCache(cache *Cache) Option {
	return func(o *SolveOptions) {
		if cache != nil {
			o.Cache = cache
		}
	}
}

// WithPrivateCaches solves each code with its own cache.
func WithPrivateCaches() Option {
	return func(o *SolveOptions) { o.Private = true }
}

// SolveAll solves every code on a pool of workers and returns the press
// counts index-aligned with codes. The first error stops the remaining
// work and is returned; ctx is checked before each code.
func SolveAll(ctx context.Context, c *Chain, codes [][]keypad.Key, opts ...Option) ([]uint64, error) {
	if c == nil {
		return nil, ErrNilChain
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if ctx == nil {
		ctx = context.Background()
	}
	workers := o.Workers
	if workers == 0 {
		workers = runtime.NumCPU()
	}
	workers = min(workers, len(codes))
	shared := o.Cache
	if shared == nil && !o.Private {
		shared = NewCache()
	}
	if shared != nil {
		if err := shared.bind(c); err != nil {
			return nil, err
		}
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	var (
		out      = make([]uint64, len(codes))
		idx      = make(chan int)
		wg       sync.WaitGroup
		errOnce  sync.Once
		firstErr error
	)
	fail := func(err error) {
		errOnce.Do(func() {
			firstErr = err
			cancel()
		})
	}

	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func() {
			defer wg.Done()
			for i := range idx {
				cache := shared
				if cache == nil {
					cache = NewCache()
				}
				n, err := SolveSequence(c, codes[i], cache)
				if err != nil {
					fail(fmt.Errorf("code %d: %w", i, err))
					continue
				}
				out[i] = n
			}
		}()
	}

feed:
	for i := range codes {
		select {
		case <-ctx.Done():
			break feed
		case idx <- i:
		}
	}
	close(idx)
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return out, nil
}
