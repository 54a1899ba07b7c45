// Package resolver implements step-wise symlink resolution: probing a
// single path, locating the first link in a path, and driving the lazy
// hop sequence the CLI consumes.
package resolver

import (
	"github.com/arthur-debert/readlinks/pkg/errors"
	"github.com/arthur-debert/readlinks/pkg/logging"
	"github.com/arthur-debert/readlinks/pkg/types"
)

// Resolver produces the hops of one resolution, lazily. Its only
// mutable state is the path to probe next and the done flag; once a
// terminal hop or an error has been emitted the sequence is exhausted
// for good. A Resolver is not restartable and not safe for concurrent
// use; build a new one to resolve again.
type Resolver struct {
	fsys    types.FS
	current string
	done    bool
	maxHops int
	hops    int
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithMaxHops bounds the number of link hops the sequence will emit.
// This is a deliberate deviation from plain resolution, which loops
// forever on a cyclic link chain: with a bound, hitting the limit ends
// the sequence with an ErrTooManyHops error. Zero (the default) keeps
// the sequence unbounded.
func WithMaxHops(n int) Option {
	return func(r *Resolver) {
		r.maxHops = n
	}
}

// New creates a resolution sequence starting at path.
func New(fsys types.FS, path string, opts ...Option) *Resolver {
	r := &Resolver{
		fsys:    fsys,
		current: path,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Next produces the next hop of the resolution. ok reports whether a
// hop was produced; it turns false once the sequence is exhausted and
// stays false. The terminal hop itself is emitted with ok true: it is
// the caller's signal of where resolution ended.
//
// Any probe failure other than absence ends the sequence; the hops
// emitted before it remain valid.
func (r *Resolver) Next() (types.Hop, bool, error) {
	if r.done {
		return types.Hop{}, false, nil
	}

	if r.maxHops > 0 && r.hops >= r.maxHops {
		r.done = true
		return types.Hop{}, false, errors.
			Newf(errors.ErrTooManyHops, "gave up after %d hops, link chain may be cyclic", r.hops).
			WithDetail("path", r.current)
	}

	hop, err := FindFirstLink(r.fsys, r.current)
	if err != nil {
		r.done = true
		return types.Hop{}, false, err
	}

	if !hop.IsLink() {
		r.done = true
		return hop, true, nil
	}

	r.hops++
	r.current = hop.Resolved()

	logger := logging.GetLogger("resolver")
	logger.Debug().Int("hop", r.hops).Str("next", r.current).Msg("Hop emitted")

	return hop, true, nil
}

// ResolveAll drains a fresh sequence for path and returns every hop it
// produced. On error the hops gathered so far are returned alongside
// it; they are not retracted.
func ResolveAll(fsys types.FS, path string, opts ...Option) ([]types.Hop, error) {
	r := New(fsys, path, opts...)

	var hops []types.Hop
	for {
		hop, ok, err := r.Next()
		if err != nil {
			return hops, err
		}
		if !ok {
			return hops, nil
		}
		hops = append(hops, hop)
	}
}
