// File: types.go
// Role: Sentinel errors, functional options, and the shared Result record
//       for both searches.

package traverse

import (
	"context"
	"errors"
	"fmt"
)

var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("traverse: graph is nil")

	// ErrStartNotFound is returned when the start node is absent.
	ErrStartNotFound = errors.New("traverse: start node not found")

	// ErrBadOption is returned when an option carries an invalid value.
	ErrBadOption = errors.New("traverse: invalid option")
)

// Option configures a search via functional arguments. An invalid value
// (e.g. a negative depth limit) is recorded and surfaced as ErrBadOption
// when the search is invoked.
type Option[K comparable] func(*Options[K])

// Options holds the parameters and callbacks of one search invocation.
type Options[K comparable] struct {
	// Ctx allows cancellation and deadlines; defaults to Background.
	Ctx context.Context

	// MaxDepth, if > 0, stops exploring beyond this depth from the start.
	// 0 disables the limit.
	MaxDepth int

	// Filter skips the edge curr→next when it returns false.
	Filter func(curr, next K) bool

	// OnVisit is the pre-order hook, called once per discovered node with
	// its depth. A returned error aborts the search.
	OnVisit func(id K, depth int) error

	// OnExit is the DFS post-order hook, called after a node's subtree is
	// fully explored. BFS ignores it. A returned error aborts the search.
	OnExit func(id K) error

	// Forest restarts DFS from every unvisited node, covering
	// disconnected components. BFS ignores it.
	Forest bool

	err error
}

// defaultOptions returns the no-op configuration.
func defaultOptions[K comparable]() Options[K] {
	return Options[K]{
		Ctx:     context.Background(),
		Filter:  func(K, K) bool { return true },
		OnVisit: func(K, int) error { return nil },
		OnExit:  func(K) error { return nil },
	}
}

// WithContext sets a custom context for cancellation.
func WithContext[K comparable](ctx context.Context) Option[K] {
	return func(o *Options[K]) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxDepth stops exploration at the given depth.
//
//	d > 0:  nodes deeper than d from the start are not discovered
//	d == 0: explicit no limit
//	d < 0:  invalid, surfaced as ErrBadOption
func WithMaxDepth[K comparable](d int) Option[K] {
	return func(o *Options[K]) {
		if d < 0 {
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrBadOption, d)
			return
		}
		o.MaxDepth = d
	}
}

// WithFilter skips edges for which fn returns false.
func WithFilter[K comparable](fn func(curr, next K) bool) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.Filter = fn
		}
	}
}

// WithOnVisit registers the pre-order hook; returning an error from it
// aborts the search.
func WithOnVisit[K comparable](fn func(id K, depth int) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnVisit = fn
		}
	}
}

// WithOnExit registers the DFS post-order hook.
func WithOnExit[K comparable](fn func(id K) error) Option[K] {
	return func(o *Options[K]) {
		if fn != nil {
			o.OnExit = fn
		}
	}
}

// WithForest makes DFS restart from every unvisited node in insertion
// order, producing a spanning forest instead of a single tree.
func WithForest[K comparable]() Option[K] {
	return func(o *Options[K]) { o.Forest = true }
}

// buildOptions folds opts over the defaults and surfaces option errors.
func buildOptions[K comparable](opts []Option[K]) (Options[K], error) {
	o := defaultOptions[K]()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return o, o.err
	}

	return o, nil
}

// Result holds the outcome of one search:
//   - Order: nodes in discovery (pre-order) sequence.
//   - Depth: node → distance in edges from its tree root.
//   - Parent: node → predecessor in the search tree; roots are absent.
type Result[K comparable] struct {
	Order  []K
	Depth  map[K]int
	Parent map[K]K
}

// PathTo reconstructs the tree path from the root to dest. Returns an
// error when dest was never discovered.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if _, ok := r.Depth[dest]; !ok {
		return nil, fmt.Errorf("traverse: no path to %v", dest)
	}
	path := []K{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := r.Parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path, nil
}

// newResult allocates a Result with capacity hints for n nodes.
func newResult[K comparable](n int) *Result[K] {
	return &Result[K]{
		Order:  make([]K, 0, n),
		Depth:  make(map[K]int, n),
		Parent: make(map[K]K, n),
	}
}
