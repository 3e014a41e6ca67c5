// File: types.go
// Role: Sentinel errors, functional options, and the shortest-path result
//       record with path reconstruction.

package paths

import (
	"errors"
	"fmt"
	"math"

	"github.com/grava-graph/grava/core"
)

// DefaultWeightAttr is the attribute name weights are read from unless
// WithWeightAttr overrides it.
const DefaultWeightAttr = "weight"

var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("paths: graph is nil")

	// ErrSourceNotFound is returned when the source node is absent.
	ErrSourceNotFound = errors.New("paths: source node not found")

	// ErrNegativeWeight is returned when any edge carries a negative
	// weight. It wraps core.ErrStructural.
	ErrNegativeWeight = fmt.Errorf("paths: negative edge weight: %w", core.ErrStructural)
)

// Option configures a shortest-path run.
type Option func(*options)

type options struct {
	weightAttr  string
	maxDistance float64
}

func defaultOptions() options {
	return options{
		weightAttr:  DefaultWeightAttr,
		maxDistance: math.Inf(1),
	}
}

// WithWeightAttr sets the attribute name weights are read from. An empty
// name is ignored.
func WithWeightAttr(name string) Option {
	return func(o *options) {
		if name != "" {
			o.weightAttr = name
		}
	}
}

// WithMaxDistance stops the search once the cheapest unsettled node is
// farther than x from the source; such nodes stay unreachable in the
// result. Panics if x is negative: a negative bound is a programmer
// error, not a runtime condition.
func WithMaxDistance(x float64) Option {
	if x < 0 {
		panic(fmt.Sprintf("paths: WithMaxDistance(%v): bound must be non-negative", x))
	}
	return func(o *options) { o.maxDistance = x }
}

// Result holds single-source shortest paths:
//   - Dist: node → minimal cost from the source; absent if unreachable.
//   - Parent: node → predecessor on one cheapest path; source is absent.
type Result[K comparable] struct {
	Dist   map[K]float64
	Parent map[K]K
}

// Reached reports whether dest was settled by the search.
func (r *Result[K]) Reached(dest K) bool {
	_, ok := r.Dist[dest]

	return ok
}

// PathTo reconstructs one cheapest path from the source to dest. Returns
// an error when dest was not reached.
func (r *Result[K]) PathTo(dest K) ([]K, error) {
	if !r.Reached(dest) {
		return nil, fmt.Errorf("paths: no path to %v", dest)
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
