// File: topo.go
// Role: DFS three-color sorter shared by TopologicalSort and HasCycle.

package topo

import (
	"context"
	"errors"
	"fmt"

	"github.com/grava-graph/grava/core"
)

var (
	// ErrNilGraph is returned when a nil graph pointer is passed.
	ErrNilGraph = errors.New("topo: graph is nil")

	// ErrCycle is returned by TopologicalSort when the graph contains a
	// directed cycle. It wraps core.ErrStructural.
	ErrCycle = fmt.Errorf("topo: cycle detected: %w", core.ErrStructural)
)

// Node visitation states of the DFS coloring scheme.
const (
	white = iota // undiscovered
	gray         // on the current DFS path
	black        // fully explored
)

// Option configures a sort or cycle check.
type Option func(*options)

type options struct {
	ctx context.Context
}

func defaultOptions() options {
	return options{ctx: context.Background()}
}

// WithContext sets a cancellation context. A nil context is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// sorter carries the coloring state of one DFS sweep.
type sorter[K comparable] struct {
	graph *core.Graph[K]
	opts  options
	color map[K]int
	order []K // post-order accumulator
}

// TopologicalSort returns a topological ordering of every node in g.
// Source components are emitted in node insertion order. Returns
// ErrNilGraph, core.ErrCapabilityMismatch for undirected graphs, ErrCycle
// when a back-arc is found, or a context error.
//
// Complexity: O(V + E). Determinism: a fixed construction order yields a
// fixed result.
func TopologicalSort[K comparable](g *core.Graph[K], opts ...Option) ([]K, error) {
	s, err := newSorter(g, opts)
	if err != nil {
		return nil, err
	}
	if err = s.sweep(); err != nil {
		return nil, err
	}

	// Reverse post-order is the topological order.
	for i, j := 0, len(s.order)-1; i < j; i, j = i+1, j-1 {
		s.order[i], s.order[j] = s.order[j], s.order[i]
	}

	return s.order, nil
}

// HasCycle reports whether g contains a directed cycle. Returns
// ErrNilGraph, core.ErrCapabilityMismatch for undirected graphs, or a
// context error.
//
// Complexity: O(V + E), stopping at the first back-arc.
func HasCycle[K comparable](g *core.Graph[K], opts ...Option) (bool, error) {
	s, err := newSorter(g, opts)
	if err != nil {
		return false, err
	}
	switch err = s.sweep(); {
	case errors.Is(err, ErrCycle):
		return true, nil
	case err != nil:
		return false, err
	default:
		return false, nil
	}
}

// newSorter validates inputs and prepares the coloring state.
func newSorter[K comparable](g *core.Graph[K], opts []Option) (*sorter[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	if err := core.RequireDirected(g); err != nil {
		return nil, err
	}
	o := defaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	n := g.NodeCount()

	return &sorter[K]{
		graph: g,
		opts:  o,
		color: make(map[K]int, n),
		order: make([]K, 0, n),
	}, nil
}

// sweep drives the DFS from every white node in insertion order.
func (s *sorter[K]) sweep() error {
	for id := range s.graph.Nodes().Seq() {
		if s.color[id] == white {
			if err := s.visit(id); err != nil {
				return err
			}
		}
	}

	return nil
}

// visit explores id, reporting a gray re-entry as a cycle.
func (s *sorter[K]) visit(id K) error {
	select {
	case <-s.opts.ctx.Done():
		return s.opts.ctx.Err()
	default:
	}

	switch s.color[id] {
	case gray:
		return ErrCycle
	case black:
		return nil
	}
	s.color[id] = gray

	succ, err := s.graph.Successors(id)
	if err != nil {
		return fmt.Errorf("topo: successors of %v: %w", id, err)
	}
	for _, next := range succ {
		if err = s.visit(next); err != nil {
			return err
		}
	}

	s.color[id] = black
	s.order = append(s.order, id)

	return nil
}
