// File: dfs.go
// Role: Recursive depth-first search, single-source or full forest, with
//       pre- and post-order hooks.

package traverse

import (
	"fmt"

	"github.com/grava-graph/grava/core"
)

// dfsWalker carries the mutable state of one DFS run.
type dfsWalker[K comparable] struct {
	graph *core.Graph[K]
	opts  Options[K]
	seen  map[K]bool
	res   *Result[K]
}

// DFS performs depth-first search on g. In single-source mode it starts
// from start; with WithForest it restarts from every unvisited node in
// insertion order and start is ignored. Result.Order is pre-order;
// OnExit fires in post-order. Returns ErrNilGraph, ErrStartNotFound,
// ErrBadOption, a context error, or a hook error.
//
// Complexity: O(V + E) time, O(V) recursion depth worst case.
func DFS[K comparable](g *core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !o.Forest && !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	n := g.NodeCount()
	w := &dfsWalker[K]{
		graph: g,
		opts:  o,
		seen:  make(map[K]bool, n),
		res:   newResult[K](n),
	}

	if o.Forest {
		for id := range g.Nodes().Seq() {
			if w.seen[id] {
				continue
			}
			if err = w.visit(id, 0); err != nil {
				return w.res, err
			}
		}
	} else if err = w.visit(start, 0); err != nil {
		return w.res, err
	}

	return w.res, nil
}

// visit explores id at the given depth, recursing into unseen neighbors.
func (w *dfsWalker[K]) visit(id K, depth int) error {
	select {
	case <-w.opts.Ctx.Done():
		return w.opts.Ctx.Err()
	default:
	}

	w.seen[id] = true
	w.res.Depth[id] = depth
	w.res.Order = append(w.res.Order, id)
	if err := w.opts.OnVisit(id, depth); err != nil {
		return fmt.Errorf("traverse: OnVisit at %v: %w", id, err)
	}

	if w.opts.MaxDepth == 0 || depth < w.opts.MaxDepth {
		nbrs, err := w.graph.Neighbors(id)
		if err != nil {
			return fmt.Errorf("traverse: neighbors of %v: %w", id, err)
		}
		for _, nbr := range nbrs {
			if w.seen[nbr] || !w.opts.Filter(id, nbr) {
				continue
			}
			w.res.Parent[nbr] = id
			if err = w.visit(nbr, depth+1); err != nil {
				return err
			}
		}
	}

	if err := w.opts.OnExit(id); err != nil {
		return fmt.Errorf("traverse: OnExit at %v: %w", id, err)
	}

	return nil
}
