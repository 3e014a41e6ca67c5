// File: bfs.go
// Role: Breadth-first search; Result.Depth doubles as the unweighted
//       shortest-path distance from the start node.

package traverse

import (
	"fmt"

	"github.com/grava-graph/grava/core"
)

// queueItem pairs a node with its depth in the BFS tree.
type queueItem[K comparable] struct {
	id    K
	depth int
}

// bfsWalker carries the mutable state of one BFS run.
type bfsWalker[K comparable] struct {
	graph *core.Graph[K]
	opts  Options[K]
	queue []queueItem[K]
	seen  map[K]bool
	res   *Result[K]
}

// BFS runs breadth-first search on g from start. Nodes are discovered in
// increasing distance; within one level, in the container's neighbor
// insertion order. Returns ErrNilGraph, ErrStartNotFound, ErrBadOption,
// a context error, or an OnVisit error.
//
// Complexity: O(V + E). Determinism: fully deterministic for a fixed
// graph construction order.
func BFS[K comparable](g *core.Graph[K], start K, opts ...Option[K]) (*Result[K], error) {
	if g == nil {
		return nil, ErrNilGraph
	}
	o, err := buildOptions(opts)
	if err != nil {
		return nil, err
	}
	if !g.HasNode(start) {
		return nil, ErrStartNotFound
	}

	n := g.NodeCount()
	w := &bfsWalker[K]{
		graph: g,
		opts:  o,
		queue: make([]queueItem[K], 0, n),
		seen:  make(map[K]bool, n),
		res:   newResult[K](n),
	}
	w.enqueue(start, 0)

	return w.res, w.loop()
}

// enqueue marks id discovered at depth d and appends it to the queue.
// The parent link is recorded by the caller before enqueueing.
func (w *bfsWalker[K]) enqueue(id K, d int) {
	w.seen[id] = true
	w.res.Depth[id] = d
	w.queue = append(w.queue, queueItem[K]{id: id, depth: d})
}

// loop drains the queue until empty, error, or cancellation.
func (w *bfsWalker[K]) loop() error {
	for len(w.queue) > 0 {
		select {
		case <-w.opts.Ctx.Done():
			return w.opts.Ctx.Err()
		default:
		}

		item := w.queue[0]
		w.queue = w.queue[1:]

		w.res.Order = append(w.res.Order, item.id)
		if err := w.opts.OnVisit(item.id, item.depth); err != nil {
			return fmt.Errorf("traverse: OnVisit at %v: %w", item.id, err)
		}
		if err := w.expand(item); err != nil {
			return err
		}
	}

	return nil
}

// expand enqueues item's unseen neighbors, honoring filter and depth
// limit.
func (w *bfsWalker[K]) expand(item queueItem[K]) error {
	nbrs, err := w.graph.Neighbors(item.id)
	if err != nil {
		return fmt.Errorf("traverse: neighbors of %v: %w", item.id, err)
	}
	next := item.depth + 1
	if w.opts.MaxDepth > 0 && next > w.opts.MaxDepth {
		return nil
	}
	for _, nbr := range nbrs {
		if w.seen[nbr] || !w.opts.Filter(item.id, nbr) {
			continue
		}
		w.res.Parent[nbr] = item.id
		w.enqueue(nbr, next)
	}

	return nil
}
