package memds

import (
	"github.com/inoxlang/memds/internal/utils"
)

// FindPath returns an unweighted shortest path from the start node to the end
// node, both inclusive: consecutive nodes in the result are connected by an
// edge and no path with fewer edges exists. The result is empty if either
// endpoint is absent from the graph or if the end node is not reachable.
// FindPath(x, x) returns [x] whether or not a self edge exists.
func (g *DirectedGraph[T]) FindPath(start, end T) []T {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	//unlike the traversals both endpoints are required to exist.
	if !g.hasNodeNoLock(start) || !g.hasNodeNoLock(end) {
		return nil
	}

	if start == end {
		return []T{start}
	}

	//BFS with parent tracking, stopping as soon as the end node is discovered.
	parents := map[T]T{}
	seen := map[T]struct{}{start: {}}

	queue := NewArrayQueue[T]()
	queue.Enqueue(start)

	for !queue.Empty() {
		current, _ := queue.Dequeue()

		for _, neighbor := range g.adjacency[current] {
			if _, ok := seen[neighbor]; ok {
				continue
			}
			seen[neighbor] = struct{}{}
			parents[neighbor] = current
			queue.Enqueue(neighbor)

			if neighbor == end {
				return reconstructPath(parents, start, end)
			}
		}
	}

	return nil
}

// reconstructPath walks the parent mapping from the end node back to the
// start node. The end node must have been discovered by a BFS rooted at the
// start node.
func reconstructPath[T comparable](parents map[T]T, start, end T) []T {
	path := []T{end}

	for current := end; current != start; {
		current = parents[current]
		path = append(path, current)
	}

	utils.Reverse(path)
	return path
}
