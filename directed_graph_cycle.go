package memds

import (
	"gonum.org/v1/gonum/graph/topo"
)

// HasCycle returns whether the graph contains at least one directed cycle,
// self edges included.
func (g *DirectedGraph[T]) HasCycle() bool {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	//a self edge is a cycle on its own, check them before the full search.
	if g.hasSelfEdgeNoLock() {
		return true
	}

	adapter := &directedGraphAdapter[T]{graph: g}

	cycles := topo.DirectedCyclesIn(adapter)
	return len(cycles) > 0
}

// TopologicalSort returns the nodes in an order such that every edge goes
// from an earlier node to a later one, or ErrCyclicGraph if no such order
// exists.
func (g *DirectedGraph[T]) TopologicalSort() ([]T, error) {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	if g.hasSelfEdgeNoLock() {
		return nil, ErrCyclicGraph
	}

	adapter := &directedGraphAdapter[T]{graph: g}

	ordered, err := topo.Sort(adapter)
	if err != nil {
		return nil, ErrCyclicGraph
	}

	sorted := make([]T, len(ordered))
	for i, gonumNode := range ordered {
		//the id necessarily comes from the adapter.
		node, _ := g.nodeAtNoLock(gonumNode.ID())
		sorted[i] = node
	}

	return sorted, nil
}

func (g *DirectedGraph[T]) hasSelfEdgeNoLock() bool {
	for _, node := range g.nodes {
		if g.hasEdgeFromToNoLock(node, node) {
			return true
		}
	}
	return false
}
