package memds

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"
)

var (
	_ graph.Directed = (*directedGraphAdapter[int])(nil)
	_ graph.Node     = (*nodeAdapter)(nil)
	_ graph.Edge     = (*edgeAdapter)(nil)
)

// directedGraphAdapter exposes a DirectedGraph as a gonum graph.Directed,
// node insertion indexes serving as gonum ids. Parallel edges collapse into a
// single edge. The adapter never locks: if the underlying graph is thread
// safe the caller must hold its lock for the lifetime of the adapter.
type directedGraphAdapter[T comparable] struct {
	graph *DirectedGraph[T]
}

func (a *directedGraphAdapter[T]) Node(id int64) graph.Node {
	if _, ok := a.graph.nodeAtNoLock(id); !ok {
		return nil
	}
	return &nodeAdapter{id: id}
}

func (a *directedGraphAdapter[T]) Nodes() graph.Nodes {
	nodeMap := map[int64]graph.Node{}

	for index := range a.graph.nodes {
		id := int64(index)
		nodeMap[id] = &nodeAdapter{id: id}
	}

	return iterator.NewNodes(nodeMap)
}

func (a *directedGraphAdapter[T]) From(id int64) graph.Nodes {
	nodeMap := map[int64]graph.Node{}

	node, ok := a.graph.nodeAtNoLock(id)
	if !ok {
		return iterator.NewNodes(nodeMap)
	}

	for _, dest := range a.graph.adjacency[node] {
		destId := a.graph.indexes[dest]
		nodeMap[destId] = &nodeAdapter{id: destId}
	}

	return iterator.NewNodes(nodeMap)
}

// To scans the whole adjacency mapping: the graph does not maintain a reverse
// edge index.
func (a *directedGraphAdapter[T]) To(id int64) graph.Nodes {
	nodeMap := map[int64]graph.Node{}

	node, ok := a.graph.nodeAtNoLock(id)
	if !ok {
		return iterator.NewNodes(nodeMap)
	}

	for _, src := range a.graph.nodes {
		if a.graph.hasEdgeFromToNoLock(src, node) {
			srcId := a.graph.indexes[src]
			nodeMap[srcId] = &nodeAdapter{id: srcId}
		}
	}

	return iterator.NewNodes(nodeMap)
}

func (a *directedGraphAdapter[T]) Edge(uid, vid int64) graph.Edge {
	u, ok := a.graph.nodeAtNoLock(uid)
	if !ok {
		return nil
	}
	v, ok := a.graph.nodeAtNoLock(vid)
	if !ok {
		return nil
	}

	if !a.graph.hasEdgeFromToNoLock(u, v) {
		return nil
	}

	return &edgeAdapter{from: uid, to: vid}
}

func (a *directedGraphAdapter[T]) HasEdgeFromTo(uid, vid int64) bool {
	return a.Edge(uid, vid) != nil
}

func (a *directedGraphAdapter[T]) HasEdgeBetween(xid, yid int64) bool {
	return a.HasEdgeFromTo(xid, yid) || a.HasEdgeFromTo(yid, xid)
}

type nodeAdapter struct {
	id int64
}

func (n nodeAdapter) ID() int64 {
	return n.id
}

type edgeAdapter struct {
	from, to int64
}

func (e *edgeAdapter) From() graph.Node {
	return &nodeAdapter{id: e.from}
}

func (e *edgeAdapter) To() graph.Node {
	return &nodeAdapter{id: e.to}
}

func (e *edgeAdapter) ReversedEdge() graph.Edge {
	return &edgeAdapter{
		from: e.to,
		to:   e.from,
	}
}
