package memds

import (
	"slices"
	"sync"

	"github.com/inoxlang/memds/internal/utils"
)

// DirectedGraph is an adjacency-list directed graph keyed by node values.
// Nodes are compared with ==; the graph never interprets their content.
// Edges are not deduplicated and there is no edge or node removal: Reset
// is the only way to delete anything.
type DirectedGraph[T comparable] struct {
	//node -> outgoing neighbors, in insertion order, duplicates kept.
	adjacency map[T][]T

	//insertion-ordered node list and its reverse index.
	//a node's index doubles as its id in the gonum adapter.
	nodes   []T
	indexes map[T]int64

	edgeCount int64

	lock *sync.RWMutex //if nil the graph is not thread safe
}

// NewDirectedGraph returns an empty DirectedGraph.
func NewDirectedGraph[T comparable](threadSafety ThreadSafety) *DirectedGraph[T] {
	graph := &DirectedGraph[T]{
		adjacency: make(map[T][]T),
		indexes:   make(map[T]int64),
	}

	if threadSafety == ThreadSafe {
		graph.lock = &sync.RWMutex{}
	}

	return graph
}

func (g *DirectedGraph[T]) NodeCount() int {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	return len(g.nodes)
}

func (g *DirectedGraph[T]) EdgeCount() int64 {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	return g.edgeCount
}

// AddNode inserts a node with an empty neighbor list.
// Adding a node that is already present is a no-op.
func (g *DirectedGraph[T]) AddNode(node T) {
	if g.lock != nil {
		g.lock.Lock()
		defer g.lock.Unlock()
	}

	g.addNodeNoLock(node)
}

func (g *DirectedGraph[T]) addNodeNoLock(node T) {
	if _, ok := g.indexes[node]; ok {
		return
	}

	g.indexes[node] = int64(len(g.nodes))
	g.nodes = append(g.nodes, node)
}

// AddEdge appends a directed edge from one node to another, registering
// either endpoint that is missing. Adding the same edge twice produces two
// entries; self edges are allowed.
func (g *DirectedGraph[T]) AddEdge(from, to T) {
	if g.lock != nil {
		g.lock.Lock()
		defer g.lock.Unlock()
	}

	g.addNodeNoLock(from)
	g.addNodeNoLock(to)

	g.adjacency[from] = append(g.adjacency[from], to)
	g.edgeCount++
}

// HasNode returns whether the node is present in the graph.
func (g *DirectedGraph[T]) HasNode(node T) bool {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	return g.hasNodeNoLock(node)
}

func (g *DirectedGraph[T]) hasNodeNoLock(node T) bool {
	_, ok := g.indexes[node]
	return ok
}

// Nodes returns all the nodes in the graph, in insertion order.
// The returned slice is a copy.
func (g *DirectedGraph[T]) Nodes() []T {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	return utils.CopySlice(g.nodes)
}

// DestinationNodes returns the outgoing neighbors of a node in insertion
// order, one entry per added edge. The result is empty (not an error) if the
// node is absent from the graph. The returned slice is a copy.
func (g *DirectedGraph[T]) DestinationNodes(node T) []T {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	return utils.CopySlice(g.adjacency[node])
}

// Edges returns all the edges in the graph, sources in node insertion order,
// destinations in edge insertion order.
func (g *DirectedGraph[T]) Edges() []GraphEdge[T] {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	var edges []GraphEdge[T]
	for _, src := range g.nodes {
		for _, dest := range g.adjacency[src] {
			edges = append(edges, GraphEdge[T]{From: src, To: dest})
		}
	}

	return edges
}

// HasEdgeFromTo returns whether at least one edge exists in the graph from
// the first node to the second one.
func (g *DirectedGraph[T]) HasEdgeFromTo(from, to T) bool {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	return g.hasEdgeFromToNoLock(from, to)
}

func (g *DirectedGraph[T]) hasEdgeFromToNoLock(from, to T) bool {
	return slices.Contains(g.adjacency[from], to)
}

// HasEdgeBetween returns whether an edge exists between two nodes without
// considering direction.
func (g *DirectedGraph[T]) HasEdgeBetween(x, y T) bool {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	return g.hasEdgeFromToNoLock(x, y) || g.hasEdgeFromToNoLock(y, x)
}

// Reset discards all nodes and edges, the graph is equivalent to a freshly
// constructed instance afterwards.
func (g *DirectedGraph[T]) Reset() {
	if g.lock != nil {
		g.lock.Lock()
		defer g.lock.Unlock()
	}

	g.adjacency = make(map[T][]T)
	g.indexes = make(map[T]int64)
	g.nodes = nil
	g.edgeCount = 0
}

// nodeAtNoLock returns the node at the given insertion index.
func (g *DirectedGraph[T]) nodeAtNoLock(id int64) (_ T, _ bool) {
	if id < 0 || id >= int64(len(g.nodes)) {
		return
	}
	return g.nodes[id], true
}
