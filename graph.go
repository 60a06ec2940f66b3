// Package memds implements in-memory data structures, the main one
// being a generic directed graph.
package memds

import "errors"

var (
	ErrCyclicGraph = errors.New("cyclic graph")
)

type ThreadSafety int

const (
	ThreadUnsafe ThreadSafety = iota
	ThreadSafe
)

// Graph is the base capability set of a directed graph: mutation,
// inspection and traversal.
type Graph[T comparable] interface {
	AddNode(node T)
	AddEdge(from, to T)
	Nodes() []T
	DestinationNodes(node T) []T
	TraverseDFS(start T) []T
	TraverseBFS(start T) []T
}

// PathGraph extends Graph with shortest-path lookup and full reset.
type PathGraph[T comparable] interface {
	Graph[T]
	FindPath(start, end T) []T
	Reset()
}

// GraphEdge is a directed edge between two nodes.
type GraphEdge[T comparable] struct {
	From, To T
}

var (
	_ Graph[int]     = (*DirectedGraph[int])(nil)
	_ PathGraph[int] = (*DirectedGraph[int])(nil)
)
