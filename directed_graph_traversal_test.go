package memds

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/inoxlang/memds/internal/utils"
)

func TestTraverseDFS(t *testing.T) {

	t.Run("single node, no edges", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddNode("A")

		assert.Equal(t, []string{"A"}, g.TraverseDFS("A"))
	})

	t.Run("start node not in the graph: singleton result, graph not modified", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")

		assert.Equal(t, []string{"X"}, g.TraverseDFS("X"))
		assert.False(t, g.HasNode("X"))
	})

	t.Run("chain", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")
		g.AddEdge("B", "C")

		assert.Equal(t, []string{"A", "B", "C"}, g.TraverseDFS("A"))
	})

	t.Run("branching: first neighbor's subtree is exhausted first", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")
		g.AddEdge("A", "C")
		g.AddEdge("B", "D")

		assert.Equal(t, []string{"A", "B", "D", "C"}, g.TraverseDFS("A"))
	})

	t.Run("diamond: shared descendant is visited once", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")
		g.AddEdge("A", "C")
		g.AddEdge("B", "D")
		g.AddEdge("C", "D")

		assert.Equal(t, []string{"A", "B", "D", "C"}, g.TraverseDFS("A"))
	})

	t.Run("cycle does not loop", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")
		g.AddEdge("B", "C")
		g.AddEdge("C", "A")

		assert.Equal(t, []string{"A", "B", "C"}, g.TraverseDFS("A"))
	})

	t.Run("duplicate edges do not cause duplicate visits", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")
		g.AddEdge("A", "B")

		assert.Equal(t, []string{"A", "B"}, g.TraverseDFS("A"))
	})

	t.Run("exactly the reachable nodes are visited", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")
		g.AddEdge("B", "C")
		//unreachable component
		g.AddEdge("D", "E")

		visited := g.TraverseDFS("A")

		assert.ElementsMatch(t, []string{"A", "B", "C"}, visited)
		assert.False(t, utils.SliceContains(visited, "D"))
		assert.False(t, utils.SliceContains(visited, "E"))
	})

	t.Run("traversal from a mid node only sees its descendants", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")
		g.AddEdge("B", "C")

		assert.Equal(t, []string{"B", "C"}, g.TraverseDFS("B"))
	})
}

func TestTraverseBFS(t *testing.T) {

	t.Run("single node, no edges", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddNode("A")

		assert.Equal(t, []string{"A"}, g.TraverseBFS("A"))
	})

	t.Run("start node not in the graph: singleton result, graph not modified", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")

		assert.Equal(t, []string{"X"}, g.TraverseBFS("X"))
		assert.False(t, g.HasNode("X"))
	})

	t.Run("layer order", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")
		g.AddEdge("A", "C")
		g.AddEdge("B", "D")
		g.AddEdge("C", "E")

		assert.Equal(t, []string{"A", "B", "C", "D", "E"}, g.TraverseBFS("A"))
	})

	t.Run("triangle: C is discovered as a neighbor of A, not through B", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")
		g.AddEdge("B", "C")
		g.AddEdge("A", "C")

		assert.Equal(t, []string{"A", "B", "C"}, g.TraverseBFS("A"))
	})

	t.Run("cycle does not loop", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")
		g.AddEdge("B", "C")
		g.AddEdge("C", "A")

		assert.Equal(t, []string{"A", "B", "C"}, g.TraverseBFS("A"))
	})

	t.Run("duplicate edges do not cause duplicate visits", func(t *testing.T) {
		g := NewDirectedGraph[string](ThreadUnsafe)
		g.AddEdge("A", "B")
		g.AddEdge("A", "B")

		assert.Equal(t, []string{"A", "B"}, g.TraverseBFS("A"))
	})
}
