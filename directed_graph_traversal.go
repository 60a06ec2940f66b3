package memds

// TraverseDFS returns the nodes reachable from the start node in depth-first
// pre-order: each node appears exactly once in first-visit order, neighbor
// lists being followed in insertion order. A start node absent from the graph
// is treated as an isolated node: the result is the singleton [start] and the
// graph is not modified.
func (g *DirectedGraph[T]) TraverseDFS(start T) []T {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	var visited []T
	seen := map[T]struct{}{}

	//iterative equivalent of the recursive pre-order traversal: neighbors
	//are pushed in reverse so that they are popped in insertion order.
	stack := []T{start}

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if _, ok := seen[current]; ok {
			continue
		}
		seen[current] = struct{}{}
		visited = append(visited, current)

		neighbors := g.adjacency[current]
		for i := len(neighbors) - 1; i >= 0; i-- {
			if _, ok := seen[neighbors[i]]; !ok {
				stack = append(stack, neighbors[i])
			}
		}
	}

	return visited
}

// TraverseBFS returns the nodes reachable from the start node in
// breadth-first order, neighbor lists being followed in insertion order.
// Nodes are marked as seen when they are enqueued, so each node appears
// exactly once. The unknown-start policy is the same as TraverseDFS's.
func (g *DirectedGraph[T]) TraverseBFS(start T) []T {
	if g.lock != nil {
		g.lock.RLock()
		defer g.lock.RUnlock()
	}

	var visited []T
	seen := map[T]struct{}{start: {}}

	queue := NewArrayQueue[T]()
	queue.Enqueue(start)

	for !queue.Empty() {
		current, _ := queue.Dequeue()
		visited = append(visited, current)

		for _, neighbor := range g.adjacency[current] {
			if _, ok := seen[neighbor]; !ok {
				seen[neighbor] = struct{}{}
				queue.Enqueue(neighbor)
			}
		}
	}

	return visited
}
