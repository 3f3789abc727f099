package pathfind

// Edge is a weighted connection to a neighbouring vertex.
type Edge struct {
	To   int
	Cost int
}

// Graph is an adjacency list keyed by vertex ID.
type Graph map[int][]Edge

// Dijkstra returns the cost of the shortest path from start to every
// reachable vertex, and a predecessor map from which paths can be rebuilt
// with ConstructPath. Unreachable vertices are absent from both maps.
func Dijkstra(graph Graph, start int) (distance, previous map[int]int) {
	distance = map[int]int{start: 0}
	previous = make(map[int]int)
	queue := NewBinaryQueue()
	queue.Set(start, 0)

	for {
		vertex, cost, ok := queue.Pop()
		if !ok {
			return distance, previous
		}
		for _, edge := range graph[vertex] {
			newDistance := cost + edge.Cost
			if known, seen := distance[edge.To]; !seen || newDistance < known {
				distance[edge.To] = newDistance
				previous[edge.To] = vertex
				queue.Set(edge.To, newDistance)
			}
		}
	}
}

// ConstructPath returns the shortest path from the search's start vertex to
// the given vertex, using the predecessor map returned by Dijkstra.
func ConstructPath(previous map[int]int, vertex int) []int {
	var path []int
	for {
		path = append(path, vertex)
		next, ok := previous[vertex]
		if !ok {
			break
		}
		vertex = next
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
