// Command pathgrid visualizes BFS, A* and Dijkstra on an editable grid.
package main

func main() {
	Execute()
}
