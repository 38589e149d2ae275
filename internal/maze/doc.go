// Package maze provides the grid model shared by the generator, the solver and
// every renderer or serializer of a maze.
//
// A maze is a rectangular grid of cells. Each cell stores a 4-bit wall mask:
//
//   - bit 0 ([North], 1): wall on the north side
//   - bit 1 ([East], 2):  wall on the east side
//   - bit 2 ([South], 4): wall on the south side
//   - bit 3 ([West], 8):  wall on the west side
//
// A set bit means the wall is present. Every cell starts as [Closed] (15).
// Walls between neighbours are always kept consistent: [Grid.Carve] clears
// both sides of a shared wall at once, and it is the only way to open one.
//
// # Example
//
//	g, _ := maze.NewGrid(5, 5)
//	g.Carve(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 1, Y: 0})
//	g.HasWall(maze.Coord{X: 1, Y: 0}, maze.West) // false
//
// # Thread Safety
//
// Grid is NOT safe for concurrent mutation. Clone it before handing a
// snapshot to another goroutine.
package maze
