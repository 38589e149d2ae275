// Package solver finds shortest paths through a maze grid with a
// breadth-first search that respects walls.
package solver

import (
	"iter"

	"github.com/san-kum/amazeing/internal/maze"
)

// Unvisited marks cells the search never reached.
const Unvisited = -1

// DistanceMap holds BFS distances from a start cell.
type DistanceMap struct {
	width int
	start maze.Coord
	dist  []int
}

// At returns the distance recorded for c, or Unvisited.
func (m *DistanceMap) At(c maze.Coord) int {
	return m.dist[c.Y*m.width+c.X]
}

// Start returns the cell the search began from.
func (m *DistanceMap) Start() maze.Coord { return m.start }

// Reached counts cells with a recorded distance.
func (m *DistanceMap) Reached() int {
	n := 0
	for _, d := range m.dist {
		if d != Unvisited {
			n++
		}
	}
	return n
}

// Farthest returns a cell with the largest distance, scanning rows top to
// bottom.
func (m *DistanceMap) Farthest() (maze.Coord, int) {
	best, bestIdx := Unvisited, 0
	for i, d := range m.dist {
		if d > best {
			best, bestIdx = d, i
		}
	}
	return maze.Coord{X: bestIdx % m.width, Y: bestIdx / m.width}, best
}

func mustContain(g *maze.Grid, op string, c maze.Coord) {
	if !g.Contains(c) {
		panic(&maze.GeometryError{Op: op, A: c, Wrapped: maze.ErrOutOfBounds})
	}
}

// search runs BFS from start. With stopAt set, it stops once that cell is
// dequeued.
func search(g *maze.Grid, start maze.Coord, stopAt *maze.Coord) *DistanceMap {
	m := &DistanceMap{
		width: g.Width(),
		start: start,
		dist:  make([]int, g.Width()*g.Height()),
	}
	for i := range m.dist {
		m.dist[i] = Unvisited
	}

	queue := make([]maze.Coord, 0, len(m.dist))
	queue = append(queue, start)
	m.dist[start.Y*m.width+start.X] = 0

	for head := 0; head < len(queue); head++ {
		cur := queue[head]
		if stopAt != nil && cur == *stopAt {
			break
		}
		d := m.At(cur)
		for _, dir := range maze.SearchOrder {
			if !g.CanMove(cur, dir) {
				continue
			}
			next := cur.Step(dir)
			idx := next.Y*m.width + next.X
			if m.dist[idx] != Unvisited {
				continue
			}
			m.dist[idx] = d + 1
			queue = append(queue, next)
		}
	}
	return m
}

// Distances runs a full BFS from start over the whole reachable region.
func Distances(g *maze.Grid, start maze.Coord) *DistanceMap {
	mustContain(g, "distances", start)
	return search(g, start, nil)
}

// Solve returns the shortest path from start to end, both included, or nil
// when end is unreachable. Among equal-length paths, the one picked is the
// one found by walking back from end and taking the first neighbour, in
// north, south, east, west order, whose distance is one less.
func Solve(g *maze.Grid, start, end maze.Coord) []maze.Coord {
	mustContain(g, "solve", start)
	mustContain(g, "solve", end)
	m := search(g, start, &end)
	return walkBack(g, m, end)
}

func walkBack(g *maze.Grid, m *DistanceMap, end maze.Coord) []maze.Coord {
	d := m.At(end)
	if d == Unvisited {
		return nil
	}

	path := make([]maze.Coord, 0, d+1)
	path = append(path, end)
	cur := end
	for d > 0 {
		found := false
		for _, dir := range maze.SearchOrder {
			prev := cur.Step(dir)
			if !g.Contains(prev) || m.At(prev) != d-1 {
				continue
			}
			// the edge the search crossed runs from prev to cur
			if !g.CanMove(prev, dir.Opposite()) {
				continue
			}
			cur = prev
			found = true
			break
		}
		if !found {
			return nil
		}
		path = append(path, cur)
		d--
	}

	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}

// Steps solves once and yields every prefix of the path, from length 1 up
// to the full path. It yields nothing when end is unreachable. Each prefix
// shares storage with the final path.
func Steps(g *maze.Grid, start, end maze.Coord) iter.Seq[[]maze.Coord] {
	return func(yield func([]maze.Coord) bool) {
		path := Solve(g, start, end)
		for i := 1; i <= len(path); i++ {
			if !yield(path[:i:i]) {
				return
			}
		}
	}
}
