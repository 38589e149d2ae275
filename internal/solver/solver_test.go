package solver_test

import (
	"errors"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/san-kum/amazeing/internal/generator"
	"github.com/san-kum/amazeing/internal/maze"
	"github.com/san-kum/amazeing/internal/solver"
)

func openGrid(w, h int) *maze.Grid {
	g, err := maze.NewGrid(w, h)
	Expect(err).NotTo(HaveOccurred())
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			c := maze.Coord{X: x, Y: y}
			if x+1 < w {
				g.Carve(c, maze.Coord{X: x + 1, Y: y})
			}
			if y+1 < h {
				g.Carve(c, maze.Coord{X: x, Y: y + 1})
			}
		}
	}
	return g
}

func manhattan(a, b maze.Coord) int {
	dx, dy := a.X-b.X, a.Y-b.Y
	if dx < 0 {
		dx = -dx
	}
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

var _ = Describe("Solve", func() {
	It("returns an empty path on a fully walled grid", func() {
		g, _ := maze.NewGrid(4, 4)
		Expect(solver.Solve(g, maze.Coord{X: 0, Y: 0}, maze.Coord{X: 3, Y: 3})).To(BeEmpty())
	})

	It("returns the single start cell when start equals end", func() {
		g, _ := maze.NewGrid(2, 2)
		c := maze.Coord{X: 1, Y: 1}
		Expect(solver.Solve(g, c, c)).To(Equal([]maze.Coord{c}))
	})

	It("finds a Manhattan-length path on an open grid", func() {
		g := openGrid(5, 5)
		start, end := maze.Coord{X: 0, Y: 0}, maze.Coord{X: 4, Y: 4}
		path := solver.Solve(g, start, end)
		Expect(path).To(HaveLen(manhattan(start, end) + 1))
		Expect(solver.Distances(g, start).At(end)).To(Equal(len(path) - 1))
		Expect(solver.Verify(g, path, start, end)).To(Succeed())
	})

	It("breaks ties by walking back north, south, east, west", func() {
		g := openGrid(5, 5)
		path := solver.Solve(g, maze.Coord{X: 0, Y: 0}, maze.Coord{X: 4, Y: 4})
		Expect(solver.CardinalString(path)).To(Equal("EEEESSSS"))

		path = solver.Solve(g, maze.Coord{X: 4, Y: 4}, maze.Coord{X: 0, Y: 0})
		Expect(solver.CardinalString(path)).To(Equal("WWWWNNNN"))
	})

	It("follows the only corridor around a wall", func() {
		// 3x2 grid shaped like a U: down the left, across the bottom, up the right
		g, _ := maze.NewGrid(3, 2)
		g.Carve(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 0, Y: 1})
		g.Carve(maze.Coord{X: 0, Y: 1}, maze.Coord{X: 1, Y: 1})
		g.Carve(maze.Coord{X: 1, Y: 1}, maze.Coord{X: 2, Y: 1})
		g.Carve(maze.Coord{X: 2, Y: 1}, maze.Coord{X: 2, Y: 0})

		path := solver.Solve(g, maze.Coord{X: 0, Y: 0}, maze.Coord{X: 2, Y: 0})
		Expect(solver.CardinalString(path)).To(Equal("SEEN"))
	})

	It("reports unreachable cells on a split grid", func() {
		g, _ := maze.NewGrid(3, 1)
		g.Carve(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 1, Y: 0})
		Expect(solver.Solve(g, maze.Coord{X: 0, Y: 0}, maze.Coord{X: 2, Y: 0})).To(BeNil())

		m := solver.Distances(g, maze.Coord{X: 0, Y: 0})
		Expect(m.Reached()).To(Equal(2))
		Expect(m.At(maze.Coord{X: 2, Y: 0})).To(Equal(solver.Unvisited))
	})

	It("panics on coordinates outside the grid", func() {
		g, _ := maze.NewGrid(2, 2)
		Expect(func() {
			solver.Solve(g, maze.Coord{X: 0, Y: 0}, maze.Coord{X: 2, Y: 0})
		}).To(PanicWith(MatchError(maze.ErrOutOfBounds)))
	})

	Context("on generated mazes", func() {
		It("connects every pair of cells in a perfect maze", func() {
			gen, err := generator.New(6, 5, &generator.Options{Seed: 7, NoPattern: true})
			Expect(err).NotTo(HaveOccurred())
			g := gen.Generate(maze.Coord{X: 0, Y: 0}, maze.Coord{X: 5, Y: 4}, true)

			m := solver.Distances(g, maze.Coord{X: 2, Y: 2})
			Expect(m.Reached()).To(Equal(30))

			far, d := m.Farthest()
			path := solver.Solve(g, maze.Coord{X: 2, Y: 2}, far)
			Expect(path).To(HaveLen(d + 1))
		})

		It("returns the shortest path in an imperfect maze", func() {
			gen, _ := generator.New(12, 12, &generator.Options{Seed: 11})
			start, end := maze.Coord{X: 0, Y: 0}, maze.Coord{X: 11, Y: 11}
			g := gen.Generate(start, end, false)

			path := gen.Solve(start, end)
			Expect(path).NotTo(BeEmpty())
			Expect(solver.Distances(g, start).At(end)).To(Equal(len(path) - 1))
			Expect(solver.Verify(g, path, start, end)).To(Succeed())
		})
	})
})

var _ = Describe("Steps", func() {
	It("yields every prefix of the solved path", func() {
		g := openGrid(4, 3)
		start, end := maze.Coord{X: 0, Y: 0}, maze.Coord{X: 3, Y: 2}
		full := solver.Solve(g, start, end)

		var lengths []int
		var last []maze.Coord
		for prefix := range solver.Steps(g, start, end) {
			lengths = append(lengths, len(prefix))
			last = prefix
		}
		Expect(lengths).To(Equal([]int{1, 2, 3, 4, 5, 6}))
		Expect(last).To(Equal(full))
	})

	It("yields nothing for an unreachable target", func() {
		g, _ := maze.NewGrid(2, 2)
		count := 0
		for range solver.Steps(g, maze.Coord{X: 0, Y: 0}, maze.Coord{X: 1, Y: 1}) {
			count++
		}
		Expect(count).To(BeZero())
	})

	It("stops when the consumer stops", func() {
		g := openGrid(5, 1)
		count := 0
		for range solver.Steps(g, maze.Coord{X: 0, Y: 0}, maze.Coord{X: 4, Y: 0}) {
			count++
			if count == 2 {
				break
			}
		}
		Expect(count).To(Equal(2))
	})
})

var _ = Describe("CardinalString", func() {
	It("encodes empty and single-cell paths as an empty string", func() {
		Expect(solver.CardinalString(nil)).To(BeEmpty())
		Expect(solver.CardinalString([]maze.Coord{{X: 3, Y: 3}})).To(BeEmpty())
	})

	It("encodes each step with its cardinal letter", func() {
		path := []maze.Coord{{X: 1, Y: 1}, {X: 1, Y: 0}, {X: 2, Y: 0}, {X: 2, Y: 1}, {X: 1, Y: 1}}
		Expect(solver.CardinalString(path)).To(Equal("NESW"))
	})

	It("replays back to the same coordinates", func() {
		gen, _ := generator.New(9, 7, &generator.Options{Seed: 3})
		start, end := maze.Coord{X: 0, Y: 6}, maze.Coord{X: 8, Y: 0}
		gen.Generate(start, end, true)
		path := gen.Solve(start, end)

		replayed, err := solver.FollowCardinal(start, solver.CardinalString(path))
		Expect(err).NotTo(HaveOccurred())
		Expect(replayed).To(Equal(path))
	})

	It("rejects unknown letters", func() {
		_, err := solver.FollowCardinal(maze.Coord{}, "NEX")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("Verify", func() {
	It("rejects a path crossing a wall", func() {
		g, _ := maze.NewGrid(2, 1)
		err := solver.Verify(g, []maze.Coord{{X: 0, Y: 0}, {X: 1, Y: 0}}, maze.Coord{X: 0, Y: 0}, maze.Coord{X: 1, Y: 0})
		Expect(errors.Is(err, solver.ErrBrokenPath)).To(BeTrue())
	})

	It("rejects an empty path", func() {
		g, _ := maze.NewGrid(2, 1)
		Expect(solver.Verify(g, nil, maze.Coord{}, maze.Coord{X: 1})).To(MatchError(solver.ErrEmptyPath))
	})
})
