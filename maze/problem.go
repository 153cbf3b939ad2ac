package maze

import "github.com/katalvlaran/backtrack/search"

// Problem walks a *Maze from its start tile. It holds no state; the cost
// model lives in the Maze itself.
type Problem struct{}

var _ search.Problem[Point, Heading, *Maze] = Problem{}

// Initial places the walker on 'S', facing Options.Facing, at zero cost.
func (Problem) Initial(m *Maze) (Point, Heading) {
	return m.start, Heading{Facing: m.opts.Facing, Cost: 0}
}

// NextStates returns the in-bounds, non-wall neighbours of p in N, E, S, W order.
func (Problem) NextStates(m *Maze, p Point) []Point {
	out := make([]Point, 0, len(directions))
	for _, d := range directions {
		n := Point{X: p.X + d.dx, Y: p.Y + d.dy}
		if !m.InBounds(n) || m.At(n) == Wall {
			continue
		}
		out = append(out, n)
	}

	return out
}

// NextAccum turns to face next and steps into it.
func (Problem) NextAccum(m *Maze, last Heading, from, next Point) Heading {
	facing := directionOf(from, next)

	return Heading{
		Facing: facing,
		Cost:   last.Cost + m.opts.StepCost + last.Facing.Turns(facing)*m.opts.TurnCost,
	}
}

// Score is defined only on 'E' tiles and equals minus the path cost.
func (Problem) Score(m *Maze, p Point, h Heading) (int, bool) {
	if m.At(p) != End {
		return 0, false
	}

	return -h.Cost, true
}

// directionOf returns the heading of the unit move from → to.
func directionOf(from, to Point) Direction {
	dx, dy := to.X-from.X, to.Y-from.Y
	for _, d := range directions {
		if d.dx == dx && d.dy == dy {
			return d.dir
		}
	}

	return North // unreachable for neighbours produced by NextStates
}

// Solution is the outcome of solving a maze.
type Solution struct {
	// Path is the cheapest route from 'S' to an 'E' tile, inclusive.
	Path []Point
	// Cost is the total step and turn cost of Path.
	Cost int
	// Found is false when no 'E' tile is reachable; Path is then empty.
	Found bool
	// Stats describes the underlying traversal.
	Stats search.Stats
}

// Solve finds the cheapest path from 'S' to any 'E' by exhaustive search.
func Solve(m *Maze, opts ...search.Option) Solution {
	res := search.Run[Point, Heading, *Maze](Problem{}, m, opts...)
	if !res.Found() {
		return Solution{Path: res.Path, Stats: res.Stats}
	}

	return Solution{
		Path:  res.Path,
		Cost:  -res.Score,
		Found: true,
		Stats: res.Stats,
	}
}
