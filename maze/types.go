// Package maze defines core types, options, and tile constants for the maze
// problem definition.
package maze

import (
	"fmt"
	"strings"
)

// Tile is the content of one maze cell.
type Tile byte

const (
	// Wall blocks movement.
	Wall Tile = '#'
	// Corridor is free to walk.
	Corridor Tile = '.'
	// Start is where the walker begins; exactly one per maze.
	Start Tile = 'S'
	// End is the goal; a maze may have none (no solution) or several.
	End Tile = 'E'
)

// parseTile maps an input rune to a Tile.
func parseTile(r rune) (Tile, bool) {
	if r > 0x7f {
		return 0, false
	}
	switch Tile(r) {
	case Wall, Corridor, Start, End:
		return Tile(r), true
	default:
		return 0, false
	}
}

// Direction is a compass heading. The numeric order is clockwise, so the
// number of quarter turns between two headings is their circular distance.
type Direction int

const (
	// North points to decreasing Y.
	North Direction = iota
	// East points to increasing X.
	East
	// South points to increasing Y.
	South
	// West points to decreasing X.
	West
)

// directions lists headings in branching order with their unit offsets.
var directions = [4]struct {
	dir    Direction
	dx, dy int
}{
	{North, 0, -1},
	{East, 1, 0},
	{South, 0, 1},
	{West, -1, 0},
}

// String returns the lower-case compass name.
func (d Direction) String() string {
	switch d {
	case North:
		return "north"
	case East:
		return "east"
	case South:
		return "south"
	case West:
		return "west"
	default:
		return fmt.Sprintf("Direction(%d)", int(d))
	}
}

// ParseDirection accepts compass names or their first letter, case-insensitively.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n":
		return North, nil
	case "east", "e":
		return East, nil
	case "south", "s":
		return South, nil
	case "west", "w":
		return West, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownDirection, s)
	}
}

// Turns returns how many quarter turns separate d from to: 0, 1 or 2.
func (d Direction) Turns(to Direction) int {
	diff := (int(to) - int(d) + 4) % 4
	if diff == 3 {
		return 1
	}

	return diff
}

// Point is a cell coordinate and the search State of the maze problem.
type Point struct {
	X, Y int
}

// String formats the point as "x,y".
func (p Point) String() string {
	return fmt.Sprintf("%d,%d", p.X, p.Y)
}

// Heading is the search Accumulator: where the walker faces and what the
// path has cost so far.
type Heading struct {
	Facing Direction
	Cost   int
}

// Options tunes the cost model of a maze walk.
type Options struct {
	// StepCost is paid for every move to a neighbouring cell.
	StepCost int
	// TurnCost is paid per quarter turn before a move.
	TurnCost int
	// Facing is the initial heading on the start tile.
	Facing Direction
}

// DefaultOptions returns StepCost=1, TurnCost=1000, Facing=East.
func DefaultOptions() Options {
	return Options{
		StepCost: 1,
		TurnCost: 1000,
		Facing:   East,
	}
}

// validate rejects negative costs and unknown headings.
func (o Options) validate() error {
	if o.StepCost < 0 || o.TurnCost < 0 {
		return ErrNegativeCost
	}
	if o.Facing < North || o.Facing > West {
		return fmt.Errorf("%w: %d", ErrUnknownDirection, int(o.Facing))
	}

	return nil
}

// Maze is an immutable rectangular grid of tiles. It is the World of the
// maze problem and is safe to share between concurrent searches.
type Maze struct {
	Width, Height int
	tiles         [][]Tile
	start         Point
	opts          Options
}
