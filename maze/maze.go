package maze

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
)

// New builds a Maze from text rows. Each row must have the same number of
// runes; the rows are copied so later changes by the caller have no effect.
// Complexity: O(W×H) time and memory.
func New(rows []string, opts Options) (*Maze, error) {
	if err := opts.validate(); err != nil {
		return nil, err
	}
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyMaze
	}

	h := len(rows)
	w := len([]rune(rows[0]))
	tiles := make([][]Tile, h)
	starts := 0
	var start Point
	for y, row := range rows {
		runes := []rune(row)
		if len(runes) != w {
			return nil, fmt.Errorf("%w: row %d has %d tiles, want %d", ErrNonRectangular, y, len(runes), w)
		}
		tiles[y] = make([]Tile, w)
		for x, r := range runes {
			t, ok := parseTile(r)
			if !ok {
				return nil, fmt.Errorf("%w %q at row %d, column %d", ErrInvalidTile, r, y, x)
			}
			if t == Start {
				starts++
				start = Point{X: x, Y: y}
			}
			tiles[y][x] = t
		}
	}
	switch {
	case starts == 0:
		return nil, ErrNoStart
	case starts > 1:
		return nil, fmt.Errorf("%w: found %d", ErrMultipleStarts, starts)
	}

	return &Maze{
		Width:  w,
		Height: h,
		tiles:  tiles,
		start:  start,
		opts:   opts,
	}, nil
}

// Parse reads a maze from r, one row per line. Trailing carriage returns are
// stripped and blank lines after the last row are ignored.
func Parse(r io.Reader, opts Options) (*Maze, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("maze: read: %w", err)
	}
	for len(rows) > 0 && strings.TrimSpace(rows[len(rows)-1]) == "" {
		rows = rows[:len(rows)-1]
	}

	return New(rows, opts)
}

// Load parses the maze stored in the file at path.
func Load(path string, opts Options) (*Maze, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("maze: open %q: %w", path, err)
	}
	defer f.Close()

	m, err := Parse(f, opts)
	if err != nil {
		return nil, fmt.Errorf("maze: %q: %w", path, err)
	}

	return m, nil
}

// InBounds reports whether p lies within the grid.
// Complexity: O(1).
func (m *Maze) InBounds(p Point) bool {
	return p.X >= 0 && p.X < m.Width && p.Y >= 0 && p.Y < m.Height
}

// At returns the tile at p. It panics if p is out of bounds.
func (m *Maze) At(p Point) Tile {
	return m.tiles[p.Y][p.X]
}

// Start returns the coordinates of the 'S' tile.
func (m *Maze) Start() Point {
	return m.start
}

// Options returns the cost model the maze was built with.
func (m *Maze) Options() Options {
	return m.opts
}

// Ends lists every 'E' tile in row-major order.
func (m *Maze) Ends() []Point {
	var out []Point
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			if m.tiles[y][x] == End {
				out = append(out, Point{X: x, Y: y})
			}
		}
	}

	return out
}

// Render returns the maze text with every cell of path drawn as 'O'.
// Points outside the grid are ignored.
func (m *Maze) Render(path []Point) string {
	out := make([][]byte, m.Height)
	for y := range m.tiles {
		out[y] = make([]byte, m.Width)
		for x, t := range m.tiles[y] {
			out[y][x] = byte(t)
		}
	}
	for _, p := range path {
		if m.InBounds(p) {
			out[p.Y][p.X] = 'O'
		}
	}

	var b strings.Builder
	for y := range out {
		b.Write(out[y])
		b.WriteByte('\n')
	}

	return b.String()
}
