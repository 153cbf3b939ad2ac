// Package maze adapts rectangular character mazes to the search engine.
//
// What:
//
//   - Maze wraps a grid of tiles: '#' wall, '.' corridor, 'S' start, 'E' end.
//   - Problem implements search.Problem[Point, Heading, *Maze]: a walker that
//     starts on 'S' facing Options.Facing, steps N/E/S/W into non-wall cells,
//     pays StepCost per step plus TurnCost per quarter turn, and scores minus
//     its total cost on 'E'. The best path is therefore the cheapest route.
//   - Parse / Load / New validate the input before any search runs; a maze
//     without a start is rejected here, never inside the engine.
//   - Render draws a path over the grid with 'O'.
//
// Why:
//
//   - Puzzle mazes where turning is expensive (a reindeer that must rotate
//     in place) and plain unit-cost grid walks (TurnCost = 0).
//
// Complexity:
//
//   - Parse: O(W×H). Solve: exhaustive, every simple path from 'S' is
//     enumerated, so keep mazes small or sparsely connected.
//
// Errors:
//
//   - ErrEmptyMaze, ErrNonRectangular, ErrInvalidTile
//   - ErrNoStart, ErrMultipleStarts
//   - ErrNegativeCost, ErrUnknownDirection
package maze
