package maze

import "errors"

var (
	// ErrEmptyMaze indicates the input has no rows or no columns.
	ErrEmptyMaze = errors.New("maze: input must have at least one row and one column")
	// ErrNonRectangular indicates rows of differing lengths.
	ErrNonRectangular = errors.New("maze: all rows must have the same length")
	// ErrInvalidTile indicates a character other than '#', '.', 'S' or 'E'.
	ErrInvalidTile = errors.New("maze: invalid tile")
	// ErrNoStart indicates the maze has no 'S' tile.
	ErrNoStart = errors.New("maze: no start tile")
	// ErrMultipleStarts indicates more than one 'S' tile.
	ErrMultipleStarts = errors.New("maze: more than one start tile")
	// ErrNegativeCost indicates a negative step or turn cost.
	ErrNegativeCost = errors.New("maze: costs must be non-negative")
	// ErrUnknownDirection indicates an unparsable facing direction.
	ErrUnknownDirection = errors.New("maze: unknown direction")
)
