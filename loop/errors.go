package loop

import "errors"

var (
	// ErrStartUnresolved indicates the start cell has not been resolved yet.
	ErrStartUnresolved = errors.New("loop: start cell is unresolved")
	// ErrNotStartOpening indicates a walker was asked to leave the start
	// through a direction the start pipe does not open towards.
	ErrNotStartOpening = errors.New("loop: direction is not an opening of the start cell")
	// ErrLeftGrid indicates a step would move outside the grid.
	ErrLeftGrid = errors.New("loop: step leaves the grid")
	// ErrBrokenPipe indicates a step lands on a cell that does not open back.
	ErrBrokenPipe = errors.New("loop: neighbour does not connect back")
	// ErrUnclosed indicates the walk exceeded the number of grid cells
	// without returning to the start.
	ErrUnclosed = errors.New("loop: walk does not return to start")
	// ErrClosed indicates Step was called on a walker that already closed.
	ErrClosed = errors.New("loop: walker already closed")
)
