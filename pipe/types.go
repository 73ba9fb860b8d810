package pipe

import "fmt"

// Direction is a unit move on the grid.
type Direction uint8

const (
	// Up decreases the row.
	Up Direction = iota
	// Right increases the column.
	Right
	// Down increases the row.
	Down
	// Left decreases the column.
	Left
)

// Directions lists every Direction in clockwise order starting at Up.
var Directions = [4]Direction{Up, Right, Down, Left}

// Opposite returns the direction pointing the other way.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Right:
		return Left
	case Down:
		return Up
	case Left:
		return Right
	}
	panic(fmt.Sprintf("pipe: invalid direction %d", d))
}

// Offset returns the (row, col) delta of one step in d.
func (d Direction) Offset() (dRow, dCol int) {
	switch d {
	case Up:
		return -1, 0
	case Right:
		return 0, 1
	case Down:
		return 1, 0
	case Left:
		return 0, -1
	}
	panic(fmt.Sprintf("pipe: invalid direction %d", d))
}

func (d Direction) String() string {
	switch d {
	case Up:
		return "up"
	case Right:
		return "right"
	case Down:
		return "down"
	case Left:
		return "left"
	}
	return fmt.Sprintf("Direction(%d)", uint8(d))
}

// Pipe is the content of one grid cell.
type Pipe uint8

const (
	// Ground has no openings.
	Ground Pipe = iota
	// Vertical connects Up and Down ('|').
	Vertical
	// Horizontal connects Left and Right ('-').
	Horizontal
	// NorthEast connects Up and Right ('L').
	NorthEast
	// NorthWest connects Up and Left ('J').
	NorthWest
	// SouthWest connects Down and Left ('7').
	SouthWest
	// SouthEast connects Down and Right ('F').
	SouthEast
	// Start marks the start cell before its openings are resolved ('S').
	Start
)

// Position addresses a grid cell by row and column.
type Position struct {
	Row, Col int
}

// Step returns the position one unit away from p in direction d.
func (p Position) Step(d Direction) Position {
	dr, dc := d.Offset()
	return Position{Row: p.Row + dr, Col: p.Col + dc}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}
