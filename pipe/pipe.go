package pipe

import "fmt"

// ParseGlyph maps an input rune to its Pipe.
// Returns ErrUnknownGlyph for runes outside the glyph table.
func ParseGlyph(r rune) (Pipe, error) {
	switch r {
	case '.':
		return Ground, nil
	case '|':
		return Vertical, nil
	case '-':
		return Horizontal, nil
	case 'L':
		return NorthEast, nil
	case 'J':
		return NorthWest, nil
	case '7':
		return SouthWest, nil
	case 'F':
		return SouthEast, nil
	case 'S':
		return Start, nil
	}
	return Ground, fmt.Errorf("%w: %q", ErrUnknownGlyph, r)
}

// Glyph returns the input rune that denotes p.
func (p Pipe) Glyph() rune {
	switch p {
	case Ground:
		return '.'
	case Vertical:
		return '|'
	case Horizontal:
		return '-'
	case NorthEast:
		return 'L'
	case NorthWest:
		return 'J'
	case SouthWest:
		return '7'
	case SouthEast:
		return 'F'
	case Start:
		return 'S'
	}
	return '?'
}

func (p Pipe) String() string {
	return string(p.Glyph())
}

// Openings returns the two directions p connects to.
// ok is false for Ground and for the unresolved Start placeholder.
func (p Pipe) Openings() (a, b Direction, ok bool) {
	switch p {
	case Vertical:
		return Up, Down, true
	case Horizontal:
		return Left, Right, true
	case NorthEast:
		return Up, Right, true
	case NorthWest:
		return Up, Left, true
	case SouthWest:
		return Down, Left, true
	case SouthEast:
		return Down, Right, true
	}
	return 0, 0, false
}

// Has reports whether p opens towards d.
func (p Pipe) Has(d Direction) bool {
	a, b, ok := p.Openings()
	return ok && (a == d || b == d)
}

// Other returns the opening of p that is not d.
// ok is false when p does not open towards d.
func (p Pipe) Other(d Direction) (Direction, bool) {
	a, b, ok := p.Openings()
	switch {
	case !ok:
		return 0, false
	case a == d:
		return b, true
	case b == d:
		return a, true
	}
	return 0, false
}

// Between returns the pipe shape whose openings are a and b, in either order.
// Returns ErrInvalidOpenings when a == b.
func Between(a, b Direction) (Pipe, error) {
	if a == b {
		return Ground, fmt.Errorf("%w: %s twice", ErrInvalidOpenings, a)
	}
	for _, p := range [...]Pipe{Vertical, Horizontal, NorthEast, NorthWest, SouthWest, SouthEast} {
		if p.Has(a) && p.Has(b) {
			return p, nil
		}
	}
	return Ground, fmt.Errorf("%w: %s and %s", ErrInvalidOpenings, a, b)
}
