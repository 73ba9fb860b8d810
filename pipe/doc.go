// Package pipe defines the vocabulary shared by every stage of the pipe-maze
// pipeline: compass directions, pipe shapes and grid positions.
//
// What:
//
//   - Direction is one of Up, Right, Down, Left, with a fixed Opposite and a
//     fixed unit Offset.
//   - Pipe is either Ground (no openings), one of the six two-opening shapes,
//     or the Start placeholder whose openings are not yet known.
//   - Position is a (Row, Col) pair; Step moves it one unit in a Direction.
//
// Glyph table:
//
//	'|'  Vertical    Up    + Down
//	'-'  Horizontal  Left  + Right
//	'L'  NorthEast   Up    + Right
//	'J'  NorthWest   Up    + Left
//	'7'  SouthWest   Down  + Left
//	'F'  SouthEast   Down  + Right
//	'.'  Ground      (none)
//	'S'  Start       (resolved later from its neighbours)
//
// Errors:
//
//   - ErrUnknownGlyph: a rune outside the table above.
//   - ErrInvalidOpenings: Between was asked for a shape with equal openings.
//   - *ParseError and *TopologyError classify failures of the later stages;
//     both unwrap to the sentinel that caused them.
package pipe
