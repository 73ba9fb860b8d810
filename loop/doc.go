// Package loop walks the single closed pipe loop through a resolved start
// cell.
//
// What:
//
//   - Walker is a cursor carrying (position, back-direction) state. Each Step
//     leaves the current pipe through the opening that does not lead back,
//     and moves to the neighbour, which must open towards it.
//   - Trace enumerates every loop cell in walking order.
//   - Farthest runs two Walkers in opposite directions until they meet and
//     returns the graph distance of the meeting point.
//
// State machine:
//
//	Walking --Step--> Walking      (landed on a non-start cell)
//	Walking --Step--> Closed       (landed on the start cell)
//	Closed  --Step--> ErrClosed
//
// Every transition is deterministic: the current pipe has exactly two
// openings and one of them is the way back.
//
// Complexity:
//
//   - Trace:    O(N) time, O(W×H) memory for the membership table.
//   - Farthest: O(N) time, O(N) memory for the walkers' paths.
//
// Errors (all fatal, wrapped in *pipe.TopologyError):
//
//   - ErrStartUnresolved: the grid's start still holds the 'S' placeholder.
//   - ErrLeftGrid: a step would leave the grid.
//   - ErrBrokenPipe: a step lands on a cell without a matching opening.
//   - ErrUnclosed: more steps than grid cells without returning to start.
//
// ErrNotStartOpening and ErrClosed report misuse of a Walker.
package loop
