// Package pipeloop measures the single closed loop hidden in a grid of pipe
// glyphs: how far its farthest cell is from the start, and how many tiles
// it encloses.
//
// What is in here?
//
//	pipe/      : Direction, Pipe shapes and the glyph table, Position, error classes
//	gridgraph/ : parsing, start-cell resolution, doubled-resolution inflation
//	loop/      : the Walker state machine, loop tracing, farthest point
//	region/    : interior/exterior flood fill, enclosed tile count, rendering
//	solver/    : the whole pipeline behind one call
//	cmd/       : the pipeloop command
//
// Quick ASCII example:
//
//	.....
//	.S-7.
//	.|.|.
//	.L-J.
//	.....
//
// is a loop of 8 pipes; its farthest cell is 4 steps from S and it encloses
// exactly one tile.
//
//	go run ./cmd/pipeloop maze.txt
package pipeloop
