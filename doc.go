// Package neighborgrid is a dense 2-D grid container with configurable
// coordinate addressing — pick where (0,0) lives, which way y grows, and
// whether the edges wrap, then read and walk the grid in that convention.
//
// 🚀 What is neighborgrid?
//
//	A small, generic library that brings together:
//		• Origins: upper-left, upper-right, center, lower-left, lower-right
//		• Axis control: inverted-y and the up/down neighbor direction basis
//		• Toroidal wrap: per-axis cyclic edges for torus-shaped boards
//		• Neighbors: cardinal & diagonal lookups, 4- and 8-neighbor records
//		• Nrants: d×d region partitioning (quadrants, Sudoku boxes, …)
//		• Iterators: lazy row, column, region and whole-grid sequences
//
// ✨ Why choose neighborgrid?
//
//   - Beginner-friendly – one Options struct, clear, intuitive naming
//   - Round-trip guarantee – every coordinate maps to its offset and back
//   - Pure computation – no cgo, no I/O, no hidden state
//   - Generic – Grid[T] stores any cell type in flat row-major memory
//
// Everything lives in one subpackage:
//
//	grid/ — the Grid container, Options, coordinate types & iterators
//
// Quick ASCII example (5×5, center origin):
//
//	    (-2, 2) . . . ( 2, 2)
//	       .    . . .    .
//	       .    .(0,0)   .
//	       .    . . .    .
//	    (-2,-2) . . . ( 2,-2)
//
//	the middle cell answers to (0,0); the same storage cell also answers
//	to (2,-2) under the default upper-left convention.
//
// Dive into the grid package docs for the full addressing contract and
// worked examples.
//
//	go get github.com/katalvlaran/neighborgrid/grid
package neighborgrid
