// Package algopad is a personal toolbox of independent competitive-programming
// helpers — small, self-contained packages that share no state and call into
// nothing but the standard library.
//
// 🚀 What is algopad?
//
//	A collection of the utilities one keeps rewriting for contests:
//		• graph/      — generic weighted graph engine: BFS/Dijkstra dispatch,
//		                double-sweep diameter, exhaustive simple-path search
//		• bitops/     — bit-manipulation helpers over 64-bit words
//		• gridsum/    — 2-D difference grids and prefix-sum rectangle queries
//		• chains/     — disjoint-chain union (paths only, no cycles)
//		• rle/        — run-length encoding, decoding and grouping
//		• palindrome/ — word-at-a-time palindrome scanning
//
// ✨ Design notes
//
//   - Contest-friendly – 1-based vertex/coordinate numbering at every
//     public boundary, 0-based storage inside
//   - Explicit failures – sentinel errors instead of silent no-ops or
//     overloaded sentinel values
//   - Single-goroutine – no locks; each value is owned by one goroutine
//   - Pure Go – no cgo; the only runtime dependency surface is the
//     standard library
//
// Each package stands alone; import what you need:
//
//	go get github.com/torvik/algopad/graph
package algopad
