// Package gridmdl is an in-memory toolkit for compressing colored grids
// into object trees and reasoning about the transformations between them.
//
// 🚀 What is gridmdl?
//
//	A pure-Go library built around minimum-description-length search:
//		• object/   : the Object tree primitive, grids, generator codes, paths
//		• action/   : a registry of invertible transforms keyed by one character
//		• delta/    : scored comparisons and closest-match lookup
//		• board/    : the decomposition search engine with pluggable processes
//		• template/ : schema induction over aligned object trees
//		• scene/    : input/output pairing, matching, and transformation paths
//
// ✨ Why choose gridmdl?
//
//   - Compact by construction: a representation is only adopted when it is
//     strictly cheaper than the incumbent
//   - Deterministic: FIFO frontiers, ordered processes, stable tie-breaking
//   - Immutable trees: every transform returns a fresh Object
//
// Quick ASCII example:
//
//	    0 0 0 0 0        Rect(5x5) in color 0
//	    0 1 1 1 0   ──►  plus one Line(1x3) in color 1,
//	    0 0 0 0 0        six props instead of twenty-seven
//
// Start with board.New to seed a grid, Decompose to compress it, and
// scene.Scene to relate an input board to its output.
//
//	go get github.com/avoronkov/gridmdl
package gridmdl
