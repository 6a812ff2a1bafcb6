// Package board runs the decomposition search: frontier-driven breadth-first
// rewriting of a grid's object tree toward the cheapest representation.
//
// What:
//
//   - Board wraps one raw color grid as a root Object and owns the search
//     state: a FIFO processing queue of partially decomposed candidates and
//     a bank of terminal ones.
//   - Decompose pops up to batch candidates per round, re-expresses each via
//     an ordered list of pluggable Processes, and keeps a monotonic
//     best-so-far incumbent selected by strict Props comparison.
//   - Finished candidates are refined one child slot at a time, scanning
//     children in reverse so later-drawn shapes (which occlude earlier ones)
//     settle first.
//
// Why:
//
//   - Minimum description length: a 9×9 board of 81 cells should settle
//     into a background rectangle plus a handful of lines.
//   - Pluggability: substitute the Process list to bias the search.
//
// Complexity:
//
//   - One round: O(batch · processes · cells).
//   - The search always terminates: bounded by maxIter and by every
//     candidate reaching a process-free terminal state.
//
// Errors:
//
//   - ErrEmptyGrid, ErrRaggedGrid, ErrColorRange: invalid input grid.
//   - ErrGridTooLarge: the grid exceeds MaxRows×MaxCols.
package board
