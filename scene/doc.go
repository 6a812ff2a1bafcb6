// Package scene pairs one input board with one output board, decomposes
// both, and derives the minimal transformation path between them.
//
// What:
//
//   - Scene owns the input/output Boards of one puzzle case.
//   - Decompose settles both representations.
//   - Match recursively recreates the output's substructure from the input
//     inventory (the settled representation and all its descendants),
//     keeping whichever is cheaper at every node: one whole-object match
//     or the sum of its children's matches.
//
// Why:
//
//   - The transformation path is the transformational distance between the
//     two boards and the raw material for inferring a solving program.
//
// Complexity: O(output nodes · inventory · cells).
//
// A distance of -1 means no match was found; the path is empty then.
package scene
