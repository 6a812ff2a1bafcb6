// Package template induces a parameterized schema from several object trees
// and regenerates concrete objects from it.
//
// What:
//
//   - FromOutputs structurally diffs a list of positionally aligned Objects
//     into a StructureDef tree: properties shared by every instance become
//     constants (omitted when equal to their defaults), disagreeing slots
//     become variables marked Unknown.
//   - Child lists zip positionally; when too many irregular single-cell
//     children disagree, the whole child list collapses into one variable
//     standing for "regenerate this subtree from scratch".
//   - Generate rebuilds an Object bottom-up from a StructureDef;
//     CreateOutput first applies bindings (subtree replacements or scalar
//     overwrites) onto a copy of the schema in path-sorted order.
//
// Why:
//
//   - Output templates: across a task's example outputs, the constants are
//     the program and the variables are what must be inferred per case.
//   - Compactness: a good template minimizes the variables left to fill.
//
// Complexity:
//
//   - FromOutputs / Generate: O(nodes · properties).
//
// Degraded lookups (a binding path wandering off the schema) log a warning
// and fall back to the last reachable node; they are recoverable, not fatal.
package template
