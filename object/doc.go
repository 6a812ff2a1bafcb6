// Package object implements the hierarchical shape primitive used across
// gridmdl: a tree node that is either a single colored cell or a composite
// built from ordered children plus an anchor and an optional generator.
//
// What:
//
//   - Object wraps a leaf cell or a container of child Objects; containers
//     derive their grid by compositing children at relative anchors, with
//     later children occluding earlier ones.
//   - Codes hold a compact generator parameterization (single-letter key →
//     repeat count) that tiles the materialized grid without storing cells.
//   - Props measures the description length of the current representation;
//     lower is more compact.
//   - Grid is the rectangular materialization, validated on construction.
//
// Why:
//
//   - Puzzle grids: express a 30×30 board as a handful of nested shapes.
//   - Search: decomposition compares alternative trees purely by Props.
//   - Matching: equality and silhouettes drive transform inversion.
//
// Complexity:
//
//   - Grid / Shape / Size: O(cells) on first call per node, cached after.
//   - Equal / SilhouetteEqual: O(cells).
//   - Flatten: O(nodes + cells).
//
// Errors:
//
//   - ErrEmptyGrid: input grid has no rows or no columns.
//   - ErrRaggedGrid: rows have differing lengths.
//   - ErrColorRange: a cell value lies outside [0, NColors).
package object
