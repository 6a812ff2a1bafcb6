// Package delta scores the directed difference between two objects and
// emits the transform arguments that explain it.
//
// What:
//
//   - ObjectDelta folds an ordered list of Comparison functions over a
//     (left, right) pair; each contributes a partial distance and partial
//     transform arguments. Distances sum, MaxDist dominates, and later
//     comparisons may overwrite earlier transform keys.
//   - The default comparisons are OrderDiff, ColorDiff, TranslationDiff,
//     in that order.
//   - FindClosest scans an inventory for the minimum-distance delta, first
//     encountered winning ties, with an optional threshold cutoff.
//
// Why:
//
//   - Decomposition: detect that a candidate substructure is a cheap
//     transform away from something already represented.
//   - Scene matching: explain each output shape as a transform of an
//     input shape, building the minimal transformation path.
//
// Complexity:
//
//   - ObjectDelta: O(cells) per comparison.
//   - FindClosest: O(len(inventory) · cells).
//
// Failure is in-band: MaxDist marks an incomparable pair, a nil delta from
// FindClosest marks an empty inventory or a best match over the threshold.
package delta
