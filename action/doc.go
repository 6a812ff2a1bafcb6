// Package action implements the transform algebra over object trees: a
// closed, code-keyed table of parameterized, invertible geometric and color
// operations.
//
// What:
//
//   - Every transform is a stateless Action identified by a one-character
//     Code, with a fixed arity, a pure Act (apply), a best-effort Inv
//     (recover the arguments mapping left onto right), and a Rearg
//     normalizer (translate a general action's arguments into this
//     specialization's reduced parameter space).
//   - Default() builds the immutable registry once; callers hold it by
//     reference and dispatch purely by code.
//   - Pairwise actions (Resize, Adjoin, Align) take a secondary Object in
//     place of integer arguments.
//
// Why:
//
//   - Matching: transform inversion is the currency of similarity scoring.
//   - Templates: generator codes reuse the same one-letter vocabulary.
//   - Extension: adding a transform is one table entry, not a new call site.
//
// Complexity:
//
//   - Act/Rearg: O(cells) (grid rebuild operations) or O(1) (anchor moves).
//   - Inv: O(cells) for direct checks; Orthogonal tries 8 poses, O(8·cells).
//
// Failure is in-band: Inv returns an empty argument slice when no
// single-step transform reproduces the right object, and Rearg reports
// ok=false when the general arguments are not expressible.
package action
