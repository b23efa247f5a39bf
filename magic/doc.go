// Package magic provides the validated, immutable magic-square value
// type at the heart of lvlmagic.
//
// What:
//
//   - Square wraps a grid.Grid whose every row, column, and both main
//     diagonals sum to one magic constant, with all entries pairwise
//     distinct.
//   - Constructors (FromValues, FromRows, FromGrid) validate fully or
//     fail — no partially-valid Square ever exists.
//   - Affine maps (Affine, Translate, Scale) re-derive the constant.
//   - Layout transforms (Rotate, Reflect, Transpose) preserve all line
//     sums by construction and never fail.
//   - PermuteRows/PermuteCols preserve row and column sums always, and
//     are rejected with ErrInvalidPermutation when they would break a
//     diagonal (see the method docs for the policy).
//
// Why:
//
//   - Seeds for the bordering engine in package frame.
//   - The dihedral symmetry group of a square (rotations, reflections)
//     generates the eight classical variants of any magic square.
//
// Invariants:
//
//   - A normal square holds 1..n² and has constant n(n²+1)/2.
//   - An order-1 square is trivially magic; its constant is its entry.
//   - Every operation returns a new Square; none mutates the receiver.
//
// Errors:
//
//   - ErrShape: value count differs from order².
//   - ErrNotMagic: a line sum deviates or an entry repeats; the wrapped
//     message names the first offending line and its observed sum.
//   - ErrDegenerate: Affine with scale 0.
//   - ErrInvalidPermutation: permutation breaks a diagonal sum.
package magic
