// Package grid provides an immutable order-n integer square — the
// container underneath every magic-square operation in lvlmagic.
//
// What:
//
//   - Grid wraps an order×order block of integers in row-major layout.
//   - Accessors for rows, columns, and both main diagonals.
//   - Transpose and Subgrid derive new Grids; Set copies on write.
//   - Equality is elementwise.
//
// Why:
//
//   - A magic square is a claim about line sums; the claim survives only
//     if nothing can rewrite a cell behind the validator's back. Every
//     Grid operation therefore returns a fresh value.
//
// Complexity:
//
//   - Get/Set bounds checks: O(1); Set copies: O(n²).
//   - Row/Col/Diag: O(n). Transpose/Subgrid/Equal: O(n²).
//
// Errors:
//
//   - ErrOrder: order below 1.
//   - ErrShape: value count differs from order².
//   - ErrRagged: rows of differing lengths.
//   - ErrBounds: row or column index outside [0, order).
package grid
