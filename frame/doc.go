// Package frame extends magic squares by bordering: it embeds a valid
// order-n magic square inside an order-(n+2) square by wrapping it in a
// ring of new values, keeping every row, column, and diagonal on one
// constant.
//
// What:
//
//   - Bundle: the "line bundle" — the set of complementary value pairs
//     assigned to border positions. Border values come from 1..2n+2 and
//     their complements with respect to σ = (n+2)²+1, so the pair on
//     each line through the interior sums to σ.
//   - BuildBundle selects one of three structurally distinct pairing
//     programs by the inner order mod 4 (odd, evenly-even, oddly-even),
//     plus the forced program for order 4.
//   - Embed drives the engine: build the bundle, mount the interior
//     shifted by 2n+2, lay the ring, and revalidate the whole square.
//
// How the bundle works:
//
//	Model the border as a bipartite graph on the low values 1..2n+2 and
//	their σ-complements. A green link sends a value to the bottom row
//	and its complement to the top; a purple link sends a value to the
//	right column and its complement to the left. A value carrying both
//	verdicts is a corner. Each link has a slope, and a frame is magic
//	exactly when the green slopes and the purple slopes each sum to
//	zero — that is what makes the top/bottom and left/right sides hit
//	the new constant rather than merely pairing across it.
//
// Why three programs:
//
//	The arithmetic that cancels the slopes differs by parity. Odd
//	interiors use complementary self-links for the four middle values
//	(al-Buzjani's construction); evenly-even interiors need one steep
//	link compensated by three unit ascents; oddly-even interiors split
//	their free values around the corner choices. Order 4 leaves no
//	freedom at all.
//
// Complexity:
//
//   - BuildBundle: O(n) links, O(n) audit.
//   - Embed: O(n²) assembly + O(n²) revalidation.
//
// Errors:
//
//   - ErrUnsupportedOrder: no bundle exists (order < 1 or order 2).
//   - ErrNotMagicSeed: the seed is not a normal fully-magic square.
//   - ErrInfeasibleBundle: the pairing program failed its own audit —
//     an internal defect, never a consequence of caller input.
package frame
