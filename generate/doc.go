// Package generate provides pluggable magic-square producers — the
// strategies that hand finished seeds to the bordering engine in
// package frame.
//
// What:
//
//   - Strategy: Generate(order) → *magic.Square, deterministic, with
//     ErrUnsupportedOrder outside a strategy's domain.
//   - Siamese: the classical diagonal-step construction for odd orders.
//   - DoublyEven: the pattern/complement construction for orders
//     divisible by four.
//   - Classification + Classify: the fully-magic / semi-magic / failed
//     verdict that exploratory producers (generalized step vectors)
//     report instead of erroring, since such constructions are not
//     guaranteed to succeed for arbitrary parameters.
//
// Why:
//
//   - The bordering engine consumes any Strategy; Latin-square and
//     leaper constructions plug in through the same interface without
//     this package knowing about them.
//
// Complexity:
//
//   - Siamese and DoublyEven: O(n²) time and memory.
//   - Classify: O(n²).
//
// Errors:
//
//   - ErrUnsupportedOrder: order outside the strategy's domain (even
//     orders for Siamese, orders not divisible by 4 for DoublyEven,
//     anything below 1 everywhere).
package generate
