// Package render turns grids and magic squares into human-readable text.
//
// What
//
// Three presentations are offered:
//
//   - Rows / Square — a plain fixed-width layout: every entry is
//     right-justified to the width of the largest entry, columns
//     separated by a single space. This is the layout used in the
//     package documentation and the example output throughout the
//     module.
//   - Table — a boxed table (go-pretty, light style) for terminal
//     inspection of larger squares.
//   - Transcript — the before/after report of one bordering step: the
//     seed, the framed result and a closing SUCCESS! line.
//
// Why
//
// Magic squares are verified by eye as often as by code; a stable,
// deterministic text form makes fixtures diffable and failures
// readable.
//
// All functions are pure: they never mutate their arguments and
// return freshly built strings.
package render
