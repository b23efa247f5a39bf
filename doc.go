// Package lvlmagic is your in-memory playground for constructing,
// validating, and transforming magic squares — from the Luo Shu to
// arbitrarily large bordered squares.
//
// 🚀 What is lvlmagic?
//
//	A small, deterministic library that brings together:
//		• Grid primitives: immutable square grids with rows, columns & diagonals
//		• Validation: full magic-square checking with precise failure reports
//		• Transforms: affine relabeling, rotations, reflections, permutations
//		• Generators: de la Loubère (odd) & pattern/complement (doubly even)
//		• Bordering: grow any normal magic square from order n to n+2
//		• Rendering: aligned text layouts & bordering transcripts
//
// ✨ Why choose lvlmagic?
//
//   - Beginner-friendly – minimal API, clear, intuitive naming
//   - Rock-solid guarantees – immutable values, every result revalidated
//   - Deterministic – the same seed always yields the same square
//   - Composable – chain bordering steps to reach any odd or even order
//
// Under the hood, everything is organized under five subpackages:
//
//	grid/     — immutable square grid with row, column & diagonal views
//	magic/    — validated magic squares & magic-preserving transforms
//	generate/ — construction strategies & magicness classification
//	frame/    — the bordering engine: line bundles, frames & embedding
//	render/   — fixed-width and boxed text layouts, bordering transcripts
//
// Quick ASCII example:
//
//	2 7 6
//	9 5 1
//	4 3 8
//
//	every row, column and diagonal sums to 15; bordering it yields an
//	order-5 square whose lines sum to 65.
//
// Dive into the package docs for the bundle model behind bordering and
// the full transform catalogue.
//
//	go get github.com/katalvlaran/lvlmagic
package lvlmagic
