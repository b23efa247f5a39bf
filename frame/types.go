package frame

import "errors"

// Sentinel errors for bundle construction and embedding.
var (
	// ErrUnsupportedOrder indicates an inner order with no bordering
	// program: orders below 1, and order 2 (no magic square exists).
	ErrUnsupportedOrder = errors.New("frame: no bordering program for this order")
	// ErrNotMagicSeed indicates a seed that is not a normal fully-magic
	// square; the bundle arithmetic needs entries exactly 1..n².
	ErrNotMagicSeed = errors.New("frame: seed must be a normal magic square")
	// ErrInfeasibleBundle indicates the pairing program failed its own
	// audit. This signals a defect in the program, not bad input, and is
	// non-retryable.
	ErrInfeasibleBundle = errors.New("frame: no consistent border pairing")
)

// Frame holds the four border sides produced by a bundle, each of
// length innerOrder+2, corners included: Top and Bottom read left to
// right, Left and Right top to bottom. Shared corners agree by
// construction (Top[0] == Left[0], and so on).
type Frame struct {
	Top, Right, Bottom, Left []int
}

// Bundle is the line bundle for one bordering step: a pairing of the
// low border values 1..2n+2 with their complements, recorded as green
// (top/bottom) and purple (left/right) links. Build it with BuildBundle
// and consume it once via Frame.
type Bundle struct {
	order  int // inner order n
	sigma  int // complement modulus (n+2)²+1; every border pair sums to it
	magic  int // inner magic constant
	green  map[int]int
	purple map[int]int
}

// state tracks the engine through one embedding. The zero value is
// stateInput; stateOutput and stateFailed are terminal.
type state int

const (
	stateInput state = iota
	stateBundleBuilt
	stateAssembled
	stateValidated
	stateOutput
	stateFailed
)
