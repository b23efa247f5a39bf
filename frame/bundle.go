package frame

import (
	"fmt"

	"github.com/katalvlaran/lvlmagic/magic"
)

// BuildBundle computes the line bundle for extending an order-n magic
// square with constant innerMagic to order n+2. The pairing program is
// selected by n mod 4; see the package documentation for the model.
// Returns ErrUnsupportedOrder when no program exists for the order,
// ErrNotMagicSeed when innerMagic is not the normal constant n(n²+1)/2,
// and ErrInfeasibleBundle when the program fails its slope audit.
// Complexity: O(n).
func BuildBundle(innerOrder, innerMagic int) (*Bundle, error) {
	if innerOrder < 1 || innerOrder == 2 {
		return nil, fmt.Errorf("%w: inner order %d", ErrUnsupportedOrder, innerOrder)
	}
	if innerMagic != magic.NormalConstant(innerOrder) {
		return nil, fmt.Errorf("%w: constant %d, want %d",
			ErrNotMagicSeed, innerMagic, magic.NormalConstant(innerOrder))
	}

	b := &Bundle{
		order:  innerOrder,
		sigma:  (innerOrder+2)*(innerOrder+2) + 1,
		magic:  innerMagic,
		green:  make(map[int]int),
		purple: make(map[int]int),
	}
	switch {
	case innerOrder%2 == 1:
		b.programOdd()
	case innerOrder == 4:
		b.programOrder4()
	case innerOrder%4 == 0:
		b.programEvenlyEven()
	default:
		b.programOddlyEven()
	}
	if err := b.audit(); err != nil {
		return nil, err
	}

	return b, nil
}

// Order reports the inner order the bundle extends.
func (b *Bundle) Order() int { return b.order }

// PairSum returns σ = (n+2)²+1, the sum of every complementary border
// pair on a line through the interior.
func (b *Bundle) PairSum() int { return b.sigma }

// Increment returns S such that the framed square's constant is
// M' = M + S. For normal squares S = 3n² + 6n + 5: the σ of the border
// pair plus the interior relabeling shift n·(2n+2).
func (b *Bundle) Increment() int {
	return magic.NormalConstant(b.order+2) - b.magic
}

// complement returns the σ-complement of a border value.
func (b *Bundle) complement(v int) int { return b.sigma - v }

// linkGreen pairs source (moved to the bottom row) with a target whose
// complement joins it there; both entries are recorded so either side
// classifies the pair.
func (b *Bundle) linkGreen(source, target int) {
	b.green[source] = target
	b.green[target] = source
}

// linkPurple pairs source (moved to the right column) with a target
// whose complement joins it there.
func (b *Bundle) linkPurple(source, target int) {
	b.purple[source] = target
	b.purple[target] = source
}

// clinkGreen self-links source to its own complement: source goes to
// the bottom row, its complement to the top. Recorded one-way; such a
// link carries a half-weight slope in the audit.
func (b *Bundle) clinkGreen(source int) {
	b.green[source] = b.complement(source)
}

// clinkPurple self-links source to its own complement: source goes to
// the right column, its complement to the left.
func (b *Bundle) clinkPurple(source int) {
	b.purple[source] = b.complement(source)
}

// Side verdicts. A value v landed on the bottom row when v itself is
// green-linked, and on the top row when its complement is; likewise
// purple for right and left columns.
func (b *Bundle) isTop(v int) bool    { _, ok := b.green[b.complement(v)]; return ok }
func (b *Bundle) isBottom(v int) bool { _, ok := b.green[v]; return ok }
func (b *Bundle) isLeft(v int) bool   { _, ok := b.purple[b.complement(v)]; return ok }
func (b *Bundle) isRight(v int) bool  { _, ok := b.purple[v]; return ok }

// slopeSum totals the doubled slopes of one link color. Paired links
// contribute source−complement(target) on each side (the two sides must
// agree); complementary self-links contribute half of source−target,
// hence the doubling. A magic frame requires the total to vanish.
func (b *Bundle) slopeSum(links map[int]int) (int, error) {
	low, high, halves := 0, 0, 0
	for node, target := range links {
		partner := b.complement(target)
		switch {
		case node == partner: // self-link
			halves += node - target
		case node >= 1 && node <= 2*b.order+2:
			low += node - partner
		default:
			high += node - partner
		}
	}
	if low != high {
		return 0, fmt.Errorf("%w: unbalanced slopes %d vs %d", ErrInfeasibleBundle, low, high)
	}

	return 2*low + halves, nil
}

// audit verifies both slope sums vanish.
func (b *Bundle) audit() error {
	for _, links := range []map[int]int{b.green, b.purple} {
		total, err := b.slopeSum(links)
		if err != nil {
			return err
		}
		if total != 0 {
			return fmt.Errorf("%w: slope sum %d ≠ 0 for order %d", ErrInfeasibleBundle, total, b.order)
		}
	}

	return nil
}

// Frame classifies every border value onto its side and assembles the
// four sides, corners included. Each of 1..2n+2 must land on exactly
// one side (or a corner) and each corner must be claimed exactly once;
// anything else is an infeasible bundle.
// Complexity: O(n).
func (b *Bundle) Frame() (*Frame, error) {
	n := b.order
	var top, right, bottom, left []int
	var corners [4][]int // top-left, top-right, bottom-right, bottom-left
	for v := 1; v <= 2*n+2; v++ {
		partner := b.complement(v)
		switch {
		case b.isTop(v) && b.isLeft(v):
			corners[0] = append(corners[0], v)
			corners[2] = append(corners[2], partner)
		case b.isTop(v) && b.isRight(v):
			corners[1] = append(corners[1], v)
			corners[3] = append(corners[3], partner)
		case b.isTop(v):
			top = append(top, v)
			bottom = append(bottom, partner)
		case b.isBottom(v) && b.isLeft(v):
			corners[3] = append(corners[3], v)
			corners[1] = append(corners[1], partner)
		case b.isBottom(v) && b.isRight(v):
			corners[2] = append(corners[2], v)
			corners[0] = append(corners[0], partner)
		case b.isBottom(v):
			bottom = append(bottom, v)
			top = append(top, partner)
		case b.isLeft(v):
			left = append(left, v)
			right = append(right, partner)
		case b.isRight(v):
			right = append(right, v)
			left = append(left, partner)
		default:
			return nil, fmt.Errorf("%w: value %d unclassified for order %d", ErrInfeasibleBundle, v, n)
		}
	}
	for i, corner := range corners {
		if len(corner) != 1 {
			return nil, fmt.Errorf("%w: corner %d claimed %d times for order %d",
				ErrInfeasibleBundle, i, len(corner), n)
		}
	}
	if len(top) != n || len(left) != n {
		return nil, fmt.Errorf("%w: side lengths %d and %d, want %d", ErrInfeasibleBundle, len(top), len(left), n)
	}

	f := &Frame{
		Top:    make([]int, 0, n+2),
		Right:  make([]int, 0, n+2),
		Bottom: make([]int, 0, n+2),
		Left:   make([]int, 0, n+2),
	}
	f.Top = append(append(append(f.Top, corners[0][0]), top...), corners[1][0])
	f.Right = append(append(append(f.Right, corners[1][0]), right...), corners[2][0])
	f.Bottom = append(append(append(f.Bottom, corners[3][0]), bottom...), corners[2][0])
	f.Left = append(append(append(f.Left, corners[0][0]), left...), corners[3][0])

	return f, nil
}
