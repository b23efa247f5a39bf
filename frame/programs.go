package frame

// The four deterministic pairing programs. Each one chooses corners
// first, then spends the remaining values in ascent/descent pairs whose
// slopes cancel. Throughout, n is the inner order and c(v) = σ−v.

// programOdd borders odd interiors; unrandomized this is al-Buzjani's
// construction. The four middle values n..n+3 take the forced spots:
// n+2 self-links to the bottom, n to the right, n+1 and n+3 become the
// left corners. The remaining (n−1)/2 value pairs alternate: a low even
// value descends to the bottom while its odd predecessor's complement
// rises, and so on up the range.
func (b *Bundle) programOdd() {
	n := b.order
	b.clinkGreen(n + 2)
	b.clinkPurple(n)
	b.linkGreen(n+3, b.complement(n+1))
	b.clinkPurple(b.complement(n + 1))
	b.clinkPurple(b.complement(n + 3))

	v := 1
	for i := 0; i < (n-1)/2; i++ {
		b.linkGreen(v+n+3, b.complement(v))
		v++
		b.linkPurple(v, b.complement(v+n+3))
		v++
	}
}

// programOrder4 borders the one evenly-even interior with no free play:
// 1 and 6 take the left corners and every remaining link is forced.
func (b *Bundle) programOrder4() {
	b.linkPurple(2, 36)
	b.linkPurple(7, 31)
	b.linkGreen(6, 36)
	b.linkGreen(3, 33)
	b.linkGreen(5, 28)
	b.linkPurple(8, 27)
}

// programOddlyEven borders interiors of order ≡ 2 (mod 4), n ≥ 6.
// Corners are n+1 (top left) and n+2 (bottom left). The low odd values
// split n/4 ascents against the rest as descents on the green side; on
// the purple side two forced links absorb n+5..n+8 and the high odd
// values split (n−6)/4 against the rest.
func (b *Bundle) programOddlyEven() {
	n := b.order
	b.linkGreen(n+2, b.complement(n+1))
	b.linkPurple(n+3, b.complement(n+1))
	b.linkPurple(n+4, b.complement(n+2))

	k := n / 4
	for v := 1; v < n; v += 2 {
		if k > 0 {
			b.linkGreen(v+1, b.complement(v))
			k--
		} else {
			b.linkGreen(v, b.complement(v+1))
		}
	}

	b.linkPurple(n+5, b.complement(n+7))
	b.linkPurple(n+6, b.complement(n+8))
	k = (n - 6) / 4
	for v := n + 9; v < 2*n+2; v += 2 {
		if k > 0 {
			b.linkPurple(v+1, b.complement(v))
			k--
		} else {
			b.linkPurple(v, b.complement(v+1))
		}
	}
}

// programEvenlyEven borders interiors of order ≡ 0 (mod 4), n ≥ 8.
// Corners are n+1 (top left) and n+2 (bottom left). The link from n−1
// to c(n+3) has slope −4 and is compensated by three unit green
// ascents; the leftover low odds split evenly. The high odd values
// carry one extra purple descent to absorb the corner choices.
func (b *Bundle) programEvenlyEven() {
	n := b.order
	b.linkGreen(n+2, b.complement(n+1))
	b.linkPurple(n, b.complement(n+1))
	b.linkPurple(n+4, b.complement(n+2))

	b.linkGreen(n-1, b.complement(n+3))
	// three compensating ascents, then an even split of the remaining
	// (n-2)/2 − 3 low odd values
	ascents := 3 + ((n-2)/2-3)/2
	for v := 1; v < n-2; v += 2 {
		if ascents > 0 {
			b.linkGreen(v+1, b.complement(v))
			ascents--
		} else {
			b.linkGreen(v, b.complement(v+1))
		}
	}

	k := n / 4 // one extra descent
	for v := n + 5; v < 2*n+2; v += 2 {
		if k > 0 {
			b.linkPurple(v, b.complement(v+1))
			k--
		} else {
			b.linkPurple(v+1, b.complement(v))
		}
	}
}
