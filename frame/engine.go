package frame

import (
	"fmt"

	"github.com/katalvlaran/lvlmagic/magic"
)

// engine carries one embedding through its states: input → bundle built
// → assembled → validated → output, or failed on an audit mismatch.
// Never shared; Embed creates one per call and discards it.
type engine struct {
	state  state
	seed   *magic.Square
	bundle *Bundle
	work   [][]int
}

// Embed returns the order-(n+2) magic square obtained by bordering the
// seed. Deterministic and atomic: the caller sees either a fully
// validated result or an error, never a partially assembled square.
// The seed must be a normal fully-magic square (entries exactly 1..n²);
// anything else is rejected with ErrNotMagicSeed or, for orders with no
// bordering program, ErrUnsupportedOrder. A validation mismatch after
// assembly surfaces as ErrInfeasibleBundle and signals an engine
// defect, not bad input.
// Complexity: O(n²).
func Embed(seed *magic.Square) (*magic.Square, error) {
	e := &engine{state: stateInput, seed: seed}
	if err := e.buildBundle(); err != nil {
		return nil, err
	}
	if err := e.assemble(); err != nil {
		return nil, err
	}

	return e.validate()
}

// buildBundle checks the seed and computes its line bundle.
func (e *engine) buildBundle() error {
	if !e.seed.IsNormal() {
		e.state = stateFailed

		return fmt.Errorf("%w: entries are not 1..n²", ErrNotMagicSeed)
	}
	b, err := BuildBundle(e.seed.Order(), e.seed.MagicConstant())
	if err != nil {
		e.state = stateFailed

		return err
	}
	e.bundle = b
	e.state = stateBundleBuilt

	return nil
}

// assemble mounts the interior, relabeled by the shift 2n+2, and lays
// the frame ring around it in a scratch working grid the engine owns
// exclusively.
func (e *engine) assemble() error {
	f, err := e.bundle.Frame()
	if err != nil {
		e.state = stateFailed

		return err
	}

	n := e.seed.Order()
	shift := 2*n + 2
	e.work = make([][]int, n+2)
	for i := range e.work {
		e.work[i] = make([]int, n+2)
	}
	for i, row := range e.seed.ToRows() {
		for j, v := range row {
			e.work[i+1][j+1] = v + shift
		}
	}
	for j := 0; j < n+2; j++ {
		e.work[0][j] = f.Top[j]
		e.work[n+1][j] = f.Bottom[j]
	}
	for i := 0; i < n+2; i++ {
		e.work[i][0] = f.Left[i]
		e.work[i][n+1] = f.Right[i]
	}
	e.state = stateAssembled

	return nil
}

// validate freezes the working grid through the full magic-square
// validator and checks the promised constant before releasing it.
func (e *engine) validate() (*magic.Square, error) {
	out, err := magic.FromRows(e.work)
	if err != nil {
		e.state = stateFailed

		return nil, fmt.Errorf("%w: assembled square failed revalidation: %v", ErrInfeasibleBundle, err)
	}
	e.state = stateValidated

	want := e.seed.MagicConstant() + e.bundle.Increment()
	if out.MagicConstant() != want {
		e.state = stateFailed

		return nil, fmt.Errorf("%w: constant %d, want %d", ErrInfeasibleBundle, out.MagicConstant(), want)
	}
	e.state = stateOutput

	return out, nil
}
