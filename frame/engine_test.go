package frame_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmagic/frame"
	"github.com/katalvlaran/lvlmagic/generate"
	"github.com/katalvlaran/lvlmagic/magic"
)

//----------------------------------------------------------------------------//
// Pinned embeddings
//----------------------------------------------------------------------------//

// TestEmbed_Order1 borders the trivial square into the Luo Shu.
func TestEmbed_Order1(t *testing.T) {
	seed, err := magic.FromRows([][]int{{1}})
	require.NoError(t, err)

	out, err := frame.Embed(seed)
	require.NoError(t, err)
	assert.Equal(t, 3, out.Order())
	assert.Equal(t, 15, out.MagicConstant())
	assert.Equal(t, [][]int{
		{2, 7, 6},
		{9, 5, 1},
		{4, 3, 8},
	}, out.ToRows())
}

// TestEmbed_Order3 borders the de la Loubère order-3 square.
func TestEmbed_Order3(t *testing.T) {
	seed, err := magic.FromRows([][]int{
		{8, 1, 6},
		{3, 5, 7},
		{4, 9, 2},
	})
	require.NoError(t, err)

	out, err := frame.Embed(seed)
	require.NoError(t, err)
	assert.Equal(t, 5, out.Order())
	assert.Equal(t, 65, out.MagicConstant())
	assert.Equal(t, [][]int{
		{4, 1, 21, 19, 20},
		{24, 16, 9, 14, 2},
		{23, 11, 13, 15, 3},
		{8, 12, 17, 10, 18},
		{6, 25, 5, 7, 22},
	}, out.ToRows())
}

// TestEmbed_Order4 borders the criss-cross order-4 square.
func TestEmbed_Order4(t *testing.T) {
	gen := generate.NewDoublyEven(generate.DefaultDoublyEvenOptions())
	seed, err := gen.Generate(4)
	require.NoError(t, err)

	out, err := frame.Embed(seed)
	require.NoError(t, err)
	assert.Equal(t, 6, out.Order())
	assert.Equal(t, 111, out.MagicConstant())
	assert.Equal(t, [][]int{
		{1, 34, 4, 32, 9, 31},
		{35, 11, 25, 24, 14, 2},
		{30, 22, 16, 17, 19, 7},
		{29, 18, 20, 21, 15, 8},
		{10, 23, 13, 12, 26, 27},
		{6, 3, 33, 5, 28, 36},
	}, out.ToRows())
}

// TestEmbed_Order9 borders the de la Loubère order-9 square into the
// order-11 square used throughout the package documentation.
func TestEmbed_Order9(t *testing.T) {
	seed, err := generate.Siamese{}.Generate(9)
	require.NoError(t, err)

	out, err := frame.Embed(seed)
	require.NoError(t, err)
	assert.Equal(t, 11, out.Order())
	assert.Equal(t, 671, out.MagicConstant())

	want := [][]int{
		{10, 1, 3, 5, 7, 111, 109, 107, 105, 103, 110},
		{120, 67, 78, 89, 100, 21, 32, 43, 54, 65, 2},
		{118, 77, 88, 99, 29, 31, 42, 53, 64, 66, 4},
		{116, 87, 98, 28, 30, 41, 52, 63, 74, 76, 6},
		{114, 97, 27, 38, 40, 51, 62, 73, 75, 86, 8},
		{113, 26, 37, 39, 50, 61, 72, 83, 85, 96, 9},
		{14, 36, 47, 49, 60, 71, 82, 84, 95, 25, 108},
		{16, 46, 48, 59, 70, 81, 92, 94, 24, 35, 106},
		{18, 56, 58, 69, 80, 91, 93, 23, 34, 45, 104},
		{20, 57, 68, 79, 90, 101, 22, 33, 44, 55, 102},
		{12, 121, 119, 117, 115, 11, 13, 15, 17, 19, 112},
	}
	assert.Equal(t, want, out.ToRows())

	// the documented grid is itself a valid normal magic square
	doc, err := magic.FromRows(want)
	require.NoError(t, err)
	assert.True(t, doc.IsNormal())
}

//----------------------------------------------------------------------------//
// Chained embeddings
//----------------------------------------------------------------------------//

// TestEmbed_OddChain grows the trivial square through every odd order
// up to 15; each step must stay normal with the right constant.
func TestEmbed_OddChain(t *testing.T) {
	sq, err := magic.FromRows([][]int{{1}})
	require.NoError(t, err)

	for want := 3; want <= 15; want += 2 {
		sq, err = frame.Embed(sq)
		require.NoError(t, err, "growing to order %d", want)
		assert.Equal(t, want, sq.Order())
		assert.Equal(t, magic.NormalConstant(want), sq.MagicConstant())
		assert.True(t, sq.IsNormal(), "order %d", want)
	}
}

// TestEmbed_EvenChain grows a criss-cross order-4 square through every
// even order up to 14, crossing both even parity programs.
func TestEmbed_EvenChain(t *testing.T) {
	gen := generate.NewDoublyEven(generate.DefaultDoublyEvenOptions())
	sq, err := gen.Generate(4)
	require.NoError(t, err)

	for want := 6; want <= 14; want += 2 {
		sq, err = frame.Embed(sq)
		require.NoError(t, err, "growing to order %d", want)
		assert.Equal(t, want, sq.Order())
		assert.Equal(t, magic.NormalConstant(want), sq.MagicConstant())
		assert.True(t, sq.IsNormal(), "order %d", want)
	}
}

//----------------------------------------------------------------------------//
// Seed rejection and immutability
//----------------------------------------------------------------------------//

// TestEmbed_NotNormal rejects magic squares whose entries are not 1..n².
func TestEmbed_NotNormal(t *testing.T) {
	luoShu, err := magic.FromRows([][]int{
		{4, 9, 2},
		{3, 5, 7},
		{8, 1, 6},
	})
	require.NoError(t, err)

	_, err = frame.Embed(luoShu.Translate(10))
	assert.ErrorIs(t, err, frame.ErrNotMagicSeed)

	scaled, err := luoShu.Scale(3)
	require.NoError(t, err)
	_, err = frame.Embed(scaled)
	assert.ErrorIs(t, err, frame.ErrNotMagicSeed)
}

// TestEmbed_SeedUntouched verifies the seed is left intact.
func TestEmbed_SeedUntouched(t *testing.T) {
	seed, err := magic.FromRows([][]int{
		{8, 1, 6},
		{3, 5, 7},
		{4, 9, 2},
	})
	require.NoError(t, err)

	_, err = frame.Embed(seed)
	require.NoError(t, err)
	assert.Equal(t, [][]int{
		{8, 1, 6},
		{3, 5, 7},
		{4, 9, 2},
	}, seed.ToRows())
}

// TestEmbed_Deterministic verifies repeated embeds of one seed agree.
func TestEmbed_Deterministic(t *testing.T) {
	seed, err := generate.Siamese{}.Generate(7)
	require.NoError(t, err)

	first, err := frame.Embed(seed)
	require.NoError(t, err)
	second, err := frame.Embed(seed)
	require.NoError(t, err)
	assert.True(t, first.Equal(second))
}
