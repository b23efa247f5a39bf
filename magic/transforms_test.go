package magic_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvlmagic/magic"
)

//----------------------------------------------------------------------------//
// Affine family
//----------------------------------------------------------------------------//

// TestAffine_Identity verifies Affine(1,0) is a no-op.
func TestAffine_Identity(t *testing.T) {
	s, err := magic.FromRows(luoShu)
	require.NoError(t, err)

	id, err := s.Affine(1, 0)
	require.NoError(t, err)
	assert.True(t, s.Equal(id))
	assert.Equal(t, s.MagicConstant(), id.MagicConstant())
}

// TestAffine_Constant verifies M' = a·M + b·n.
func TestAffine_Constant(t *testing.T) {
	s, err := magic.FromRows(luoShu)
	require.NoError(t, err)

	out, err := s.Affine(-1, 10)
	require.NoError(t, err)
	assert.Equal(t, -15+10*3, out.MagicConstant())

	v, err := out.Get(1, 1)
	require.NoError(t, err)
	assert.Equal(t, 5, v, "center 5 maps to -5+10")
}

// TestAffine_Complement maps a normal square onto itself via x → n²+1-x.
func TestAffine_Complement(t *testing.T) {
	s, err := magic.FromRows(durer)
	require.NoError(t, err)

	c, err := s.Affine(-1, 17)
	require.NoError(t, err)
	assert.Equal(t, 34, c.MagicConstant())
	assert.True(t, c.IsNormal(), "complement of a normal square is normal")
}

// TestAffine_Degenerate rejects a zero scale.
func TestAffine_Degenerate(t *testing.T) {
	s, err := magic.FromRows(luoShu)
	require.NoError(t, err)

	_, err = s.Affine(0, 3)
	assert.ErrorIs(t, err, magic.ErrDegenerate)
	_, err = s.Scale(0)
	assert.ErrorIs(t, err, magic.ErrDegenerate)
}

// TestTranslateScale verifies the two affine shorthands.
func TestTranslateScale(t *testing.T) {
	s, err := magic.FromRows(luoShu)
	require.NoError(t, err)

	up := s.Translate(8)
	assert.Equal(t, 15+8*3, up.MagicConstant())

	big, err := s.Scale(2)
	require.NoError(t, err)
	assert.Equal(t, 30, big.MagicConstant())
}

//----------------------------------------------------------------------------//
// Layout transforms
//----------------------------------------------------------------------------//

// TestRotate_FourTimes verifies rotating through four quarter turns is
// the identity, and that intermediate turns stay magic.
func TestRotate_FourTimes(t *testing.T) {
	s, err := magic.FromRows(durer)
	require.NoError(t, err)

	cur := s
	for i := 0; i < 4; i++ {
		cur = cur.Rotate(1)
		assert.Equal(t, s.MagicConstant(), cur.MagicConstant())
	}
	assert.True(t, s.Equal(cur), "four quarter turns must return the original")
	assert.True(t, s.Equal(s.Rotate(4)))
	assert.True(t, s.Rotate(-1).Equal(s.Rotate(3)), "negative turns wrap")
}

// TestReflect_Involutions verifies every axis reflection is an involution.
func TestReflect_Involutions(t *testing.T) {
	s, err := magic.FromRows(durer)
	require.NoError(t, err)

	for _, axis := range []magic.Axis{magic.Horizontal, magic.Vertical, magic.Diagonal, magic.Antidiagonal} {
		once := s.Reflect(axis)
		assert.Equal(t, s.MagicConstant(), once.MagicConstant())
		assert.True(t, s.Equal(once.Reflect(axis)), "axis %d applied twice", axis)
	}
}

// TestReflect_Horizontal pins down the expected layout.
func TestReflect_Horizontal(t *testing.T) {
	s, err := magic.FromRows(luoShu)
	require.NoError(t, err)

	want := [][]int{
		{8, 1, 6},
		{3, 5, 7},
		{4, 9, 2},
	}
	if diff := cmp.Diff(want, s.Reflect(magic.Horizontal).ToRows()); diff != "" {
		t.Errorf("Reflect(Horizontal) mismatch (-want +got):\n%s", diff)
	}
}

// TestTranspose verifies Transpose equals Reflect(Diagonal).
func TestTranspose(t *testing.T) {
	s, err := magic.FromRows(durer)
	require.NoError(t, err)
	assert.True(t, s.Transpose().Equal(s.Reflect(magic.Diagonal)))
	assert.True(t, s.Transpose().Transpose().Equal(s))
}

// TestDihedral verifies the eight dihedral images of the Luo Shu are
// exactly the eight order-3 magic squares on 1..9.
func TestDihedral(t *testing.T) {
	s, err := magic.FromRows(luoShu)
	require.NoError(t, err)

	seen := make(map[string]bool)
	for k := 0; k < 4; k++ {
		for _, flip := range []bool{false, true} {
			img := s.Rotate(k)
			if flip {
				img = img.Reflect(magic.Horizontal)
			}
			assert.Equal(t, 15, img.MagicConstant())
			key := ""
			for _, row := range img.ToRows() {
				for _, v := range row {
					key += string(rune('0' + v))
				}
			}
			seen[key] = true
		}
	}
	assert.Len(t, seen, 8, "the dihedral group of order 3 has eight distinct images")
}
