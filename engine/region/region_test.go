package region

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegionRejectsInvalidDimensions(t *testing.T) {
	_, err := New1D(0, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = New2D(0, 0, 4, -1)
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = New3D(0, 0, 0, 1, 1, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestConstrainRejectsInvalidShape(t *testing.T) {
	r, err := New2D(0, 0, 4, 4)
	require.NoError(t, err)

	_, err = Constrain(r, 0, 8, 1, 0, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = Constrain(r, 8, 8, 1, -1, 0)
	require.ErrorIs(t, err, ErrInvalidDimension)

	_, err = Constrain(r, 8, 8, 1, 0, -2)
	require.ErrorIs(t, err, ErrInvalidDimension)
}

func TestConstrainClampsOffsetAndSize(t *testing.T) {
	r, err := New3D(-5, 100, 2, 10, 10, 10)
	require.NoError(t, err)

	c, err := Constrain(r, 16, 16, 4, 3, 1)
	require.NoError(t, err)

	// Negative offset clamps to 0; oversized offset clamps to max-1 with a
	// size of at least 1; size never extends past the max extent.
	assert.Equal(t, 0, c.X())
	assert.Equal(t, 15, c.Y())
	assert.Equal(t, 2, c.Z())
	assert.Equal(t, 10, c.Width())
	assert.Equal(t, 1, c.Height())
	assert.Equal(t, 2, c.Depth())
	assert.Equal(t, 3, c.Layer())
	assert.Equal(t, 1, c.Level())

	assert.GreaterOrEqual(t, c.X(), 0)
	assert.LessOrEqual(t, c.X()+c.Width(), 16)
	assert.LessOrEqual(t, c.Y()+c.Height(), 16)
	assert.LessOrEqual(t, c.Z()+c.Depth(), 4)
}

func TestMergeIsIdempotent(t *testing.T) {
	a, err := New2D(2, 3, 5, 4)
	require.NoError(t, err)

	merged, err := a.Merge(&a)
	require.NoError(t, err)
	assert.Equal(t, a, merged)
}

func TestMergeNilIsIdentity(t *testing.T) {
	a, err := New2D(2, 3, 5, 4)
	require.NoError(t, err)

	merged, err := a.Merge(nil)
	require.NoError(t, err)
	assert.Equal(t, a, merged)
}

func TestMergeBoundingBox(t *testing.T) {
	a, err := New2D(2, 3, 5, 4)
	require.NoError(t, err)

	merged, err := a.MergeBounds(10, 10, 0, 2, 2, 1)
	require.NoError(t, err)

	assert.Equal(t, 2, merged.X())
	assert.Equal(t, 3, merged.Y())
	assert.Equal(t, 10, merged.Width())  // [2, 12)
	assert.Equal(t, 9, merged.Height())  // [3, 12)
}

func TestMergeCommutativeAndAssociative(t *testing.T) {
	mk := func(x, y, w, h int) Region {
		r, err := New2D(x, y, w, h)
		require.NoError(t, err)
		c, err := Constrain(r, 64, 64, 1, 0, 0)
		require.NoError(t, err)
		return c
	}
	a := mk(2, 3, 5, 4)
	b := mk(20, 1, 3, 7)
	c := mk(9, 30, 2, 2)

	ab, err := a.Merge(&b)
	require.NoError(t, err)
	ba, err := b.Merge(&a)
	require.NoError(t, err)
	assert.Equal(t, ab, ba)

	abc, err := ab.Merge(&c)
	require.NoError(t, err)
	bc, err := b.Merge(&c)
	require.NoError(t, err)
	aBC, err := a.Merge(&bc)
	require.NoError(t, err)
	assert.Equal(t, abc, aBC)

	ac, err := a.Merge(&c)
	require.NoError(t, err)
	acb, err := ac.Merge(&b)
	require.NoError(t, err)
	assert.Equal(t, abc, acb)
}

func TestMergeRejectsMismatchedTags(t *testing.T) {
	base, err := New2D(0, 0, 4, 4)
	require.NoError(t, err)

	a, err := Constrain(base, 16, 16, 1, 0, 0)
	require.NoError(t, err)
	b, err := Constrain(base, 16, 16, 1, 0, 1)
	require.NoError(t, err)
	_, err = a.Merge(&b)
	require.ErrorIs(t, err, ErrIncompatibleMerge)

	c, err := Constrain(base, 16, 16, 1, 2, 0)
	require.NoError(t, err)
	_, err = a.Merge(&c)
	require.ErrorIs(t, err, ErrIncompatibleMerge)
}

func TestMergeRejectsMismatchedExtents(t *testing.T) {
	base, err := New2D(0, 0, 4, 4)
	require.NoError(t, err)

	a, err := Constrain(base, 16, 16, 1, 0, 0)
	require.NoError(t, err)
	b, err := Constrain(base, 32, 32, 1, 0, 0)
	require.NoError(t, err)

	_, err = a.Merge(&b)
	require.ErrorIs(t, err, ErrIncompatibleMerge)
}

func TestMergeReclampsToMaxExtent(t *testing.T) {
	base, err := New2D(14, 14, 2, 2)
	require.NoError(t, err)
	a, err := Constrain(base, 16, 16, 1, 0, 0)
	require.NoError(t, err)

	// Bounds reaching past the max extent clamp back inside it.
	merged, err := a.MergeBounds(0, 0, 0, 100, 100, 1)
	require.NoError(t, err)
	assert.Equal(t, 0, merged.X())
	assert.Equal(t, 16, merged.Width())
	assert.Equal(t, 0, merged.Y())
	assert.Equal(t, 16, merged.Height())
}
