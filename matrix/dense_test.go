package matrix_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cpsearch/lns/matrix"
)

func TestNewDense_InvalidDimensions(t *testing.T) {
	_, err := matrix.NewDense(0, 3)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)

	_, err = matrix.NewDense(3, -1)
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}

func TestDense_AtSet(t *testing.T) {
	d, err := matrix.NewDense(2, 3)
	require.NoError(t, err)

	require.NoError(t, d.Set(1, 2, 4.5))
	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = d.At(2, 0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)

	err = d.Set(0, 3, 1.0)
	assert.ErrorIs(t, err, matrix.ErrIndexOutOfBounds)
}

func TestDense_Clone_Independent(t *testing.T) {
	d, err := matrix.NewDense(2, 2)
	require.NoError(t, err)
	require.NoError(t, d.Set(0, 0, 1))

	cp := d.Clone()
	require.NoError(t, d.Set(0, 0, 99))

	v, err := cp.At(0, 0)
	require.NoError(t, err)
	assert.Equal(t, 1.0, v, "clone must not observe mutations to the original")
}

func TestNewDenseFromRows(t *testing.T) {
	d, err := matrix.NewDenseFromRows([][]float64{
		{0, 1, 2},
		{1, 0, 3},
		{2, 3, 0},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, d.Rows())
	assert.Equal(t, 3, d.Cols())

	v, err := d.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, 3.0, v)

	_, err = matrix.NewDenseFromRows([][]float64{{1, 2}, {3}})
	assert.ErrorIs(t, err, matrix.ErrInvalidDimensions)
}
