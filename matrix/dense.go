package matrix

import "fmt"

// Dense is a row-major matrix of float64 values. r is rows, c is columns,
// and data holds r*c elements in row-major order (data[i*c+j] == element
// (i,j)), the same linearization the teacher's bbEngine dense buffer
// (_examples/katalvlaran-lvlath/tsp/bb.go) uses for its own hot-path weight
// lookups.
type Dense struct {
	r, c int
	data []float64
}

var _ Matrix = (*Dense)(nil)

// denseErrorf wraps an underlying error with Dense method context.
func denseErrorf(method string, row, col int, err error) error {
	return fmt.Errorf("Dense.%s(%d,%d): %w", method, row, col, err)
}

// NewDense creates an r×c Dense matrix initialized to zeros.
func NewDense(rows, cols int) (*Dense, error) {
	if rows <= 0 || cols <= 0 {
		return nil, ErrInvalidDimensions
	}

	return &Dense{r: rows, c: cols, data: make([]float64, rows*cols)}, nil
}

// NewDenseFromRows builds a Dense matrix from a rectangular [][]float64.
// All rows must share the same length; rows must be non-empty.
func NewDenseFromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrInvalidDimensions
	}
	n := len(rows[0])
	d, err := NewDense(len(rows), n)
	if err != nil {
		return nil, err
	}
	for i, row := range rows {
		if len(row) != n {
			return nil, ErrInvalidDimensions
		}
		copy(d.data[i*n:(i+1)*n], row)
	}

	return d, nil
}

// Rows returns the number of rows in the matrix.
func (d *Dense) Rows() int { return d.r }

// Cols returns the number of columns in the matrix.
func (d *Dense) Cols() int { return d.c }

func (d *Dense) indexOf(row, col int) (int, error) {
	if row < 0 || row >= d.r || col < 0 || col >= d.c {
		return 0, ErrIndexOutOfBounds
	}

	return row*d.c + col, nil
}

// At retrieves the element at (row, col).
func (d *Dense) At(row, col int) (float64, error) {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return 0, denseErrorf("At", row, col, err)
	}

	return d.data[idx], nil
}

// Set assigns v at (row, col).
func (d *Dense) Set(row, col int, v float64) error {
	idx, err := d.indexOf(row, col)
	if err != nil {
		return denseErrorf("Set", row, col, err)
	}
	d.data[idx] = v

	return nil
}

// Clone returns an independent deep copy of d.
func (d *Dense) Clone() Matrix {
	cp := make([]float64, len(d.data))
	copy(cp, d.data)

	return &Dense{r: d.r, c: d.c, data: cp}
}
