// SPDX-License-Identifier: MIT

// Package mat: Dense is the owning, contiguous storage backend.
// It stores rows*cols scalars in a flat slice whose traversal order is fixed
// at construction by a Layout; indexing is two multiplies and an add.
package mat

// Dense is a matrix of float64 values backed by a single flat slice.
// A Dense exclusively owns its buffer; copying semantics are explicit
// (Clone, NewDenseCopy), never implicit.
type Dense struct {
	shape  RowCol
	extent Extent // resolved at construction, immutable thereafter
	lay    Layout
	data   []float64 // flat backing storage, length == rows*cols
}

// NewDense creates a rows×cols Dense initialized to zeros.
// Options select the storage order (default row-major) and may declare an
// extent to verify the shape against.
// Raises ErrBadShape on non-positive dimensions, ErrExtentMismatch when a
// declared static axis disagrees.
// Complexity: O(r*c) time and memory.
func NewDense(rows, cols int, opts ...Option) *Dense {
	o := gatherOptions(opts...)
	shape := RowCol{Row: rows, Col: cols}
	ext := o.extent.Resolve(shape) // validates shape, raises on disagreement
	return &Dense{
		shape:  shape,
		extent: ext,
		lay:    NewLayout(o.order, shape),
		data:   make([]float64, rows*cols),
	}
}

// NewDenseFromRows creates a Dense from literal row data:
//
//	m := mat.NewDenseFromRows([][]float64{{0, 1}, {2, 3}})
//
// All rows must have equal, positive length (raises ErrBadShape otherwise).
// The input slices are copied, never aliased.
// Complexity: O(r*c).
func NewDenseFromRows(rows [][]float64, opts ...Option) *Dense {
	checkf(len(rows) > 0 && len(rows[0]) > 0, "NewDenseFromRows", ErrBadShape,
		"%d rows", len(rows))
	cols := len(rows[0])
	for i, row := range rows {
		checkf(len(row) == cols, "NewDenseFromRows", ErrBadShape,
			"row %d has %d columns, want %d", i, len(row), cols)
	}
	m := NewDense(len(rows), cols, opts...)
	for i, row := range rows {
		for j, v := range row {
			m.data[m.lay.Offset(i, j)] = v
		}
	}
	return m
}

// NewDenseCopy materializes any Matrix into a fresh Dense, element by
// element. The source is read through the Matrix contract, so views and
// formula backends copy correctly.
// Complexity: O(r*c).
func NewDenseCopy(src Matrix, opts ...Option) *Dense {
	CheckNotNil("NewDenseCopy", src)
	s := src.Shape()
	m := NewDense(s.Row, s.Col, opts...)
	for i := 0; i < s.Row; i++ {
		for j := 0; j < s.Col; j++ {
			m.data[m.lay.Offset(i, j)] = src.At(i, j)
		}
	}
	return m
}

// Shape returns the resolved (rows, cols) pair.
// Complexity: O(1).
func (m *Dense) Shape() RowCol { return m.shape }

// Extent returns the extent the matrix was constructed under (fully static
// after Resolve).
// Complexity: O(1).
func (m *Dense) Extent() Extent { return m.extent }

// Layout returns the storage layout descriptor.
// Complexity: O(1).
func (m *Dense) Layout() Layout { return m.lay }

// At returns the element at (i, j).
// Raises ErrOutOfRange on an invalid index.
// Complexity: O(1).
func (m *Dense) At(i, j int) float64 {
	CheckInBounds("Dense.At", m.shape, i, j)
	return m.data[m.lay.Offset(i, j)]
}

// Set assigns v at (i, j).
// Raises ErrOutOfRange on an invalid index.
// Complexity: O(1).
func (m *Dense) Set(i, j int, v float64) {
	CheckInBounds("Dense.Set", m.shape, i, j)
	m.data[m.lay.Offset(i, j)] = v
}

// Data exposes the flat backing slice for kernels that have already
// validated shapes and want stride-level access. The layout governs the
// element order; mutating through Data writes the matrix.
// Complexity: O(1).
func (m *Dense) Data() []float64 { return m.data }

// Zero resets every element to 0, keeping shape and layout.
// Complexity: O(r*c).
func (m *Dense) Zero() {
	clear(m.data)
}

// Clone returns a deep copy with the same shape, layout and data.
// Complexity: O(r*c) time and memory.
func (m *Dense) Clone() *Dense {
	data := make([]float64, len(m.data))
	copy(data, m.data)
	return &Dense{shape: m.shape, extent: m.extent, lay: m.lay, data: data}
}

// String implements fmt.Stringer via the package renderer.
func (m *Dense) String() string { return ToString(m) }
