package tensor

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/floats"
)

// Dense is a rank-n tensor of float64 values stored in a flat row-major
// slice. A Dense with an empty shape has rank 0 and holds exactly one
// element (a scalar). Dense is immutable through every package operation
// except Set and Fill.
type Dense struct {
	shape []int     // dimension sizes; empty for rank 0
	data  []float64 // flat backing storage, length == product(shape)
}

// elemCount returns the element count implied by shape, or an error if any
// dimension is non-positive. An empty shape counts as one element (rank 0).
func elemCount(shape []int) (int, error) {
	n := 1
	for _, d := range shape {
		if d <= 0 {
			return 0, ErrInvalidShape
		}
		n *= d
	}

	return n, nil
}

// New creates a zero-filled tensor of the given shape.
// New() with no dimensions creates a rank-0 scalar holding 0.
// Complexity: O(len) time and memory.
func New(shape ...int) (*Dense, error) {
	// Validate shape and compute total length.
	n, err := elemCount(shape)
	if err != nil {
		return nil, fmt.Errorf("tensor.New%v: %w", shape, err)
	}

	return &Dense{shape: append([]int(nil), shape...), data: make([]float64, n)}, nil
}

// Full creates a tensor of the given shape with every element set to v.
func Full(v float64, shape ...int) (*Dense, error) {
	t, err := New(shape...)
	if err != nil {
		return nil, err
	}
	t.Fill(v)

	return t, nil
}

// Scalar creates a rank-0 tensor holding v.
func Scalar(v float64) *Dense {
	return &Dense{shape: nil, data: []float64{v}}
}

// FromSlice creates a rank-1 tensor backed by a copy of vals.
// Returns ErrEmptyData for an empty slice.
func FromSlice(vals []float64) (*Dense, error) {
	if len(vals) == 0 {
		return nil, ErrEmptyData
	}
	data := make([]float64, len(vals))
	copy(data, vals)

	return &Dense{shape: []int{len(vals)}, data: data}, nil
}

// FromRows creates a rank-2 tensor from nested rows.
// Every row must have the same length; ragged input fails with
// ErrNonRectangular, empty input with ErrEmptyData.
func FromRows(rows [][]float64) (*Dense, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, ErrEmptyData
	}
	cols := len(rows[0])
	data := make([]float64, 0, len(rows)*cols)
	for i, row := range rows {
		if len(row) != cols {
			return nil, fmt.Errorf("tensor.FromRows: row %d has %d elements, want %d: %w",
				i, len(row), cols, ErrNonRectangular)
		}
		data = append(data, row...)
	}

	return &Dense{shape: []int{len(rows), cols}, data: data}, nil
}

// Rank returns the number of dimensions (0 for a scalar).
func (t *Dense) Rank() int { return len(t.shape) }

// Shape returns a copy of the dimension sizes.
func (t *Dense) Shape() []int { return append([]int(nil), t.shape...) }

// Len returns the total number of elements.
func (t *Dense) Len() int { return len(t.data) }

// Raw returns the live flat backing slice in row-major order.
// Mutating it mutates the tensor; callers needing isolation should Clone first.
func (t *Dense) Raw() []float64 { return t.data }

// indexOf computes the flat offset for a multi-index, validating rank and bounds.
// Complexity: O(rank).
func (t *Dense) indexOf(idx []int) (int, error) {
	if len(idx) != len(t.shape) {
		return 0, fmt.Errorf("tensor: index %v against shape %v: %w", idx, t.shape, ErrRankMismatch)
	}
	flat := 0
	for k, i := range idx {
		if i < 0 || i >= t.shape[k] {
			return 0, fmt.Errorf("tensor: index %v against shape %v: %w", idx, t.shape, ErrIndexOutOfBounds)
		}
		flat = flat*t.shape[k] + i
	}

	return flat, nil
}

// At retrieves the element at the given multi-index.
// A rank-0 tensor is read with At() and no indices.
func (t *Dense) At(idx ...int) (float64, error) {
	flat, err := t.indexOf(idx)
	if err != nil {
		return 0, err
	}

	return t.data[flat], nil
}

// Set assigns v at the given multi-index.
func (t *Dense) Set(v float64, idx ...int) error {
	flat, err := t.indexOf(idx)
	if err != nil {
		return err
	}
	t.data[flat] = v

	return nil
}

// Fill assigns v to every element in place.
func (t *Dense) Fill(v float64) {
	for i := range t.data {
		t.data[i] = v
	}
}

// Item unwraps a tensor holding exactly one element (any rank) into its
// scalar value. Tensors with more than one element fail with ErrNotScalar.
func (t *Dense) Item() (float64, error) {
	if len(t.data) != 1 {
		return 0, fmt.Errorf("tensor: shape %v has %d elements: %w", t.shape, len(t.data), ErrNotScalar)
	}

	return t.data[0], nil
}

// Clone returns a deep copy.
// Complexity: O(len) time and memory.
func (t *Dense) Clone() *Dense {
	data := make([]float64, len(t.data))
	copy(data, t.data)

	return &Dense{shape: append([]int(nil), t.shape...), data: data}
}

// Map returns a new tensor with f applied element-wise, preserving shape
// and row-major order.
func (t *Dense) Map(f func(float64) float64) *Dense {
	out := t.Clone()
	for i, v := range out.data {
		out.data[i] = f(v)
	}

	return out
}

// ScaledBy returns a new tensor with every element multiplied by c.
func (t *Dense) ScaledBy(c float64) *Dense {
	out := t.Clone()
	floats.Scale(c, out.data)

	return out
}

// Reshape returns a view-copy of t with a new shape of identical element
// count. The data is copied, so the result is independent of the receiver.
func (t *Dense) Reshape(shape ...int) (*Dense, error) {
	n, err := elemCount(shape)
	if err != nil {
		return nil, fmt.Errorf("tensor.Reshape%v: %w", shape, err)
	}
	if n != len(t.data) {
		return nil, fmt.Errorf("tensor.Reshape%v: have %d elements, want %d: %w",
			shape, len(t.data), n, ErrShapeMismatch)
	}
	out := t.Clone()
	out.shape = append([]int(nil), shape...)

	return out, nil
}

// AxisSpans decomposes the row-major buffer around one axis:
// outer copies of (size lanes of inner contiguous elements), so that the
// element at (o, j, i) lives at flat offset (o*size+j)*inner + i.
// Reductions along axis walk j for fixed (o, i).
// Complexity: O(rank).
func (t *Dense) AxisSpans(axis int) (outer, size, inner int, err error) {
	if axis < 0 || axis >= len(t.shape) {
		return 0, 0, 0, fmt.Errorf("tensor: axis %d against shape %v: %w", axis, t.shape, ErrAxisOutOfRange)
	}
	outer, inner = 1, 1
	for k := 0; k < axis; k++ {
		outer *= t.shape[k]
	}
	for k := axis + 1; k < len(t.shape); k++ {
		inner *= t.shape[k]
	}

	return outer, t.shape[axis], inner, nil
}

// ReducedShape returns the shape with one axis removed, i.e. the shape of
// an axis-wise reduction result. Reducing the only axis of a rank-1 tensor
// (or any axis chain down to nothing) yields the rank-0 shape.
func (t *Dense) ReducedShape(axis int) ([]int, error) {
	if axis < 0 || axis >= len(t.shape) {
		return nil, fmt.Errorf("tensor: axis %d against shape %v: %w", axis, t.shape, ErrAxisOutOfRange)
	}
	out := make([]int, 0, len(t.shape)-1)
	out = append(out, t.shape[:axis]...)
	out = append(out, t.shape[axis+1:]...)

	return out, nil
}

// String implements fmt.Stringer for debugging: shape followed by the
// row-major elements.
func (t *Dense) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "tensor%v[", t.shape)
	for i, v := range t.data {
		if i > 0 {
			sb.WriteString(", ")
		}
		fmt.Fprintf(&sb, "%g", v)
	}
	sb.WriteString("]")

	return sb.String()
}
