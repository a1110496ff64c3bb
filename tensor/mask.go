package tensor

import "fmt"

// Mask is a rank-n tensor of bool values, the result shape of predicate
// operations such as sector sieving. Storage mirrors Dense: one flat
// row-major slice plus a shape.
type Mask struct {
	shape []int
	data  []bool
}

// NewMask creates a false-filled mask of the given shape.
func NewMask(shape ...int) (*Mask, error) {
	n, err := elemCount(shape)
	if err != nil {
		return nil, fmt.Errorf("tensor.NewMask%v: %w", shape, err)
	}

	return &Mask{shape: append([]int(nil), shape...), data: make([]bool, n)}, nil
}

// Rank returns the number of dimensions (0 for a scalar).
func (m *Mask) Rank() int { return len(m.shape) }

// Shape returns a copy of the dimension sizes.
func (m *Mask) Shape() []int { return append([]int(nil), m.shape...) }

// Len returns the total number of elements.
func (m *Mask) Len() int { return len(m.data) }

// Raw returns the live flat backing slice in row-major order.
func (m *Mask) Raw() []bool { return m.data }

// At retrieves the element at the given multi-index.
func (m *Mask) At(idx ...int) (bool, error) {
	d := Dense{shape: m.shape}
	flat, err := d.indexOf(idx)
	if err != nil {
		return false, err
	}

	return m.data[flat], nil
}

// Item unwraps a mask holding exactly one element into its bool value.
func (m *Mask) Item() (bool, error) {
	if len(m.data) != 1 {
		return false, fmt.Errorf("tensor: shape %v has %d elements: %w", m.shape, len(m.data), ErrNotScalar)
	}

	return m.data[0], nil
}

// Count returns the number of true elements.
func (m *Mask) Count() int {
	n := 0
	for _, v := range m.data {
		if v {
			n++
		}
	}

	return n
}
