package tensor

import "fmt"

// SameShape reports whether two shapes are identical dimension by dimension.
func SameShape(a, b []int) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}

	return true
}

// BroadcastShapes combines two shapes under standard broadcasting rules:
// shapes are right-aligned, and each pair of dimensions must be equal or
// contain a 1 (which stretches to the other). A rank-0 shape broadcasts
// against anything. Incompatible pairs fail with ErrShapeMismatch.
// Complexity: O(max rank).
func BroadcastShapes(a, b []int) ([]int, error) {
	rank := len(a)
	if len(b) > rank {
		rank = len(b)
	}
	out := make([]int, rank)
	for k := 1; k <= rank; k++ {
		da, db := 1, 1
		if k <= len(a) {
			da = a[len(a)-k]
		}
		if k <= len(b) {
			db = b[len(b)-k]
		}
		switch {
		case da == db:
			out[rank-k] = da
		case da == 1:
			out[rank-k] = db
		case db == 1:
			out[rank-k] = da
		default:
			return nil, fmt.Errorf("tensor: cannot broadcast %v with %v: %w", a, b, ErrShapeMismatch)
		}
	}

	return out, nil
}

// BroadcastTo materializes t stretched to the given shape.
// The target must be reachable from t's shape under broadcasting rules
// (t's shape right-aligned, each dimension equal to the target or 1);
// anything else fails with ErrShapeMismatch.
// Complexity: O(len of result).
func (t *Dense) BroadcastTo(shape []int) (*Dense, error) {
	if SameShape(t.shape, shape) {
		return t.Clone(), nil
	}
	if len(t.shape) > len(shape) {
		return nil, fmt.Errorf("tensor: cannot broadcast %v to %v: %w", t.shape, shape, ErrShapeMismatch)
	}

	// Right-align source strides against the target shape; a stretched
	// dimension (source size 1 or missing) contributes stride 0.
	strides := make([]int, len(shape))
	stride := 1
	offset := len(shape) - len(t.shape)
	for k := len(shape) - 1; k >= 0; k-- {
		size := 1
		if k >= offset {
			size = t.shape[k-offset]
		}
		if size != 1 && size != shape[k] {
			return nil, fmt.Errorf("tensor: cannot broadcast %v to %v: %w", t.shape, shape, ErrShapeMismatch)
		}
		if size == shape[k] && shape[k] != 1 {
			strides[k] = stride
		}
		if k >= offset {
			stride *= size
		}
	}

	out, err := New(shape...)
	if err != nil {
		return nil, err
	}

	// Walk the target in row-major order with a multi-index counter,
	// accumulating the source offset from the stretched strides.
	idx := make([]int, len(shape))
	src := 0
	for flat := range out.data {
		out.data[flat] = t.data[src]
		for k := len(shape) - 1; k >= 0; k-- {
			idx[k]++
			src += strides[k]
			if idx[k] < shape[k] {
				break
			}
			idx[k] = 0
			src -= strides[k] * shape[k]
		}
	}

	return out, nil
}
