package tensor

import "errors"

// Sentinel errors for tensor operations. All public APIs return these
// sentinels (possibly wrapped with context via fmt.Errorf("...: %w", ErrX));
// tests match them with errors.Is. No operation panics on user input.
var (
	// ErrInvalidShape indicates a requested shape has a non-positive dimension.
	ErrInvalidShape = errors.New("tensor: shape dimensions must be > 0")
	// ErrIndexOutOfBounds indicates an element index is outside valid range.
	ErrIndexOutOfBounds = errors.New("tensor: index out of bounds")
	// ErrRankMismatch indicates an index or shape has the wrong number of dimensions.
	ErrRankMismatch = errors.New("tensor: rank mismatch")
	// ErrAxisOutOfRange indicates a reduction axis is not a valid axis of the tensor.
	ErrAxisOutOfRange = errors.New("tensor: axis out of range")
	// ErrShapeMismatch indicates two shapes cannot be broadcast together.
	ErrShapeMismatch = errors.New("tensor: shapes are not broadcast-compatible")
	// ErrNonRectangular indicates nested rows of differing lengths.
	ErrNonRectangular = errors.New("tensor: all rows must have the same length")
	// ErrNotScalar indicates Item was called on a tensor with more than one element.
	ErrNotScalar = errors.New("tensor: tensor does not hold exactly one element")
	// ErrEmptyData indicates a constructor received no elements.
	ErrEmptyData = errors.New("tensor: input must contain at least one element")
)
