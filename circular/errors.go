package circular

import "errors"

// Sentinel errors for circular operations. Tensor variants return these
// (wrapped with shape context via fmt.Errorf); scalar variants never error.
var (
	// ErrShapeMismatch indicates sector start and end tensors differ in shape,
	// or operands cannot be broadcast together.
	ErrShapeMismatch = errors.New("circular: shapes must be the same")
	// ErrNilTensor indicates a nil tensor operand.
	ErrNilTensor = errors.New("circular: nil tensor operand")
)
