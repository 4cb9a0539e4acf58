package operations

import "fmt"

// InvalidOperationError is returned when two operation kinds cannot be
// merged, or an operation is applied to a value of an incompatible shape.
// It marks a usage error and is never retried.
type InvalidOperationError struct {
	Op     string
	Reason string
}

func (e *InvalidOperationError) Error() string {
	return fmt.Sprintf("operation %s is invalid: %s", e.Op, e.Reason)
}

// DecodeError is returned for an unrecognized operation tag. It is fatal for
// the decode call since it indicates a protocol version the client cannot
// reason about.
type DecodeError struct {
	Tag string
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("unknown operation tag '%s'", e.Tag)
}

func errInvalidMerge(op string, previous string) error {
	return &InvalidOperationError{
		Op:     op,
		Reason: fmt.Sprintf("cannot merge with previous operation %s", previous),
	}
}

func errInvalidApply(op string, field string, old interface{}) error {
	return &InvalidOperationError{
		Op:     op,
		Reason: fmt.Sprintf("cannot apply to field '%s' holding %T", field, old),
	}
}
