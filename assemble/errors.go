package assemble

import (
	"errors"
	"fmt"
)

// ErrEmptyGroup indicates a MIG group declares zero segments, which the
// assembler cannot drive (there is no entry segment to match against).
var ErrEmptyGroup = errors.New("assemble: group declares no segments")

// SchemaError wraps ErrEmptyGroup with the offending group's identifier.
type SchemaError struct {
	GroupID string
	Cause   error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("assemble: group %s: %v", e.GroupID, e.Cause)
}

func (e *SchemaError) Unwrap() error { return e.Cause }
