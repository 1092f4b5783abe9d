package jsexpr

import (
	"fmt"
)

// VariableNotFoundError reports an identifier with no variable binding.
// Optional-chain member access catches it by type and yields null instead.
type VariableNotFoundError struct {
	Name string
}

func (e *VariableNotFoundError) Error() string {
	return fmt.Sprintf("Variable not found: %s", e.Name)
}

// PropertyNotFoundError reports a missing key on a non-optional member
// access. Object carries the JSON rendering of the receiver.
type PropertyNotFoundError struct {
	Object   string
	Property string
}

func (e *PropertyNotFoundError) Error() string {
	return fmt.Sprintf("Property '%s' not found in object '%s'", e.Property, e.Object)
}
