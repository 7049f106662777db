package errors

import (
	"fmt"
)

// CompilerError is the interface implemented by all novac errors.
type CompilerError interface {
	error         // Embed the standard error interface
	Kind() string // e.g., "Invariant", "DuplicateField", "Descriptor"
	// Message returns the specific error message without kind info.
	// This might be useful if the caller wants to format the error differently.
	Message() string
	Unwrap() error // For error wrapping support (errors.Is/As)
}

// --- Concrete Error Types ---

// InvariantError represents a caller bug: a structurally malformed descriptor
// handed to a lowering function. Raised via panic, never returned.
type InvariantError struct {
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *InvariantError) Error() string {
	return fmt.Sprintf("Invariant Violation: %s", e.Msg)
}
func (e *InvariantError) Kind() string    { return "Invariant" }
func (e *InvariantError) Message() string { return e.Msg }
func (e *InvariantError) Unwrap() error   { return e.Cause }
func (e *InvariantError) CausedBy(cause error) *InvariantError {
	e.Cause = cause
	return e
}

// DuplicateFieldError represents a logic error inside the lowering pass
// itself: the same definition field was set twice. The fixed insertion order
// used by the lowering functions should make this impossible, so it is raised
// via panic to surface ordering regressions immediately.
type DuplicateFieldError struct {
	Field string
}

func (e *DuplicateFieldError) Error() string {
	return fmt.Sprintf("Duplicate Field: definition field %q was already set", e.Field)
}
func (e *DuplicateFieldError) Kind() string { return "DuplicateField" }
func (e *DuplicateFieldError) Message() string {
	return fmt.Sprintf("definition field %q was already set", e.Field)
}
func (e *DuplicateFieldError) Unwrap() error { return nil }

// DescriptorError represents invalid serialized descriptor input. This is the
// one user-facing, recoverable kind: the descriptor reader returns it as a
// normal error value.
type DescriptorError struct {
	Unit  string // Name of the module/injector being read, if known
	Msg   string
	Cause error // Underlying cause, if any
}

func (e *DescriptorError) Error() string {
	if e.Unit != "" {
		return fmt.Sprintf("Descriptor Error in %q: %s", e.Unit, e.Msg)
	}
	return fmt.Sprintf("Descriptor Error: %s", e.Msg)
}
func (e *DescriptorError) Kind() string    { return "Descriptor" }
func (e *DescriptorError) Message() string { return e.Msg }
func (e *DescriptorError) Unwrap() error   { return e.Cause }
func (e *DescriptorError) CausedBy(cause error) *DescriptorError {
	e.Cause = cause
	return e
}
