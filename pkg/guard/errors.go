package guard

import (
	"errors"
	"fmt"
)

var (
	// ErrRequiredFieldMissing is the single user-facing validation condition.
	// It covers all three fields collectively.
	ErrRequiredFieldMissing = errors.New("guard: required field missing")
	// ErrMissingControl signals that the document has no control for one of
	// the guarded fields.
	ErrMissingControl = errors.New("guard: missing control")
)

// MissingControlError names the control that could not be found.
type MissingControlError struct {
	Kind ControlKind
	Name string
}

func (e *MissingControlError) Error() string {
	return fmt.Sprintf("guard: missing control %s[name=%q]", e.Kind, e.Name)
}

// Is reports ErrMissingControl so callers can match without type assertions.
func (e *MissingControlError) Is(target error) bool {
	return target == ErrMissingControl
}
