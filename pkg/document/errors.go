package document

import "errors"

var (
	// ErrNoControl is returned when setting a control the page does not contain.
	ErrNoControl = errors.New("document: no such control")
	// ErrNoOption is returned when a select value matches none of its options.
	ErrNoOption = errors.New("document: value is not a select option")
)
