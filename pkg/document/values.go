package document

import "github.com/goliatone/go-formguard/pkg/guard"

// Values is an in-memory document keyed by control kind and name.
type Values map[guard.Control]string

// FeedbackValues builds a document holding the three guarded controls.
func FeedbackValues(name, email, rating string) Values {
	return Values{
		{Kind: guard.ControlInput, Name: guard.FieldName}:    name,
		{Kind: guard.ControlInput, Name: guard.FieldEmail}:   email,
		{Kind: guard.ControlSelect, Name: guard.FieldRating}: rating,
	}
}

// Value implements guard.Document.
func (v Values) Value(kind guard.ControlKind, name string) (string, bool) {
	value, ok := v[guard.Control{Kind: kind, Name: name}]
	return value, ok
}

// Set records a control value.
func (v Values) Set(kind guard.ControlKind, name, value string) {
	v[guard.Control{Kind: kind, Name: name}] = value
}
