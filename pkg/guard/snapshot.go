package guard

import "strings"

// ControlKind identifies the element type a field is read from.
type ControlKind string

const (
	// ControlInput is a text-like input element.
	ControlInput ControlKind = "input"
	// ControlSelect is a select element.
	ControlSelect ControlKind = "select"
)

// Field names of the guarded controls.
const (
	FieldName   = "name"
	FieldEmail  = "email"
	FieldRating = "rating"
)

// Control describes where a guarded field lives in a document.
type Control struct {
	Kind ControlKind
	Name string
}

// Controls lists the guarded controls in check order.
var Controls = []Control{
	{Kind: ControlInput, Name: FieldName},
	{Kind: ControlInput, Name: FieldEmail},
	{Kind: ControlSelect, Name: FieldRating},
}

// Snapshot is the set of field values read at validation time.
type Snapshot struct {
	Name   string
	Email  string
	Rating string
}

// Normalize trims surrounding whitespace from Name and Email. Rating is kept
// exactly as read.
func (s Snapshot) Normalize() Snapshot {
	return Snapshot{
		Name:   strings.TrimSpace(s.Name),
		Email:  strings.TrimSpace(s.Email),
		Rating: s.Rating,
	}
}

// Missing returns the names of the fields that are empty after Normalize, in
// check order. Nil means the snapshot is acceptable.
func (s Snapshot) Missing() []string {
	n := s.Normalize()
	var out []string
	if n.Name == "" {
		out = append(out, FieldName)
	}
	if n.Email == "" {
		out = append(out, FieldEmail)
	}
	if n.Rating == "" {
		out = append(out, FieldRating)
	}
	return out
}

// Valid reports whether every guarded field has a value.
func (s Snapshot) Valid() bool {
	return len(s.Missing()) == 0
}

// Validate is the pure submission rule: name and email must be non-empty after
// trimming and rating must be non-empty as given.
func Validate(name, email, rating string) bool {
	return Snapshot{Name: name, Email: email, Rating: rating}.Valid()
}

func (s *Snapshot) set(field, value string) {
	switch field {
	case FieldName:
		s.Name = value
	case FieldEmail:
		s.Email = value
	case FieldRating:
		s.Rating = value
	}
}
