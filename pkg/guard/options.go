package guard

import (
	"strings"

	"go.uber.org/zap"
)

// DefaultMessage is shown when a required field is missing.
const DefaultMessage = "Please fill all required fields."

// MissingControlPolicy controls how Read treats a control that is absent from
// the document.
type MissingControlPolicy string

const (
	// MissingControlFail makes Read return a *MissingControlError.
	MissingControlFail MissingControlPolicy = "error"
	// MissingControlAsEmpty makes Read treat the absent control as empty, which
	// the rule then rejects.
	MissingControlAsEmpty MissingControlPolicy = "empty"
)

// Option configures a Guard.
type Option func(*Guard)

// WithNotifier sets the notifier used to alert the user on rejection.
func WithNotifier(n Notifier) Option {
	return func(g *Guard) {
		if n != nil {
			g.notifier = n
		}
	}
}

// WithMessage overrides the alert text. Blank messages are ignored.
func WithMessage(message string) Option {
	return func(g *Guard) {
		if trimmed := strings.TrimSpace(message); trimmed != "" {
			g.message = trimmed
		}
	}
}

// WithMissingControlPolicy selects how absent controls are handled.
func WithMissingControlPolicy(policy MissingControlPolicy) Option {
	return func(g *Guard) {
		switch policy {
		case MissingControlFail, MissingControlAsEmpty:
			g.policy = policy
		}
	}
}

// WithLogger attaches a logger. Values entered by the user are never logged.
func WithLogger(logger *zap.Logger) Option {
	return func(g *Guard) {
		if logger != nil {
			g.logger = logger
		}
	}
}
