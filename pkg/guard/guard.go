package guard

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// Document exposes the current value of named form controls. The boolean is
// false when no control of that kind and name exists.
type Document interface {
	Value(kind ControlKind, name string) (string, bool)
}

// Notifier shows a message to the user and blocks until it is acknowledged.
type Notifier interface {
	Alert(ctx context.Context, message string) error
}

// NotifierFunc adapts a function to Notifier.
type NotifierFunc func(ctx context.Context, message string) error

// Alert calls f.
func (f NotifierFunc) Alert(ctx context.Context, message string) error {
	return f(ctx, message)
}

type discardNotifier struct{}

func (discardNotifier) Alert(context.Context, string) error { return nil }

// Guard is the submit-validation hook for the feedback form. It holds no
// state between checks and is safe to share.
type Guard struct {
	notifier Notifier
	message  string
	policy   MissingControlPolicy
	logger   *zap.Logger
}

// New constructs a Guard. Without WithNotifier rejections are silent apart
// from the returned value.
func New(opts ...Option) *Guard {
	g := &Guard{
		notifier: discardNotifier{},
		message:  DefaultMessage,
		policy:   MissingControlFail,
		logger:   zap.NewNop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Message returns the alert text used on rejection.
func (g *Guard) Message() string {
	return g.message
}

// Read takes a fresh snapshot of the guarded controls from doc.
func (g *Guard) Read(doc Document) (Snapshot, error) {
	return read(doc, g.policy)
}

// Read takes a snapshot using the default policy, failing on absent controls.
func Read(doc Document) (Snapshot, error) {
	return read(doc, MissingControlFail)
}

func read(doc Document, policy MissingControlPolicy) (Snapshot, error) {
	var snap Snapshot
	if doc == nil {
		if policy == MissingControlAsEmpty {
			return snap, nil
		}
		first := Controls[0]
		return snap, &MissingControlError{Kind: first.Kind, Name: first.Name}
	}
	for _, control := range Controls {
		value, ok := doc.Value(control.Kind, control.Name)
		if !ok {
			if policy == MissingControlAsEmpty {
				continue
			}
			return Snapshot{}, &MissingControlError{Kind: control.Kind, Name: control.Name}
		}
		snap.set(control.Name, value)
	}
	return snap, nil
}

// Check reads doc and decides whether the submission may proceed. On
// rejection the notifier is called exactly once and false is returned. An
// absent control (under MissingControlFail) or a notifier failure yields
// false together with the error.
func (g *Guard) Check(ctx context.Context, doc Document) (bool, error) {
	snap, err := g.Read(doc)
	if err != nil {
		g.logger.Warn("form guard could not read controls", zap.Error(err))
		return false, err
	}
	return g.CheckSnapshot(ctx, snap)
}

// CheckSnapshot applies the gate to values that were already extracted.
func (g *Guard) CheckSnapshot(ctx context.Context, snap Snapshot) (bool, error) {
	missing := snap.Missing()
	if len(missing) == 0 {
		return true, nil
	}

	g.logger.Info("form submission rejected", zap.Strings("missing", missing))
	if err := g.notifier.Alert(ctx, g.message); err != nil {
		g.logger.Warn("form guard notification failed", zap.Error(err))
		return false, fmt.Errorf("guard: notify: %w", err)
	}
	return false, nil
}

// Err is the non-blocking form of the gate. It returns an error wrapping
// ErrRequiredFieldMissing for callers that display the message themselves.
func (g *Guard) Err(snap Snapshot) error {
	if snap.Valid() {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrRequiredFieldMissing, g.message)
}
