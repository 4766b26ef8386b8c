// Package notify implements the blocking user notification used by the form
// guard when a submission is rejected.
package notify

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// DefaultHelp is shown under the terminal prompt.
const DefaultHelp = "Press enter to return to the form."

// Terminal alerts through an acknowledgment prompt and blocks until the user
// dismisses it.
type Terminal struct {
	driver Acknowledger
	prefix string
	help   string
}

// TerminalOption configures a Terminal notifier.
type TerminalOption func(*Terminal)

// WithAcknowledger overrides the prompt driver.
func WithAcknowledger(driver Acknowledger) TerminalOption {
	return func(t *Terminal) {
		if driver != nil {
			t.driver = driver
		}
	}
}

// WithPrefix prepends a marker such as "!" to every message.
func WithPrefix(prefix string) TerminalOption {
	return func(t *Terminal) {
		t.prefix = prefix
	}
}

// WithHelp replaces the help line shown with the prompt.
func WithHelp(help string) TerminalOption {
	return func(t *Terminal) {
		t.help = help
	}
}

// NewTerminal constructs a Terminal notifier using survey by default.
func NewTerminal(opts ...TerminalOption) *Terminal {
	t := &Terminal{
		driver: NewSurveyAcknowledger(),
		help:   DefaultHelp,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(t)
		}
	}
	return t
}

// Alert implements guard.Notifier.
func (t *Terminal) Alert(ctx context.Context, message string) error {
	msg := PlainText(message)
	if t.prefix != "" {
		msg = t.prefix + " " + msg
	}
	return t.driver.Acknowledge(ctx, AcknowledgeConfig{Message: msg, Help: t.help})
}

// Writer prints alerts to an io.Writer without waiting for acknowledgment.
// It is meant for non-interactive runs.
type Writer struct {
	w io.Writer
}

// NewWriter returns a Writer notifier.
func NewWriter(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Alert implements guard.Notifier.
func (n *Writer) Alert(ctx context.Context, message string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(n.w, PlainText(message)); err != nil {
		return fmt.Errorf("notify: write alert: %w", err)
	}
	return nil
}

// Recorder keeps every alert it receives.
type Recorder struct {
	mu       sync.Mutex
	messages []string
}

// Alert implements guard.Notifier.
func (r *Recorder) Alert(_ context.Context, message string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.messages = append(r.messages, message)
	return nil
}

// Messages returns a copy of the recorded alerts.
func (r *Recorder) Messages() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.messages) == 0 {
		return nil
	}
	out := make([]string, len(r.messages))
	copy(out, r.messages)
	return out
}
