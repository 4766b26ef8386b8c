package notify

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formguard/pkg/guard"
)

type stubAcknowledger struct {
	prompts []AcknowledgeConfig
	err     error
}

func (s *stubAcknowledger) Acknowledge(_ context.Context, cfg AcknowledgeConfig) error {
	s.prompts = append(s.prompts, cfg)
	return s.err
}

var (
	_ guard.Notifier = (*Terminal)(nil)
	_ guard.Notifier = (*Writer)(nil)
	_ guard.Notifier = (*Recorder)(nil)
)

func TestTerminalAlert(t *testing.T) {
	driver := &stubAcknowledger{}
	n := NewTerminal(WithAcknowledger(driver), WithPrefix("!"))

	if err := n.Alert(context.Background(), "<b>Please</b> fill all required fields."); err != nil {
		t.Fatalf("alert: %v", err)
	}

	want := []AcknowledgeConfig{{Message: "! Please fill all required fields.", Help: DefaultHelp}}
	if diff := cmp.Diff(want, driver.prompts); diff != "" {
		t.Fatalf("prompts mismatch (-want +got):\n%s", diff)
	}
}

func TestTerminalAlert_Aborted(t *testing.T) {
	n := NewTerminal(WithAcknowledger(&stubAcknowledger{err: ErrAborted}), WithHelp(""))
	if err := n.Alert(context.Background(), "x"); !errors.Is(err, ErrAborted) {
		t.Fatalf("expected ErrAborted, got %v", err)
	}
}

func TestWriterAlert(t *testing.T) {
	var buf bytes.Buffer
	n := NewWriter(&buf)

	if err := n.Alert(context.Background(), "Fields <i>name</i> &amp; email"); err != nil {
		t.Fatalf("alert: %v", err)
	}
	if got, want := buf.String(), "Fields name & email\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := n.Alert(ctx, "late"); !errors.Is(err, context.Canceled) {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

func TestRecorderWithGuard(t *testing.T) {
	rec := &Recorder{}
	g := guard.New(guard.WithNotifier(rec))

	if _, err := g.CheckSnapshot(context.Background(), guard.Snapshot{Email: "a@b.com", Rating: "5"}); err != nil {
		t.Fatalf("check: %v", err)
	}
	if _, err := g.CheckSnapshot(context.Background(), guard.Snapshot{Name: "Ann", Email: "a@b.com", Rating: "5"}); err != nil {
		t.Fatalf("check: %v", err)
	}
	if diff := cmp.Diff([]string{guard.DefaultMessage}, rec.Messages()); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestPlainText(t *testing.T) {
	cases := map[string]string{
		"":                                 "",
		"   ":                              "",
		"Please fill all required fields.": "Please fill all required fields.",
		"<script>alert(1)</script>Fill in": "Fill in",
		"line\n  break":                    "line break",
		"It's <em>required</em>":           "It's required",
	}
	for in, want := range cases {
		if got := PlainText(in); got != want {
			t.Errorf("PlainText(%q) = %q, want %q", in, got, want)
		}
	}
}
