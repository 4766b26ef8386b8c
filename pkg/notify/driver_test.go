package notify

import (
	"context"
	"errors"
	"fmt"
	"io"
	"testing"

	"github.com/AlecAivazis/survey/v2/terminal"
)

func TestTranslateSurveyErr(t *testing.T) {
	cases := []struct {
		name string
		in   error
		want error
	}{
		{name: "interrupt", in: terminal.InterruptErr, want: ErrAborted},
		{name: "wrapped interrupt", in: fmt.Errorf("ask: %w", terminal.InterruptErr), want: ErrAborted},
		{name: "eof passes through", in: io.EOF, want: io.EOF},
		{name: "nil", in: nil, want: nil},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := translateSurveyErr(tc.in)
			if !errors.Is(got, tc.want) {
				t.Fatalf("translateSurveyErr(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestSurveyDriverCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := NewSurveyAcknowledger().Acknowledge(ctx, AcknowledgeConfig{Message: "x"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("acknowledge: expected context.Canceled, got %v", err)
	}
	asker := NewSurveyAsker()
	if _, err := asker.Input(ctx, "Name"); !errors.Is(err, context.Canceled) {
		t.Fatalf("input: expected context.Canceled, got %v", err)
	}
	if _, err := asker.Select(ctx, "Rating", []string{"1"}); !errors.Is(err, context.Canceled) {
		t.Fatalf("select: expected context.Canceled, got %v", err)
	}
}
