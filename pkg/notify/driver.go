package notify

import (
	"context"
	"errors"

	"github.com/AlecAivazis/survey/v2"
	"github.com/AlecAivazis/survey/v2/terminal"
)

// AcknowledgeConfig configures a blocking acknowledgment prompt.
type AcknowledgeConfig struct {
	Message string
	Help    string
}

// Acknowledger abstracts the terminal implementation so notifiers can be
// tested without a real terminal.
type Acknowledger interface {
	Acknowledge(ctx context.Context, cfg AcknowledgeConfig) error
}

// Asker collects field values from the user.
type Asker interface {
	Input(ctx context.Context, message string) (string, error)
	Select(ctx context.Context, message string, options []string) (string, error)
}

type surveyDriver struct {
	opts []survey.AskOpt
}

// NewSurveyAcknowledger returns an Acknowledger backed by survey. The prompt
// waits for enter; any typed text is discarded.
func NewSurveyAcknowledger(opts ...survey.AskOpt) Acknowledger {
	return &surveyDriver{opts: opts}
}

// NewSurveyAsker returns an Asker backed by survey.
func NewSurveyAsker(opts ...survey.AskOpt) Asker {
	return &surveyDriver{opts: opts}
}

func (d *surveyDriver) Acknowledge(ctx context.Context, cfg AcknowledgeConfig) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	var discard string
	prompt := &survey.Input{
		Message: cfg.Message,
		Help:    cfg.Help,
	}
	if err := survey.AskOne(prompt, &discard, d.opts...); err != nil {
		return translateSurveyErr(err)
	}
	return nil
}

func (d *surveyDriver) Input(ctx context.Context, message string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	if err := survey.AskOne(&survey.Input{Message: message}, &out, d.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func (d *surveyDriver) Select(ctx context.Context, message string, options []string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	var out string
	prompt := &survey.Select{Message: message, Options: options}
	if err := survey.AskOne(prompt, &out, d.opts...); err != nil {
		return "", translateSurveyErr(err)
	}
	return out, nil
}

func translateSurveyErr(err error) error {
	if errors.Is(err, terminal.InterruptErr) {
		return ErrAborted
	}
	return err
}
