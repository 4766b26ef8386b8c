package main

import (
	"context"
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/goliatone/go-formguard/internal/config"
	"github.com/goliatone/go-formguard/pkg/guard"
	"github.com/goliatone/go-formguard/pkg/notify"
)

// errRejected is returned by commands when the guard blocks the submission.
// main maps it to a non-zero exit status without printing it.
var errRejected = errors.New("submission rejected")

// app carries the collaborators commands depend on so tests can swap them.
type app struct {
	stdout       io.Writer
	asker        notify.Asker
	acknowledger notify.Acknowledger
	logger       *zap.Logger

	configPath string
	verbose    bool
}

func newApp() *app {
	return &app{
		stdout:       os.Stdout,
		asker:        notify.NewSurveyAsker(),
		acknowledger: notify.NewSurveyAcknowledger(),
	}
}

func newRootCmd(a *app) *cobra.Command {
	root := &cobra.Command{
		Use:           "formguard",
		Short:         "Check that a feedback form has a name, email, and rating before submitting",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if a.logger != nil {
				return nil
			}
			logger, err := buildLogger(a.verbose)
			if err != nil {
				return err
			}
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(*cobra.Command, []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.SetOut(a.stdout)

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "YAML configuration file")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable development logging")

	root.AddCommand(newCheckCmd(a), newPromptCmd(a))
	return root
}

func buildLogger(verbose bool) (*zap.Logger, error) {
	if verbose {
		return zap.NewDevelopment()
	}
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
	return cfg.Build()
}

// notifier picks how rejections are shown: a blocking acknowledgment prompt
// when interactive, a plain line otherwise.
func (a *app) notifier(interactive bool) guard.Notifier {
	if interactive {
		return notify.NewTerminal(notify.WithAcknowledger(a.acknowledger), notify.WithPrefix("!"))
	}
	return notify.NewWriter(a.stdout)
}

func (a *app) loadConfig() (config.Config, error) {
	cfg, err := config.Load(a.configPath)
	if err != nil {
		return config.Config{}, err
	}
	a.logger.Debug("configuration loaded", zap.String("path", a.configPath), zap.String("missing_controls", string(cfg.MissingControls)))
	return cfg, nil
}

// run executes the guard and converts a rejection into errRejected.
func (a *app) run(ctx context.Context, g *guard.Guard, doc guard.Document) error {
	ok, err := g.Check(ctx, doc)
	if err != nil {
		return err
	}
	if !ok {
		return errRejected
	}
	_, err = io.WriteString(a.stdout, "ok: submission allowed\n")
	return err
}
