package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/goliatone/go-formguard/pkg/document"
	"github.com/goliatone/go-formguard/pkg/guard"
)

func newCheckCmd(a *app) *cobra.Command {
	var (
		sets     []string
		noPrompt bool
	)

	cmd := &cobra.Command{
		Use:   "check PAGE",
		Short: "Run the guard against the form controls of an HTML page",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			doc, err := loadPage(args[0])
			if err != nil {
				return err
			}
			if err := applySets(doc, sets); err != nil {
				return err
			}

			interactive := cfg.Interactive && !noPrompt
			g := guard.New(cfg.GuardOptions(
				guard.WithNotifier(a.notifier(interactive)),
				guard.WithLogger(a.logger.Named("guard")),
			)...)

			a.logger.Debug("checking page", zap.String("page", args[0]), zap.Int("entries", len(sets)))
			return a.run(cmd.Context(), g, doc)
		},
	}

	cmd.Flags().StringArrayVar(&sets, "set", nil, "enter a value as field=value (name, email, rating)")
	cmd.Flags().BoolVar(&noPrompt, "no-prompt", false, "print the alert instead of waiting for acknowledgment")
	return cmd
}

func loadPage(path string) (*document.HTML, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open page: %w", err)
	}
	defer f.Close()
	return document.Parse(f)
}

func applySets(doc *document.HTML, sets []string) error {
	for _, entry := range sets {
		field, value, ok := strings.Cut(entry, "=")
		if !ok {
			return fmt.Errorf("invalid --set %q: expected field=value", entry)
		}
		control, ok := controlFor(strings.TrimSpace(field))
		if !ok {
			return fmt.Errorf("invalid --set %q: unknown field %q", entry, field)
		}
		if err := doc.Set(control.Kind, control.Name, value); err != nil {
			return err
		}
	}
	return nil
}

func controlFor(field string) (guard.Control, bool) {
	for _, control := range guard.Controls {
		if control.Name == field {
			return control, true
		}
	}
	return guard.Control{}, false
}
