package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/goliatone/go-formguard/pkg/document"
	"github.com/goliatone/go-formguard/pkg/guard"
	"github.com/goliatone/go-formguard/pkg/notify"
)

// noRating labels the empty choice of the rating select.
const noRating = "(none)"

func newPromptCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "prompt",
		Short: "Fill in the feedback form in the terminal and run the guard",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := a.loadConfig()
			if err != nil {
				return err
			}

			doc, err := collect(cmd.Context(), a.asker, cfg.Ratings)
			if err != nil {
				return err
			}

			g := guard.New(cfg.GuardOptions(
				guard.WithNotifier(a.notifier(cfg.Interactive)),
				guard.WithLogger(a.logger.Named("guard")),
			)...)
			return a.run(cmd.Context(), g, doc)
		},
	}
}

func collect(ctx context.Context, asker notify.Asker, ratings []string) (document.Values, error) {
	name, err := asker.Input(ctx, "Name")
	if err != nil {
		return nil, err
	}
	email, err := asker.Input(ctx, "Email")
	if err != nil {
		return nil, err
	}

	options := append([]string{noRating}, ratings...)
	rating, err := asker.Select(ctx, "Rating", options)
	if err != nil {
		return nil, err
	}
	if rating == noRating {
		rating = ""
	}
	return document.FeedbackValues(name, email, rating), nil
}
