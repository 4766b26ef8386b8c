package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-formguard/pkg/guard"
)

func TestParse(t *testing.T) {
	cases := []struct {
		name string
		yaml string
		want Config
	}{
		{name: "empty", yaml: "", want: Default()},
		{
			name: "overrides",
			yaml: "message: '  Fill it in  '\nmissing_controls: EMPTY\ninteractive: false\nratings: [bad, ok, good]\n",
			want: Config{
				Message:         "Fill it in",
				MissingControls: guard.MissingControlAsEmpty,
				Interactive:     false,
				Ratings:         []string{"bad", "ok", "good"},
			},
		},
		{
			name: "blank message keeps default",
			yaml: "message: ''\n",
			want: Default(),
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Parse([]byte(tc.yaml))
			if err != nil {
				t.Fatalf("parse: %v", err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_Invalid(t *testing.T) {
	cases := map[string]string{
		"policy":       "missing_controls: ignore\n",
		"empty rating": "ratings: ['1', '']\n",
		"dup rating":   "ratings: ['1', '1']\n",
		"no ratings":   "ratings: []\n",
	}
	for name, raw := range cases {
		t.Run(name, func(t *testing.T) {
			if _, err := Parse([]byte(raw)); !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
		})
	}

	if _, err := Parse([]byte("unknown: true\n")); err == nil {
		t.Fatalf("expected unknown key to fail")
	}
}

func TestLoad(t *testing.T) {
	cfg, err := Load("")
	if err != nil {
		t.Fatalf("load default: %v", err)
	}
	if diff := cmp.Diff(Default(), cfg); diff != "" {
		t.Fatalf("default mismatch (-want +got):\n%s", diff)
	}

	path := filepath.Join(t.TempDir(), "formguard.yaml")
	if err := os.WriteFile(path, []byte("message: Required\n"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err = Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Message != "Required" {
		t.Fatalf("message = %q", cfg.Message)
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestGuardOptions(t *testing.T) {
	cfg := Default()
	cfg.Message = "Custom"
	g := guard.New(cfg.GuardOptions()...)
	if g.Message() != "Custom" {
		t.Fatalf("message = %q", g.Message())
	}
}
