package config

import (
	"testing"
)

func TestExpandEnv(t *testing.T) {
	t.Setenv("TEST_CAIRO_VAR", "test_value")
	t.Setenv("TEST_CAIRO_DIR", "/home/user/art")

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "no variables",
			input:    "plain text without variables",
			expected: "plain text without variables",
		},
		{
			name:     "simple ${VAR} format",
			input:    "prefix ${TEST_CAIRO_VAR} suffix",
			expected: "prefix test_value suffix",
		},
		{
			name:     "simple $VAR format",
			input:    "prefix $TEST_CAIRO_VAR suffix",
			expected: "prefix test_value suffix",
		},
		{
			name:     "unset variable becomes empty",
			input:    "prefix ${UNSET_VAR_12345} suffix",
			expected: "prefix  suffix",
		},
		{
			name:     "unset variable with default",
			input:    "${UNSET_VAR_12345:-out.png}",
			expected: "out.png",
		},
		{
			name:     "set variable ignores default",
			input:    "${TEST_CAIRO_DIR:-/tmp}/clock.lua",
			expected: "/home/user/art/clock.lua",
		},
		{
			name:     "empty default",
			input:    "${UNSET_VAR_12345:-}",
			expected: "",
		},
		{
			name:     "multiple variables",
			input:    "$TEST_CAIRO_DIR/${TEST_CAIRO_VAR}.pdf",
			expected: "/home/user/art/test_value.pdf",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ExpandEnv(tt.input); got != tt.expected {
				t.Errorf("ExpandEnv(%q) = %q, want %q", tt.input, got, tt.expected)
			}
		})
	}
}

func TestExpandEnvConfig(t *testing.T) {
	t.Setenv("TEST_CAIRO_DIR", "/srv")
	t.Setenv("TEST_CAIRO_AUTHOR", "Ada")

	cfg := DefaultConfig()
	cfg.Script = "${TEST_CAIRO_DIR}/draw.lua"
	cfg.Output = "${OUT_UNSET_12345:-out.pdf}"
	cfg.Background = "${BG_UNSET_12345:-black}"
	cfg.Document.Author = "$TEST_CAIRO_AUTHOR"

	ExpandEnvConfig(&cfg)

	if cfg.Script != "/srv/draw.lua" {
		t.Errorf("Script = %q", cfg.Script)
	}
	if cfg.Output != "out.pdf" {
		t.Errorf("Output = %q", cfg.Output)
	}
	if cfg.Background != "black" {
		t.Errorf("Background = %q", cfg.Background)
	}
	if cfg.Document.Author != "Ada" {
		t.Errorf("Document.Author = %q", cfg.Document.Author)
	}

	// nil is a no-op
	ExpandEnvConfig(nil)
}

func TestExpandEnvConfigWithOptions(t *testing.T) {
	t.Setenv("TEST_CAIRO_DIR", "/srv")

	cfg := DefaultConfig()
	cfg.Script = "$TEST_CAIRO_DIR/draw.lua"
	cfg.Document.Title = "$TEST_CAIRO_DIR"

	ExpandEnvConfigWithOptions(&cfg, WithExpandPaths(false), WithExpandDocument(true))

	if cfg.Script != "$TEST_CAIRO_DIR/draw.lua" {
		t.Errorf("expected Script untouched, got %q", cfg.Script)
	}
	if cfg.Document.Title != "/srv" {
		t.Errorf("expected Title expanded, got %q", cfg.Document.Title)
	}
}
