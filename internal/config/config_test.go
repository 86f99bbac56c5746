package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 || cfg.App.Height != 0 {
		t.Fatalf("expected zero viewport, got %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ProfilePath != "" {
		t.Fatalf("expected empty profile path, got %q", cfg.App.ProfilePath)
	}
	if cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("expected footer and trace disabled by default")
	}
	if cfg.Logging.FilePath != "" {
		t.Fatalf("expected empty log file, got %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsReadsEnvironment(t *testing.T) {
	environ := []string{
		"DESKFOLIO_WIDTH=120",
		"DESKFOLIO_HEIGHT=40",
		"DESKFOLIO_PROFILE=me.yaml",
		"DESKFOLIO_FOOTER=true",
		"DESKFOLIO_TRACE=1",
		"DESKFOLIO_LOG_FILE=out.log",
	}
	cfg, err := LoadArgs(nil, environ)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 120 || cfg.App.Height != 40 {
		t.Fatalf("env viewport not applied: %dx%d", cfg.App.Width, cfg.App.Height)
	}
	if cfg.App.ProfilePath != "me.yaml" {
		t.Fatalf("env profile not applied: %q", cfg.App.ProfilePath)
	}
	if !cfg.App.ShowFooter || !cfg.Logging.Trace {
		t.Fatalf("env booleans not applied")
	}
	if cfg.Logging.FilePath != "out.log" {
		t.Fatalf("env log file not applied: %q", cfg.Logging.FilePath)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	cfg, err := LoadArgs([]string{"--width", "80", "--footer=false"}, []string{
		"DESKFOLIO_WIDTH=120",
		"DESKFOLIO_FOOTER=true",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 80 {
		t.Fatalf("expected flag width 80, got %d", cfg.App.Width)
	}
	if cfg.App.ShowFooter {
		t.Fatalf("expected flag to disable the footer")
	}
}

func TestLoadArgsRejectsNegativeViewport(t *testing.T) {
	if _, err := LoadArgs([]string{"--width", "-1"}, nil); err == nil {
		t.Fatalf("expected error for negative width")
	}
	if _, err := LoadArgs([]string{"--height", "-5"}, nil); err == nil {
		t.Fatalf("expected error for negative height")
	}
}

func TestLoadArgsRejectsUnknownFlag(t *testing.T) {
	if _, err := LoadArgs([]string{"--bogus"}, nil); err == nil {
		t.Fatalf("expected error for unknown flag")
	}
}

func TestLoadArgsIgnoresMalformedEnv(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"DESKFOLIO_WIDTH=not-a-number", "JUNK", ""})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.App.Width != 0 {
		t.Fatalf("expected malformed width ignored, got %d", cfg.App.Width)
	}
}

func TestFlagsMapEchoesValues(t *testing.T) {
	cfg, err := LoadArgs([]string{"--trace", "--log-file", "trace.log"}, nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Flags["trace"] != "true" {
		t.Fatalf("expected trace flag echoed, got %q", cfg.Flags["trace"])
	}
	if cfg.Flags["logFile"] != "trace.log" {
		t.Fatalf("expected log file echoed, got %q", cfg.Flags["logFile"])
	}
	if len(cfg.Args) != 3 {
		t.Fatalf("expected argv preserved, got %v", cfg.Args)
	}
}

func TestValidateProfilePath(t *testing.T) {
	if err := Validate(Config{}); err != nil {
		t.Fatalf("empty profile path must validate: %v", err)
	}

	missing := Config{}
	missing.App.ProfilePath = filepath.Join(t.TempDir(), "absent.yaml")
	if err := Validate(missing); err == nil {
		t.Fatalf("expected error for missing profile file")
	}

	path := filepath.Join(t.TempDir(), "profile.yaml")
	if err := os.WriteFile(path, []byte("owner:\n  name: Test\n"), 0o644); err != nil {
		t.Fatalf("write profile: %v", err)
	}
	present := Config{}
	present.App.ProfilePath = path
	if err := Validate(present); err != nil {
		t.Fatalf("expected existing profile to validate: %v", err)
	}
}
