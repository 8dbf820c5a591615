package config

import (
	"strings"
	"testing"
)

func TestLoadArgsDefaults(t *testing.T) {
	cfg, err := LoadArgs(nil, nil)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if !cfg.App.RTL {
		t.Fatalf("expected right-to-left by default")
	}
	if cfg.App.Haptics || cfg.App.ShowFooter || cfg.Logging.Trace {
		t.Fatalf("expected optional features off, got %+v", cfg)
	}
	if cfg.App.MenuPath != "" || cfg.App.PrefsPath != "" {
		t.Fatalf("expected empty paths, got %+v", cfg.App)
	}
}

func TestLoadArgsFlagsOverrideEnvironment(t *testing.T) {
	env := []string{
		"ATYAB_MENU_WIDTH=100",
		"ATYAB_MENU_RTL=false",
		"ATYAB_MENU_PREFS=/tmp/env.yaml",
		"ATYAB_MENU_HAPTICS=1",
	}
	cfg, err := LoadArgs([]string{"--width", "72", "--prefs", "/tmp/prefs.db", "--trace"}, env)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Width != 72 {
		t.Fatalf("expected flag width 72, got %d", cfg.App.Width)
	}
	if cfg.App.RTL {
		t.Fatalf("expected environment to disable rtl")
	}
	if !cfg.App.Haptics {
		t.Fatalf("expected environment to enable haptics")
	}
	if cfg.App.PrefsPath != "/tmp/prefs.db" {
		t.Fatalf("expected flag prefs path, got %q", cfg.App.PrefsPath)
	}
	if !cfg.Logging.Trace || cfg.Flags["trace"] != "true" {
		t.Fatalf("expected trace on, got %+v", cfg.Logging)
	}
	if cfg.Flags["width"] != "72" || cfg.Flags["rtl"] != "false" {
		t.Fatalf("unexpected flag snapshot %v", cfg.Flags)
	}
}

func TestLoadArgsIgnoresMalformedEnvironment(t *testing.T) {
	cfg, err := LoadArgs(nil, []string{"ATYAB_MENU_HEIGHT=tall", "ATYAB_MENU_FOOTER=maybe", "junk", "=x"})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.App.Height != 0 || cfg.App.ShowFooter {
		t.Fatalf("expected fallbacks, got %+v", cfg.App)
	}
}

func TestLoadArgsRejectsBadSizes(t *testing.T) {
	cases := [][]string{
		{"--width", "-1"},
		{"--height", "-3"},
		{"--width", "10"},
		{"--height", "3"},
	}
	for _, args := range cases {
		if _, err := LoadArgs(args, nil); err == nil {
			t.Fatalf("expected %v to be rejected", args)
		}
	}
}

func TestLoadArgsUnknownFlag(t *testing.T) {
	_, err := LoadArgs([]string{"--socket", "x"}, nil)
	if err == nil || !strings.Contains(err.Error(), "socket") {
		t.Fatalf("expected unknown flag error, got %v", err)
	}
}
