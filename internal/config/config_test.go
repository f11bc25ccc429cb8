package config

import (
	"path/filepath"
	"testing"

	"github.com/BurntSushi/toml"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Defaults.Principal != 1000000 {
		t.Fatalf("default principal = %v, want 1000000", cfg.Defaults.Principal)
	}
	if cfg.Defaults.AnnualReturn != 0.05 {
		t.Fatalf("default annual return = %v, want 0.05", cfg.Defaults.AnnualReturn)
	}
	if cfg.Defaults.MonthlyExpense != 7000 {
		t.Fatalf("default monthly expense = %v, want 7000", cfg.Defaults.MonthlyExpense)
	}
	if cfg.Appearance.Theme != "flexoki-dark" {
		t.Fatalf("default theme = %q, want flexoki-dark", cfg.Appearance.Theme)
	}
	if cfg.History.Disabled {
		t.Fatal("history should be enabled by default")
	}
}

func TestUnmarshalOverridesDefaults(t *testing.T) {
	raw := `
[defaults]
principal = 250000.0
annual_return = 0.07

[appearance]
no_color = true
`
	cfg := DefaultConfig()
	if err := toml.Unmarshal([]byte(raw), &cfg); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}

	if cfg.Defaults.Principal != 250000 {
		t.Fatalf("principal = %v, want 250000", cfg.Defaults.Principal)
	}
	if cfg.Defaults.AnnualReturn != 0.07 {
		t.Fatalf("annual return = %v, want 0.07", cfg.Defaults.AnnualReturn)
	}
	// Omitted keys keep their defaults.
	if cfg.Defaults.MonthlyExpense != 7000 {
		t.Fatalf("monthly expense = %v, want default 7000", cfg.Defaults.MonthlyExpense)
	}
	if !cfg.Appearance.NoColor {
		t.Fatal("no_color override lost")
	}
}

func TestHistoryPathPrefersConfigured(t *testing.T) {
	cfg := DefaultConfig()
	cfg.History.Path = filepath.Join("/tmp", "custom.db")

	if got := HistoryPath(cfg); got != cfg.History.Path {
		t.Fatalf("HistoryPath = %q, want %q", got, cfg.History.Path)
	}
}

func TestHistoryPathUsesXDGDataHome(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("XDG_DATA_HOME", dir)

	want := filepath.Join(dir, "lifeline", "history.db")
	if got := HistoryPath(DefaultConfig()); got != want {
		t.Fatalf("HistoryPath = %q, want %q", got, want)
	}
}
