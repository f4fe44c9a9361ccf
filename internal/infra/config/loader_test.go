package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/aalvaropc/tally/internal/domain"
)

func writeConfig(t *testing.T, root, content string) string {
	t.Helper()
	path := filepath.Join(root, FileName)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return path
}

func TestLoadConfig_MissingFileUsesDefaults(t *testing.T) {
	cfg, err := LoadConfig(t.TempDir())
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.DataFile != "expenses.json" {
		t.Fatalf("expected default data file, got %q", cfg.DataFile)
	}
	if cfg.Currency != "$" {
		t.Fatalf("expected default currency, got %q", cfg.Currency)
	}
	if got := strings.Join(cfg.Categories.Names(), ","); got != "Food,Transportation,Entertainment,Other" {
		t.Fatalf("unexpected categories %s", got)
	}
}

func TestLoadConfig_AppliesDefaults(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "tally:\n  currency: \"€\"\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.Currency != "€" {
		t.Fatalf("expected currency €, got %q", cfg.Currency)
	}
	if cfg.DataFile != "expenses.json" {
		t.Fatalf("expected default data file, got %q", cfg.DataFile)
	}
	if cfg.Paths.LogsDir != ".tally/logs" {
		t.Fatalf("expected default logs dir, got %q", cfg.Paths.LogsDir)
	}
	if cfg.Categories.Len() != 4 {
		t.Fatalf("expected default categories, got %v", cfg.Categories.Names())
	}
}

func TestLoadConfig_CustomCategories(t *testing.T) {
	root := t.TempDir()
	writeConfig(t, root, "tally:\n  data_file: data/spend.json\n  categories: [Rent, Food]\n")

	cfg, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if cfg.DataFile != "data/spend.json" {
		t.Fatalf("unexpected data file %q", cfg.DataFile)
	}
	if got := strings.Join(cfg.Categories.Names(), ","); got != "Rent,Food" {
		t.Fatalf("unexpected categories %s", got)
	}
}

func TestLoadConfig_InvalidYAML(t *testing.T) {
	root := t.TempDir()
	path := writeConfig(t, root, "tally: [\n")

	_, err := LoadConfig(root)
	if !domain.IsKind(err, domain.KindInvalidConfig) {
		t.Fatalf("expected KindInvalidConfig, got %v", err)
	}
	if !strings.Contains(err.Error(), path) {
		t.Fatalf("expected path in error, got %v", err)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	if !domain.IsKind(err, domain.KindNotFound) {
		t.Fatalf("expected KindNotFound, got %v", err)
	}
}

func TestMarshal_RoundTrip(t *testing.T) {
	root := t.TempDir()
	cfg := domain.DefaultConfig()
	cfg.Currency = "£"

	b, err := Marshal(cfg)
	if err != nil {
		t.Fatalf("Marshal error: %v", err)
	}
	writeConfig(t, root, string(b))

	got, err := LoadConfig(root)
	if err != nil {
		t.Fatalf("LoadConfig error: %v", err)
	}
	if got.Currency != "£" {
		t.Fatalf("expected currency £, got %q", got.Currency)
	}
	if strings.Join(got.Categories.Names(), ",") != strings.Join(cfg.Categories.Names(), ",") {
		t.Fatalf("categories changed on round trip: %v", got.Categories.Names())
	}
}
