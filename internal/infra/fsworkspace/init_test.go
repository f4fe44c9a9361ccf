package fsworkspace

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/aalvaropc/tally/internal/infra/config"
)

func TestInit_WritesDefaultConfig(t *testing.T) {
	tmp := t.TempDir()

	if err := NewInitializer().Init(tmp, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}

	for _, p := range []string{
		filepath.Join(tmp, "tally.yaml"),
		filepath.Join(tmp, ".gitignore"),
		filepath.Join(tmp, ".tally", "logs"),
	} {
		if _, err := os.Stat(p); err != nil {
			t.Fatalf("expected %s to exist: %v", p, err)
		}
	}

	cfg, err := config.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("generated config does not load: %v", err)
	}
	if cfg.Categories.Len() != 4 {
		t.Fatalf("expected default categories, got %v", cfg.Categories.Names())
	}
}

func TestInit_KeepsExistingConfigUnlessForced(t *testing.T) {
	tmp := t.TempDir()
	path := filepath.Join(tmp, "tally.yaml")
	custom := "tally:\n  currency: \"€\"\n"
	if err := os.WriteFile(path, []byte(custom), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	if err := NewInitializer().Init(tmp, false); err != nil {
		t.Fatalf("Init error: %v", err)
	}
	b, _ := os.ReadFile(path)
	if string(b) != custom {
		t.Fatalf("expected config untouched, got:\n%s", b)
	}

	if err := NewInitializer().Init(tmp, true); err != nil {
		t.Fatalf("Init(force) error: %v", err)
	}
	cfg, err := config.LoadConfig(tmp)
	if err != nil {
		t.Fatalf("LoadConfig: %v", err)
	}
	if cfg.Currency != "$" {
		t.Fatalf("expected forced init to reset currency, got %q", cfg.Currency)
	}
}
