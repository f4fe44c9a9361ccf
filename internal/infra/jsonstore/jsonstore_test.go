package jsonstore

import (
	"encoding/json"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/aalvaropc/tally/internal/domain"
)

func newStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	tmp := t.TempDir()
	return NewJSONStore(tmp, domain.DefaultConfig()), tmp
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	store, _ := newStore(t)

	got, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	store, tmp := newStore(t)

	in := []domain.Expense{
		{Amount: 100, Description: "groceries", Category: "Food", Date: "2026-02-03"},
		{Amount: 12.34, Description: "bus pass", Category: "Transportation", Date: "2026-02-04"},
		{Amount: 0.5, Description: "", Category: "Other", Date: "2026-03-01"},
	}
	if err := store.Save(in); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	if store.Path() != filepath.Join(tmp, "expenses.json") {
		t.Fatalf("unexpected path %s", store.Path())
	}
	if _, err := os.Stat(store.Path() + ".tmp"); !os.IsNotExist(err) {
		t.Fatalf("expected tmp file to be renamed away, stat err=%v", err)
	}

	out, err := store.Load()
	if err != nil {
		t.Fatalf("Load error: %v", err)
	}
	if !reflect.DeepEqual(in, out) {
		t.Fatalf("round trip mismatch:\nin=%#v\nout=%#v", in, out)
	}

	again, err := store.Load()
	if err != nil {
		t.Fatalf("second Load error: %v", err)
	}
	if !reflect.DeepEqual(out, again) {
		t.Fatalf("expected identical state across loads")
	}
}

func TestSave_WritesPlainIndentedArray(t *testing.T) {
	store, _ := newStore(t)

	if err := store.Save([]domain.Expense{
		{Amount: 25, Description: "cinema", Category: "Entertainment", Date: "2026-02-03"},
	}); err != nil {
		t.Fatalf("Save error: %v", err)
	}

	b, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}

	var decoded []map[string]any
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if len(decoded) != 1 {
		t.Fatalf("expected 1 record, got %d", len(decoded))
	}
	keys := make([]string, 0, len(decoded[0]))
	for k := range decoded[0] {
		keys = append(keys, k)
	}
	if len(keys) != 4 {
		t.Fatalf("expected exactly 4 fields, got %v", keys)
	}
	if decoded[0]["amount"] != 25.0 || decoded[0]["date"] != "2026-02-03" {
		t.Fatalf("unexpected record %v", decoded[0])
	}
	if b[0] != '[' || b[1] != '\n' || b[2] != ' ' || b[3] != ' ' {
		t.Fatalf("expected indented JSON array, got %q", string(b[:4]))
	}
}

func TestSave_EmptyWritesEmptyArray(t *testing.T) {
	store, _ := newStore(t)

	if err := store.Save(nil); err != nil {
		t.Fatalf("Save error: %v", err)
	}
	b, err := os.ReadFile(store.Path())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	if string(b) != "[]" {
		t.Fatalf("expected [], got %q", string(b))
	}
}

func TestLoad_MissingFieldIsInvalidData(t *testing.T) {
	store, _ := newStore(t)

	content := `[{"amount": 10, "description": "x", "category": "Food"}]`
	if err := os.WriteFile(store.Path(), []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := store.Load()
	if err == nil {
		t.Fatalf("expected error")
	}
	if !domain.IsKind(err, domain.KindInvalidData) {
		t.Fatalf("expected KindInvalidData, got %v", err)
	}
	if want := "record[0]: field date is required"; !strings.Contains(err.Error(), want) {
		t.Fatalf("expected %q in error, got %v", want, err)
	}
}

func TestLoad_MalformedJSON(t *testing.T) {
	store, _ := newStore(t)

	if err := os.WriteFile(store.Path(), []byte("{not json"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	_, err := store.Load()
	if !domain.IsKind(err, domain.KindInvalidData) {
		t.Fatalf("expected KindInvalidData, got %v", err)
	}
}

func TestSave_UnwritableDirIsExecutionError(t *testing.T) {
	tmp := t.TempDir()
	blocker := filepath.Join(tmp, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg := domain.DefaultConfig()
	cfg.DataFile = filepath.Join(blocker, "expenses.json")
	store := NewJSONStore(tmp, cfg)

	err := store.Save([]domain.Expense{{Amount: 1, Category: "Food", Date: "2026-01-01"}})
	if !domain.IsKind(err, domain.KindExecution) {
		t.Fatalf("expected KindExecution, got %v", err)
	}
}

func TestNewJSONStore_AbsoluteDataFile(t *testing.T) {
	abs := filepath.Join(t.TempDir(), "data", "spend.json")
	cfg := domain.DefaultConfig()
	cfg.DataFile = abs

	store := NewJSONStore("/somewhere/else", cfg)
	if store.Path() != abs {
		t.Fatalf("expected %s, got %s", abs, store.Path())
	}
	if err := store.Save(nil); err != nil {
		t.Fatalf("expected parent dir to be created, got %v", err)
	}
}
