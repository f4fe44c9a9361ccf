package logger

import (
	"bufio"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
)

func TestSetup_WritesJSONLinesAndCleansUp(t *testing.T) {
	tmp := t.TempDir()

	cleanup, err := Setup(Config{Root: tmp, Debug: true})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	if err := IsReady(); err != nil {
		t.Fatalf("expected ready logger: %v", err)
	}

	want := filepath.Join(tmp, ".tally", "logs", "tally.log")
	if Path() != want {
		t.Fatalf("expected path %s, got %s", want, Path())
	}
	if InitTime().IsZero() {
		t.Fatalf("expected init time to be set")
	}

	L().Debug("store.add.ok", "category", "Food")

	if err := cleanup(); err != nil {
		t.Fatalf("cleanup error: %v", err)
	}
	if IsReady() == nil {
		t.Fatalf("expected logger to be reset after cleanup")
	}

	f, err := os.Open(want)
	if err != nil {
		t.Fatalf("open log: %v", err)
	}
	defer f.Close()

	var msgs []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		var line map[string]any
		if err := json.Unmarshal(sc.Bytes(), &line); err != nil {
			t.Fatalf("log line is not JSON: %q", sc.Text())
		}
		msgs = append(msgs, line["msg"].(string))
	}
	if len(msgs) != 2 || msgs[0] != "logger.initialized" || msgs[1] != "store.add.ok" {
		t.Fatalf("unexpected log messages %v", msgs)
	}
}

func TestSetup_CustomDir(t *testing.T) {
	tmp := t.TempDir()
	dir := filepath.Join(tmp, "elsewhere")

	cleanup, err := Setup(Config{Root: tmp, Dir: dir})
	if err != nil {
		t.Fatalf("Setup error: %v", err)
	}
	defer func() { _ = cleanup() }()

	if Path() != filepath.Join(dir, "tally.log") {
		t.Fatalf("unexpected path %s", Path())
	}
}
