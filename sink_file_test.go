package lantern_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"lantern"
)

func TestFileSinkWritesLines(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	sink, err := lantern.NewFileSink(path, 0, 0)
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}

	if err := sink.WriteLine(lantern.LevelInfo, "first"); err != nil {
		t.Fatalf("WriteLine returned error: %v", err)
	}
	if err := sink.WriteLine(lantern.LevelInfo, "second"); err != nil {
		t.Fatalf("WriteLine returned error: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read log file: %v", err)
	}
	if string(content) != "first\nsecond\n" {
		t.Fatalf("unexpected content: %q", content)
	}
}

func TestFileSinkCreatesDirectory(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "app.log")
	sink, err := lantern.NewFileSink(path, 0, 0)
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}
	defer sink.Close() //nolint:errcheck

	if err := sink.WriteLine(lantern.LevelInfo, "line"); err != nil {
		t.Fatalf("WriteLine returned error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("log file missing: %v", err)
	}
}

func TestFileSinkRotates(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	sink, err := lantern.NewFileSink(path, 64, 2)
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}

	line := strings.Repeat("x", 30)
	for i := 0; i < 10; i++ {
		if err := sink.WriteLine(lantern.LevelInfo, line); err != nil {
			t.Fatalf("WriteLine %d returned error: %v", i, err)
		}
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("live file missing after rotation: %v", err)
	}
	if _, err := os.Stat(path + ".1"); err != nil {
		t.Fatalf("first backup missing: %v", err)
	}
	if _, err := os.Stat(path + ".3"); err == nil {
		t.Fatal("rotation exceeded the backup limit")
	}

	// Rotation must never lose the most recent line.
	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read live file: %v", err)
	}
	if !strings.Contains(string(content), line) {
		t.Fatalf("live file missing latest line: %q", content)
	}
}

func TestFileSinkRecoversFromFailedRotation(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "app.log")
	sink, err := lantern.NewFileSink(path, 64, 1)
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}

	line := strings.Repeat("x", 30)
	for i := 0; i < 2; i++ {
		if err := sink.WriteLine(lantern.LevelInfo, line); err != nil {
			t.Fatalf("WriteLine %d returned error: %v", i, err)
		}
	}

	// A non-empty directory occupying the backup slot makes rotation fail.
	block := path + ".1"
	if err := os.Mkdir(block, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(filepath.Join(block, "pin"), []byte("x"), 0o644); err != nil {
		t.Fatalf("pin backup slot: %v", err)
	}

	if err := sink.WriteLine(lantern.LevelInfo, line); err == nil {
		t.Fatal("expected rotation failure with the backup slot blocked")
	}

	if err := os.RemoveAll(block); err != nil {
		t.Fatalf("unblock backup slot: %v", err)
	}
	if err := sink.WriteLine(lantern.LevelInfo, line); err != nil {
		t.Fatalf("sink did not recover after a failed rotation: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
}

func TestFileSinkWriteAfterClose(t *testing.T) {
	path := filepath.Join(t.TempDir(), "app.log")
	sink, err := lantern.NewFileSink(path, 0, 0)
	if err != nil {
		t.Fatalf("NewFileSink returned error: %v", err)
	}
	if err := sink.Close(); err != nil {
		t.Fatalf("Close returned error: %v", err)
	}
	if err := sink.WriteLine(lantern.LevelInfo, "late"); err == nil {
		t.Fatal("expected error writing to a closed sink")
	}
}
