package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"panther-newsletter/internal/config"
	"panther-newsletter/internal/content"
)

func testCfg() config.Config {
	var cfg config.Config
	cfg.FillDefaults()
	return cfg
}

func TestRunGenerateWritesIndexHTML(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "week.yml")
	body := "" +
		"week: Week of Sep 1\n" +
		"6th:\n  - Science fair prep\n" +
		"announcements:\n  - Picture day Tuesday\n"
	if err := os.WriteFile(data, []byte(body), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	outDir := filepath.Join(dir, "site")
	outPath, err := runGenerate(testCfg(), data, outDir)
	if err != nil {
		t.Fatalf("runGenerate: %v", err)
	}
	if outPath != filepath.Join(outDir, "index.html") {
		t.Errorf("outPath = %q", outPath)
	}
	html, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	for _, want := range []string{"Glennallen Panthers", "6th Grade", "Science fair prep", "Picture day Tuesday"} {
		if !strings.Contains(string(html), want) {
			t.Errorf("output missing %q", want)
		}
	}
}

func TestRunGenerateMissingInput(t *testing.T) {
	dir := t.TempDir()
	outDir := filepath.Join(dir, "site")
	_, err := runGenerate(testCfg(), filepath.Join(dir, "nope.yml"), outDir)
	if !errors.Is(err, content.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
	if _, statErr := os.Stat(filepath.Join(outDir, "index.html")); !os.IsNotExist(statErr) {
		t.Error("no output file should be written on load failure")
	}
}

func TestRunGenerateOverwritesExistingOutput(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "week.json")
	if err := os.WriteFile(data, []byte(`{"week": "Round Two"}`), 0o644); err != nil {
		t.Fatalf("write data: %v", err)
	}

	outDir := filepath.Join(dir, "site")
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	stale := filepath.Join(outDir, "index.html")
	if err := os.WriteFile(stale, []byte("stale"), 0o644); err != nil {
		t.Fatalf("seed stale output: %v", err)
	}

	if _, err := runGenerate(testCfg(), data, outDir); err != nil {
		t.Fatalf("runGenerate into existing dir: %v", err)
	}
	html, err := os.ReadFile(stale)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(html) == "stale" || !strings.Contains(string(html), "Round Two") {
		t.Error("existing index.html was not overwritten with fresh output")
	}
}
