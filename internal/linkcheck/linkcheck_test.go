package linkcheck

import (
	"os"
	"path/filepath"
	"testing"
)

func writeDoc(t *testing.T, dir, name, content string) {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("creating directory: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestRunAllLinksValid(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "Start with the [setup guide](setup.md).")
	writeDoc(t, dir, "setup.md", "Back to [index](index.md).")

	report, err := Run(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.OK() {
		t.Errorf("expected no broken links, got %+v", report.Broken)
	}
	if report.Files != 2 {
		t.Errorf("expected 2 files, got %d", report.Files)
	}
	if report.TotalLinks != 2 {
		t.Errorf("expected 2 links, got %d", report.TotalLinks)
	}
}

func TestRunReportsBrokenLink(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "See the [missing page](missing.md).")

	report, err := Run(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.OK() {
		t.Fatal("expected a broken link")
	}
	broken := report.Broken[0]
	if broken.File != "index.md" {
		t.Errorf("expected file index.md, got %q", broken.File)
	}
	if broken.Text != "missing page" {
		t.Errorf("expected text 'missing page', got %q", broken.Text)
	}
	if broken.Target != "missing.md" {
		t.Errorf("expected target missing.md, got %q", broken.Target)
	}
}

func TestRunResolvesRelativeToContainingFile(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "Overview.")
	writeDoc(t, dir, "guides/setup.md", "Back to [index](../index.md), then [next](advanced.md).")
	writeDoc(t, dir, "guides/advanced.md", "Advanced.")

	report, err := Run(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.OK() {
		t.Errorf("expected no broken links, got %+v", report.Broken)
	}
}

func TestRunSkipsExternalLinks(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "See [remote](https://example.com/page.md) for details.")

	report, err := Run(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !report.OK() {
		t.Errorf("expected external link to be skipped, got %+v", report.Broken)
	}
	if report.TotalLinks != 1 {
		t.Errorf("expected external link to be counted, got %d", report.TotalLinks)
	}
}

func TestRunIgnoresAnchoredLinks(t *testing.T) {
	dir := t.TempDir()
	writeDoc(t, dir, "index.md", "Jump to [section](setup.md#install) directly.")

	report, err := Run(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if report.TotalLinks != 0 {
		t.Errorf("expected anchored link not to match, got %d links", report.TotalLinks)
	}
}

func TestRunMissingDirectory(t *testing.T) {
	if _, err := Run(filepath.Join(t.TempDir(), "nope")); err == nil {
		t.Fatal("expected an error for a missing directory")
	}
}
