// Package linkcheck verifies relative markdown links inside a
// documentation tree. A link is checked only when its target ends in
// .md; external http(s) links are counted but never resolved.
package linkcheck

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// linkPattern matches markdown links whose target ends in .md, e.g.
// [Setup Guide](setup.md). Targets with anchors or query strings do
// not match.
var linkPattern = regexp.MustCompile(`\[([^\]]+)\]\(([^)]+\.md)\)`)

// BrokenLink describes one link whose target file does not exist.
type BrokenLink struct {
	// File is the markdown file containing the link, relative to the
	// checked directory.
	File string

	// Text is the link text.
	Text string

	// Target is the link target as written.
	Target string

	// Expected is the resolved filesystem path that was not found.
	Expected string
}

// Report summarizes one verification run.
type Report struct {
	// Files is the number of markdown files scanned.
	Files int

	// TotalLinks counts every matched markdown link, including
	// external ones that were skipped.
	TotalLinks int

	// Broken lists the links whose targets do not exist.
	Broken []BrokenLink
}

// OK reports whether the run found no broken links.
func (r *Report) OK() bool {
	return len(r.Broken) == 0
}

// Run scans dir recursively for .md files and verifies every relative
// markdown link they contain.
func Run(dir string) (*Report, error) {
	if _, err := os.Stat(dir); err != nil {
		return nil, fmt.Errorf("documentation directory %s: %w", dir, err)
	}

	var files []string
	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() && strings.HasSuffix(d.Name(), ".md") {
			files = append(files, path)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking %s: %w", dir, err)
	}

	report := &Report{Files: len(files)}
	for _, file := range files {
		if err := checkFile(dir, file, report); err != nil {
			return nil, err
		}
	}
	return report, nil
}

func checkFile(dir, file string, report *Report) error {
	content, err := os.ReadFile(file)
	if err != nil {
		return fmt.Errorf("reading %s: %w", file, err)
	}

	for _, match := range linkPattern.FindAllStringSubmatch(string(content), -1) {
		text, target := match[1], match[2]
		report.TotalLinks++

		if strings.HasPrefix(target, "http://") || strings.HasPrefix(target, "https://") {
			continue
		}

		expected := target
		if !filepath.IsAbs(target) {
			expected = filepath.Clean(filepath.Join(filepath.Dir(file), target))
		}

		if _, err := os.Stat(expected); err != nil {
			rel, relErr := filepath.Rel(dir, file)
			if relErr != nil {
				rel = file
			}
			report.Broken = append(report.Broken, BrokenLink{
				File:     rel,
				Text:     text,
				Target:   target,
				Expected: expected,
			})
		}
	}
	return nil
}
