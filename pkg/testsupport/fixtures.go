// Package testsupport carries shared helpers for the package test suites:
// fixture loading, golden file management, and small conveniences that keep
// contract tests concise.
package testsupport

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/godel-labs/go-podgen/pkg/manifest"
	pkgtemplate "github.com/godel-labs/go-podgen/pkg/template"
)

// LoadTemplate reads a fixture and builds a template.Template using a file
// source. Helpers fail the test on error to keep contract tests concise.
func LoadTemplate(t *testing.T, path string) pkgtemplate.Template {
	t.Helper()

	tpl, err := LoadTemplateFromPath(path)
	if err != nil {
		t.Fatalf("load template: %v", err)
	}
	return tpl
}

// LoadTemplateFromPath returns a Template without requiring testing.T,
// allowing callers to wire fixtures in setup functions.
func LoadTemplateFromPath(path string) (pkgtemplate.Template, error) {
	if path == "" {
		return pkgtemplate.Template{}, errors.New("testsupport: template path is required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return pkgtemplate.Template{}, fmt.Errorf("testsupport: read template: %w", err)
	}
	tpl, err := pkgtemplate.New(pkgtemplate.SourceFromFile(path), data)
	if err != nil {
		return pkgtemplate.Template{}, fmt.Errorf("testsupport: new template: %w", err)
	}
	return tpl, nil
}

// MustParseManifest parses rendered text through the manifest gates, failing
// the test on any validation error.
func MustParseManifest(t *testing.T, content string) manifest.Manifest {
	t.Helper()

	m, err := manifest.Parse(content)
	if err != nil {
		t.Fatalf("parse manifest: %v", err)
	}
	return m
}

// MustReadGolden reads a golden file and returns its raw bytes.
func MustReadGolden(t *testing.T, path string) []byte {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read golden: %v", err)
	}
	return data
}

// MustReadGoldenString reads a golden file and returns its string content.
func MustReadGoldenString(t *testing.T, path string) string {
	t.Helper()
	return string(MustReadGolden(t, path))
}

// WriteMaybeGolden updates a golden file when UPDATE_GOLDENS is set. Returns
// true if the golden was written (test should exit early).
func WriteMaybeGolden(t *testing.T, path string, data []byte) bool {
	t.Helper()
	if os.Getenv("UPDATE_GOLDENS") == "" {
		return false
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir golden dir: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write golden: %v", err)
	}
	return true
}

// CompareGolden returns a diff string if the values differ.
func CompareGolden(want, got any) string {
	return cmp.Diff(want, got)
}

// Context returns a background context for tests.
func Context() context.Context {
	return context.Background()
}
