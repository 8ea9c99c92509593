package landing

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestNames(t *testing.T) {
	names := Names()

	if len(names) != 3 {
		t.Fatalf("Expected 3 variants, got %d", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Expected sorted names, got %v", names)
		}
	}
}

func TestDescribe(t *testing.T) {
	info, err := Describe("hero")
	if err != nil {
		t.Fatalf("Failed to describe variant: %v", err)
	}

	if info.Title != "Home" {
		t.Errorf("Expected title 'Home', got %s", info.Title)
	}
	if info.Description == "" {
		t.Error("Expected a description")
	}
}

func TestApply(t *testing.T) {
	pagesDir := filepath.Join(t.TempDir(), "src", "pages")

	dest, err := Apply("minimal", pagesDir)
	if err != nil {
		t.Fatalf("Failed to apply variant: %v", err)
	}

	if filepath.Base(dest) != "index.md" {
		t.Errorf("Expected index.md, got %s", dest)
	}

	data, err := os.ReadFile(dest)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.HasPrefix(string(data), "---\n") {
		t.Error("Expected frontmatter to be copied verbatim")
	}
}

func TestApplyUnknownVariant(t *testing.T) {
	_, err := Apply("nonexistent", t.TempDir())
	if err == nil {
		t.Error("Expected error for unknown variant")
	}
}

func TestPreview(t *testing.T) {
	html, err := Preview("hero")
	if err != nil {
		t.Fatalf("Failed to preview variant: %v", err)
	}

	if !strings.Contains(html, "<h1") {
		t.Errorf("Expected rendered heading, got %q", html)
	}
	if strings.Contains(html, "title:") {
		t.Error("Frontmatter should not leak into rendered HTML")
	}
}
