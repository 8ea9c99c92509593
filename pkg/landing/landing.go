// Package landing applies canned landing-page documents to a project.
// Each variant is a markdown page with YAML frontmatter, copied verbatim
// into the pages directory as index.md.
package landing

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/yuin/goldmark"
	highlighting "github.com/yuin/goldmark-highlighting"
	meta "github.com/yuin/goldmark-meta"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
)

// Info describes a variant for listing and selection menus.
type Info struct {
	Name        string
	Title       string
	Description string
}

func Names() []string {
	names := make([]string, 0, len(variants))
	for name := range variants {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Describe parses a variant's frontmatter for display.
func Describe(name string) (*Info, error) {
	content, ok := variants[name]
	if !ok {
		return nil, fmt.Errorf("unknown landing variant: %s", name)
	}

	md := goldmark.New(goldmark.WithExtensions(meta.Meta))
	var buf bytes.Buffer
	context := parser.NewContext()
	if err := md.Convert([]byte(content), &buf, parser.WithContext(context)); err != nil {
		return nil, fmt.Errorf("parse variant %s: %w", name, err)
	}

	info := &Info{Name: name}
	frontmatter := meta.Get(context)
	if title, ok := frontmatter["title"].(string); ok {
		info.Title = title
	}
	if desc, ok := frontmatter["description"].(string); ok {
		info.Description = desc
	}
	return info, nil
}

// Apply writes the variant into pagesDir as index.md, overwriting any
// existing landing page. Returns the written path.
func Apply(name, pagesDir string) (string, error) {
	content, ok := variants[name]
	if !ok {
		return "", fmt.Errorf("unknown landing variant: %s", name)
	}

	if err := os.MkdirAll(pagesDir, 0755); err != nil {
		return "", fmt.Errorf("create pages dir: %w", err)
	}

	dest := filepath.Join(pagesDir, "index.md")
	if err := os.WriteFile(dest, []byte(content), 0644); err != nil {
		return "", fmt.Errorf("write landing page: %w", err)
	}

	return dest, nil
}

// Preview renders a variant's body to HTML.
func Preview(name string) (string, error) {
	content, ok := variants[name]
	if !ok {
		return "", fmt.Errorf("unknown landing variant: %s", name)
	}

	md := goldmark.New(
		goldmark.WithExtensions(
			meta.Meta,
			extension.GFM,
			highlighting.NewHighlighting(
				highlighting.WithStyle("monokai"),
			),
		),
	)

	var buf bytes.Buffer
	context := parser.NewContext()
	if err := md.Convert([]byte(content), &buf, parser.WithContext(context)); err != nil {
		return "", fmt.Errorf("render variant %s: %w", name, err)
	}

	return buf.String(), nil
}
