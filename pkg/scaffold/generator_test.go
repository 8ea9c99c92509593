package scaffold

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func setupGenerator(t *testing.T) *Generator {
	t.Helper()
	tmpDir := t.TempDir()

	templatesDir := filepath.Join(tmpDir, "templates")
	if _, err := WriteDefaults(templatesDir); err != nil {
		t.Fatalf("Failed to seed templates: %v", err)
	}

	return NewGenerator(
		NewStore(templatesDir),
		filepath.Join(tmpDir, "components"),
		filepath.Join(tmpDir, "actions"),
		[]string{"html", "js", "css", "js-meta.xml"},
	)
}

func TestGenerateViewWritesBundle(t *testing.T) {
	gen := setupGenerator(t)

	report := gen.GenerateView("Account", []string{"Name", "AccountId"})

	if !report.OK() {
		t.Fatalf("Generation failed: %v", report.Failed())
	}

	bundleDir := filepath.Join(gen.ComponentsDir, "viewAccountRecord")
	for _, ext := range gen.Extensions {
		path := filepath.Join(bundleDir, "viewAccountRecord."+ext)
		if _, err := os.Stat(path); err != nil {
			t.Errorf("Expected bundle file %s: %v", path, err)
		}
	}

	actionPath := filepath.Join(gen.ActionsDir, "Account.view.quickAction-meta.xml")
	data, err := os.ReadFile(actionPath)
	if err != nil {
		t.Fatalf("Expected action file: %v", err)
	}
	if !strings.Contains(string(data), "<label>View Account</label>") {
		t.Errorf("Action file missing label: %q", string(data))
	}
	if !strings.Contains(string(data), "<component>viewAccountRecord</component>") {
		t.Errorf("Action file missing component name: %q", string(data))
	}
}

func TestGenerateRendersFieldsIntoBundle(t *testing.T) {
	gen := setupGenerator(t)

	gen.GenerateView("Account", []string{"Name"})

	jsPath := filepath.Join(gen.ComponentsDir, "viewAccountRecord", "viewAccountRecord.js")
	data, err := os.ReadFile(jsPath)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), `import NAME_FIELD from "@schema/Account.Name";`) {
		t.Errorf("Rendered JS missing field import: %q", string(data))
	}
	if !strings.Contains(string(data), "fields = [NAME_FIELD, ];") {
		t.Errorf("Rendered JS missing field list: %q", string(data))
	}
}

func TestGenerateEditIcon(t *testing.T) {
	gen := setupGenerator(t)

	gen.GenerateEdit("Account", []string{"Name"})
	gen.GenerateCreate("Account", []string{"Name"})

	editAction, err := os.ReadFile(filepath.Join(gen.ActionsDir, "Account.edit.quickAction-meta.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(editAction), "<icon>standard-edit</icon>") {
		t.Errorf("Edit action missing icon fragment: %q", string(editAction))
	}

	createAction, err := os.ReadFile(filepath.Join(gen.ActionsDir, "Account.create.quickAction-meta.xml"))
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(createAction), "<icon>") {
		t.Errorf("Create action should not embed an icon: %q", string(createAction))
	}
}

func TestGenerateIdempotent(t *testing.T) {
	gen := setupGenerator(t)

	gen.GenerateCreate("Contact", []string{"Email", "Phone"})

	path := filepath.Join(gen.ComponentsDir, "createContactRecord", "createContactRecord.html")
	first, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}

	report := gen.GenerateCreate("Contact", []string{"Email", "Phone"})
	if !report.OK() {
		t.Fatalf("Second run failed: %v", report.Failed())
	}

	second, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(first) != string(second) {
		t.Error("Expected byte-identical output on rerun")
	}
}

func TestGenerateMissingTemplateWritesEmptyFile(t *testing.T) {
	tmpDir := t.TempDir()
	gen := NewGenerator(
		NewStore(filepath.Join(tmpDir, "nonexistent")),
		filepath.Join(tmpDir, "components"),
		filepath.Join(tmpDir, "actions"),
		[]string{"html"},
	)

	report := gen.GenerateView("Account", []string{"Name"})

	// Missing templates degrade to empty artifacts, not failures.
	if !report.OK() {
		t.Fatalf("Expected generation to proceed: %v", report.Failed())
	}

	path := filepath.Join(gen.ComponentsDir, "viewAccountRecord", "viewAccountRecord.html")
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("Expected artifact written: %v", err)
	}
	if len(data) != 0 {
		t.Errorf("Expected empty artifact, got %q", string(data))
	}
}

func TestGenerateReportsWriteFailure(t *testing.T) {
	gen := setupGenerator(t)

	// A regular file where the bundle directory should be forces MkdirAll
	// to fail; the run must finish and surface the failure in the report.
	if err := os.MkdirAll(gen.ComponentsDir, 0755); err != nil {
		t.Fatal(err)
	}
	blocker := filepath.Join(gen.ComponentsDir, "viewAccountRecord")
	if err := os.WriteFile(blocker, []byte("in the way"), 0644); err != nil {
		t.Fatal(err)
	}

	report := gen.GenerateView("Account", []string{"Name"})

	if report.OK() {
		t.Error("Expected report to record the failure")
	}

	// The action descriptor is independent of the bundle and still lands.
	actionPath := filepath.Join(gen.ActionsDir, "Account.view.quickAction-meta.xml")
	if _, err := os.Stat(actionPath); err != nil {
		t.Errorf("Expected action file despite bundle failure: %v", err)
	}
}
