package scaffold

import (
	"os"
	"path/filepath"
	"testing"
)

func TestProbeEmptyDisk(t *testing.T) {
	gen := setupGenerator(t)

	status := gen.Probe("Contact")

	if status.View || status.Edit || status.Create {
		t.Errorf("Expected all absent, got %+v", status)
	}
	if status.Complete() {
		t.Error("Empty status should not be complete")
	}
}

func TestReconcileGeneratesEverythingFromScratch(t *testing.T) {
	gen := setupGenerator(t)

	statuses, reports := gen.Reconcile([]Entity{
		{Name: "Contact", Fields: []string{"Email", "Phone"}},
	})

	if len(reports) != 3 {
		t.Fatalf("Expected 3 generation runs, got %d", len(reports))
	}

	status := statuses["Contact"]
	if !status.Complete() {
		t.Errorf("Expected complete status, got %+v", status)
	}
}

func TestReconcileGeneratesOnlyMissingKinds(t *testing.T) {
	gen := setupGenerator(t)

	// View and create already present; only edit should be generated.
	if err := os.MkdirAll(gen.ActionsDir, 0755); err != nil {
		t.Fatal(err)
	}
	for _, kind := range []Kind{KindView, KindCreate} {
		path := filepath.Join(gen.ActionsDir, ActionFile("Account", kind))
		if err := os.WriteFile(path, []byte("existing"), 0644); err != nil {
			t.Fatal(err)
		}
	}

	statuses, reports := gen.Reconcile([]Entity{
		{Name: "Account", Fields: []string{"Name"}},
	})

	if len(reports) != 1 {
		t.Fatalf("Expected 1 generation run, got %d", len(reports))
	}
	if reports[0].Kind != KindEdit {
		t.Errorf("Expected edit generation, got %s", reports[0].Kind)
	}

	if !statuses["Account"].Complete() {
		t.Errorf("Expected complete status, got %+v", statuses["Account"])
	}

	// Present kinds are never regenerated.
	data, err := os.ReadFile(filepath.Join(gen.ActionsDir, ActionFile("Account", KindView)))
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "existing" {
		t.Error("Reconcile overwrote an already-present artifact")
	}
}

func TestReconcileSkipsCompleteEntities(t *testing.T) {
	gen := setupGenerator(t)

	_, first := gen.Reconcile([]Entity{{Name: "Lead", Fields: []string{"Company"}}})
	if len(first) != 3 {
		t.Fatalf("Expected 3 runs on first pass, got %d", len(first))
	}

	statuses, second := gen.Reconcile([]Entity{{Name: "Lead", Fields: []string{"Company"}}})
	if len(second) != 0 {
		t.Errorf("Expected no runs on second pass, got %d", len(second))
	}
	if !statuses["Lead"].Complete() {
		t.Errorf("Expected complete status, got %+v", statuses["Lead"])
	}
}

func TestReconcileMultipleEntities(t *testing.T) {
	gen := setupGenerator(t)

	statuses, _ := gen.Reconcile([]Entity{
		{Name: "Account", Fields: []string{"Name"}},
		{Name: "Contact", Fields: []string{"Email"}},
	})

	if len(statuses) != 2 {
		t.Fatalf("Expected 2 statuses, got %d", len(statuses))
	}
	for name, status := range statuses {
		if !status.Complete() {
			t.Errorf("Expected %s complete, got %+v", name, status)
		}
	}
}

func TestProbeIgnoresDirectories(t *testing.T) {
	gen := setupGenerator(t)

	// A directory at the descriptor path does not count as present.
	path := filepath.Join(gen.ActionsDir, ActionFile("Account", KindView))
	if err := os.MkdirAll(path, 0755); err != nil {
		t.Fatal(err)
	}

	if gen.Probe("Account").View {
		t.Error("Expected directory to be treated as absent")
	}
}
