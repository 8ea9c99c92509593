package scaffold

import (
	"log"
	"os"
	"path/filepath"
)

// FileResult records the outcome of one artifact write.
type FileResult struct {
	Path string
	Err  error
}

// Report collects per-file results for one entity+kind generation run.
// Generation never aborts on an individual file failure; callers inspect
// the report to distinguish full from partial success.
type Report struct {
	Entity string
	Kind   Kind
	Files  []FileResult
}

func (r *Report) OK() bool {
	for _, f := range r.Files {
		if f.Err != nil {
			return false
		}
	}
	return true
}

func (r *Report) Failed() []FileResult {
	var failed []FileResult
	for _, f := range r.Files {
		if f.Err != nil {
			failed = append(failed, f)
		}
	}
	return failed
}

// Generator renders component bundles and quick-action descriptors into a
// project tree. Destinations come from explicit configuration, never from
// package globals, so tests can point it at throwaway directories.
type Generator struct {
	Store         *Store
	ComponentsDir string
	ActionsDir    string
	Extensions    []string
}

func NewGenerator(store *Store, componentsDir, actionsDir string, extensions []string) *Generator {
	return &Generator{
		Store:         store,
		ComponentsDir: componentsDir,
		ActionsDir:    actionsDir,
		Extensions:    extensions,
	}
}

// ActionFile returns the conventional descriptor filename for an
// entity+kind, e.g. "Account.view.quickAction-meta.xml".
func ActionFile(entity string, kind Kind) string {
	return entity + "." + string(kind) + ".quickAction-meta.xml"
}

func (g *Generator) actionPath(entity string, kind Kind) string {
	return filepath.Join(g.ActionsDir, ActionFile(entity, kind))
}

func (g *Generator) GenerateView(entity string, fields []string) *Report {
	return g.Generate(KindView, entity, fields)
}

func (g *Generator) GenerateEdit(entity string, fields []string) *Report {
	return g.Generate(KindEdit, entity, fields)
}

func (g *Generator) GenerateCreate(entity string, fields []string) *Report {
	return g.Generate(KindCreate, entity, fields)
}

// Generate writes one component bundle (one file per configured
// extension) plus the kind's quick-action descriptor. Existing files are
// overwritten unconditionally; rerunning with the same inputs and
// templates produces byte-identical output.
func (g *Generator) Generate(kind Kind, entity string, fields []string) *Report {
	vars := Vars(entity, fields)
	base := kind.BaseName(entity)
	bundleDir := filepath.Join(g.ComponentsDir, base)
	report := &Report{Entity: entity, Kind: kind}

	if err := os.MkdirAll(bundleDir, 0755); err != nil {
		log.Printf("Warning: create %s: %v", bundleDir, err)
		report.Files = append(report.Files, FileResult{Path: bundleDir, Err: err})
	} else {
		for _, ext := range g.Extensions {
			text := g.Store.Kind(kind, ext)
			dest := filepath.Join(bundleDir, base+"."+ext)
			err := os.WriteFile(dest, []byte(Render(text, vars)), 0644)
			if err != nil {
				log.Printf("Warning: write %s: %v", dest, err)
			}
			report.Files = append(report.Files, FileResult{Path: dest, Err: err})
		}
	}

	// Kind overrides win over entity-wide keys.
	overrides := map[string]string{
		KeyActionLabel:   kind.Title() + " " + entity,
		KeyComponentName: base,
		KeyIcon:          "",
	}
	if kind == KindEdit {
		overrides[KeyIcon] = "<icon>standard-edit</icon>"
	}
	for key, value := range vars {
		if _, ok := overrides[key]; !ok {
			overrides[key] = value
		}
	}

	dest := g.actionPath(entity, kind)
	if err := os.MkdirAll(g.ActionsDir, 0755); err != nil {
		log.Printf("Warning: create %s: %v", g.ActionsDir, err)
		report.Files = append(report.Files, FileResult{Path: dest, Err: err})
		return report
	}
	err := os.WriteFile(dest, []byte(Render(g.Store.Action(), overrides)), 0644)
	if err != nil {
		log.Printf("Warning: write %s: %v", dest, err)
	}
	report.Files = append(report.Files, FileResult{Path: dest, Err: err})

	return report
}
