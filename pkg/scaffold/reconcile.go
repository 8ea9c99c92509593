package scaffold

import "os"

// Status reports which quick-action descriptors exist for an entity.
// It is recomputed from disk on demand; the files themselves are the
// only source of truth for "already generated".
type Status struct {
	View   bool
	Edit   bool
	Create bool
}

func (s Status) Complete() bool {
	return s.View && s.Edit && s.Create
}

func (s Status) Has(kind Kind) bool {
	switch kind {
	case KindView:
		return s.View
	case KindEdit:
		return s.Edit
	case KindCreate:
		return s.Create
	}
	return false
}

// Probe checks the conventional descriptor paths for an entity. Any stat
// error counts as absent.
func (g *Generator) Probe(entity string) Status {
	return Status{
		View:   isFile(g.actionPath(entity, KindView)),
		Edit:   isFile(g.actionPath(entity, KindEdit)),
		Create: isFile(g.actionPath(entity, KindCreate)),
	}
}

func isFile(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}

// Reconcile generates the missing kinds for each entity, never touching
// kinds whose descriptor already exists. Entities are processed
// sequentially, in input order. The returned status map is re-probed
// after all generation, so it reflects the tree as left on disk; the
// reports cover only the generation runs that were actually invoked.
func (g *Generator) Reconcile(entities []Entity) (map[string]Status, []*Report) {
	var reports []*Report

	for _, entity := range entities {
		status := g.Probe(entity.Name)
		if status.Complete() {
			continue
		}
		for _, kind := range Kinds() {
			if status.Has(kind) {
				continue
			}
			reports = append(reports, g.Generate(kind, entity.Name, entity.Fields))
		}
	}

	statuses := make(map[string]Status, len(entities))
	for _, entity := range entities {
		statuses[entity.Name] = g.Probe(entity.Name)
	}
	return statuses, reports
}
