package scaffold

import (
	"log"
	"os"
	"path/filepath"
)

// Store reads templates from a project-local directory. Kind templates
// live at {dir}/{kind}/{kind}.{ext}; the shared quick-action descriptor
// template at {dir}/action.xml.
type Store struct {
	Dir string
}

func NewStore(dir string) *Store {
	return &Store{Dir: dir}
}

func (s *Store) KindPath(kind Kind, ext string) string {
	return filepath.Join(s.Dir, string(kind), string(kind)+"."+ext)
}

func (s *Store) ActionPath() string {
	return filepath.Join(s.Dir, "action.xml")
}

// Kind returns the template text for a component variant. A missing or
// unreadable template yields empty text; generation continues and the
// artifact is written empty.
func (s *Store) Kind(kind Kind, ext string) string {
	return s.read(s.KindPath(kind, ext))
}

// Action returns the shared quick-action descriptor template text.
func (s *Store) Action() string {
	return s.read(s.ActionPath())
}

func (s *Store) read(path string) string {
	data, err := os.ReadFile(path)
	if err != nil {
		log.Printf("Warning: read template %s: %v", path, err)
		return ""
	}
	return string(data)
}
