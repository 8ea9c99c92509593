package scaffold

// Kind selects which record component variant is generated.
type Kind string

const (
	KindView   Kind = "view"
	KindEdit   Kind = "edit"
	KindCreate Kind = "create"
)

func Kinds() []Kind {
	return []Kind{KindView, KindEdit, KindCreate}
}

func ParseKind(s string) (Kind, bool) {
	switch Kind(s) {
	case KindView, KindEdit, KindCreate:
		return Kind(s), true
	}
	return "", false
}

// Title returns the capitalized verb used in labels ("View", "Edit", "Create").
func (k Kind) Title() string {
	switch k {
	case KindView:
		return "View"
	case KindEdit:
		return "Edit"
	case KindCreate:
		return "Create"
	}
	return string(k)
}

// BaseName derives the component bundle name for an entity,
// e.g. KindView.BaseName("Account") == "viewAccountRecord".
func (k Kind) BaseName(entity string) string {
	return string(k) + entity + "Record"
}

// Entity is one scaffolding target: an object name plus its ordered
// field list. Field order determines the order of generated markup.
type Entity struct {
	Name   string
	Fields []string
}
