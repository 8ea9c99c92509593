package scaffold

import (
	"fmt"
	"strings"
)

// Placeholder keys recognized by Render. Every key except the action
// overrides is populated by Vars for each entity.
const (
	KeyObjectName   = "OBJECT_NAME"
	KeyViewLabel    = "VIEW_LABEL"
	KeyEditLabel    = "EDIT_LABEL"
	KeyCreateLabel  = "CREATE_LABEL"
	KeyFieldList    = "FIELD_LIST"
	KeyFieldImports = "FIELD_IMPORTS"
	KeyCreateFields = "CREATE_FIELDS"
	KeyEditFields   = "EDIT_FIELDS"
	KeyFieldVars    = "FIELD_VARS"
	KeyFieldInits   = "FIELD_INITS"

	// Injected per kind when rendering the quick-action descriptor.
	KeyActionLabel   = "ACTION_LABEL"
	KeyComponentName = "COMPONENT_NAME"
	KeyIcon          = "ICON"
)

// Vars builds the full placeholder map for an entity. Fields are folded
// in input order; each accumulator keeps its trailing separator.
//
// Field names are embedded verbatim. A name containing markup-special
// characters produces structurally invalid output (see DESIGN.md).
func Vars(entity string, fields []string) map[string]string {
	var list, imports, create, edit, aliases, inits strings.Builder

	for _, field := range fields {
		ref := strings.ToUpper(field) + "_FIELD"
		local := strings.ToLower(field)

		list.WriteString(ref + ", ")
		imports.WriteString(fmt.Sprintf("import %s from \"@schema/%s.%s\";\n", ref, entity, field))
		create.WriteString(fmt.Sprintf("<record-field field={%s} mode=\"create\"></record-field>\n        ", ref))
		edit.WriteString(fmt.Sprintf("<record-field field={%s} value={%s}></record-field>\n        ", ref, local))
		aliases.WriteString(fmt.Sprintf("%s = %s;\n\t", local, ref))
		inits.WriteString(fmt.Sprintf("%s = \"\";\n\t", local))
	}

	return map[string]string{
		KeyObjectName:   entity,
		KeyViewLabel:    "View " + entity,
		KeyEditLabel:    "Edit " + entity,
		KeyCreateLabel:  "Create " + entity,
		KeyFieldList:    list.String(),
		KeyFieldImports: imports.String(),
		KeyCreateFields: create.String(),
		KeyEditFields:   edit.String(),
		KeyFieldVars:    aliases.String(),
		KeyFieldInits:   inits.String(),
	}
}
