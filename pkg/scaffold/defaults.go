package scaffold

import (
	"os"
	"path/filepath"
	"sort"
)

const defaultViewHTML = `<template>
    <article class="record-view">
        <h1>///VIEW_LABEL///</h1>
        <record-form object="///OBJECT_NAME///" fields={fields} mode="view">
        </record-form>
    </article>
</template>
`

const defaultViewJS = `///FIELD_IMPORTS///
export default class ViewRecord {
    object = "///OBJECT_NAME///";
    fields = [///FIELD_LIST///];
}
`

const defaultViewCSS = `.record-view {
    padding: 1rem;
}
`

const defaultViewMeta = `<?xml version="1.0" encoding="UTF-8"?>
<component>
    <apiVersion>1.0</apiVersion>
    <isExposed>true</isExposed>
    <masterLabel>///VIEW_LABEL///</masterLabel>
</component>
`

const defaultEditHTML = `<template>
    <article class="record-edit">
        <h1>///EDIT_LABEL///</h1>
        <record-form object="///OBJECT_NAME///" mode="edit">
        ///EDIT_FIELDS///
        </record-form>
    </article>
</template>
`

const defaultEditJS = `///FIELD_IMPORTS///
export default class EditRecord {
    object = "///OBJECT_NAME///";
	///FIELD_VARS///
}
`

const defaultEditCSS = `.record-edit {
    padding: 1rem;
}
`

const defaultEditMeta = `<?xml version="1.0" encoding="UTF-8"?>
<component>
    <apiVersion>1.0</apiVersion>
    <isExposed>true</isExposed>
    <masterLabel>///EDIT_LABEL///</masterLabel>
</component>
`

const defaultCreateHTML = `<template>
    <article class="record-create">
        <h1>///CREATE_LABEL///</h1>
        <record-form object="///OBJECT_NAME///" mode="create">
        ///CREATE_FIELDS///
        </record-form>
    </article>
</template>
`

const defaultCreateJS = `///FIELD_IMPORTS///
export default class CreateRecord {
    object = "///OBJECT_NAME///";
	///FIELD_INITS///
}
`

const defaultCreateCSS = `.record-create {
    padding: 1rem;
}
`

const defaultCreateMeta = `<?xml version="1.0" encoding="UTF-8"?>
<component>
    <apiVersion>1.0</apiVersion>
    <isExposed>true</isExposed>
    <masterLabel>///CREATE_LABEL///</masterLabel>
</component>
`

const defaultActionXML = `<?xml version="1.0" encoding="UTF-8"?>
<quickAction>
    <label>///ACTION_LABEL///</label>
    <component>///COMPONENT_NAME///</component>
    <object>///OBJECT_NAME///</object>
    ///ICON///
</quickAction>
`

// DefaultTemplates maps store-relative paths to starter template text.
var DefaultTemplates = map[string]string{
	"view/view.html":            defaultViewHTML,
	"view/view.js":              defaultViewJS,
	"view/view.css":             defaultViewCSS,
	"view/view.js-meta.xml":     defaultViewMeta,
	"edit/edit.html":            defaultEditHTML,
	"edit/edit.js":              defaultEditJS,
	"edit/edit.css":             defaultEditCSS,
	"edit/edit.js-meta.xml":     defaultEditMeta,
	"create/create.html":        defaultCreateHTML,
	"create/create.js":          defaultCreateJS,
	"create/create.css":         defaultCreateCSS,
	"create/create.js-meta.xml": defaultCreateMeta,
	"action.xml":                defaultActionXML,
}

// WriteDefaults seeds a template directory with the starter set. Existing
// files are overwritten. Returns the paths written, in sorted order.
func WriteDefaults(dir string) ([]string, error) {
	names := make([]string, 0, len(DefaultTemplates))
	for name := range DefaultTemplates {
		names = append(names, name)
	}
	sort.Strings(names)

	var written []string
	for _, name := range names {
		dest := filepath.Join(dir, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(dest), 0755); err != nil {
			return written, err
		}
		if err := os.WriteFile(dest, []byte(DefaultTemplates[name]), 0644); err != nil {
			return written, err
		}
		written = append(written, dest)
	}
	return written, nil
}
