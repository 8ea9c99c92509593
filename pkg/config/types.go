package config

type Config struct {
	TemplatesDir  string   `toml:"templatesDir"`
	ComponentsDir string   `toml:"componentsDir"`
	ActionsDir    string   `toml:"actionsDir"`
	PagesDir      string   `toml:"pagesDir"`
	Manifest      string   `toml:"manifest"`
	Extensions    []string `toml:"extensions"`
}

func DefaultConfig() *Config {
	return &Config{
		TemplatesDir:  "./stencil/templates",
		ComponentsDir: "./src/components",
		ActionsDir:    "./src/actions",
		PagesDir:      "./src/pages",
		Manifest:      "./stencil.manifest.yaml",
		Extensions:    []string{"html", "js", "css", "js-meta.xml"},
	}
}
