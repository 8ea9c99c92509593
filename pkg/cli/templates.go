package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cameron-webmatter/stencil/pkg/scaffold"
)

var templatesCmd = &cobra.Command{
	Use:   "templates",
	Short: "Manage the project's template set",
}

var templatesInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Seed the templates directory with the starter set",
	RunE:  runTemplatesInit,
}

var templatesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the templates the generator will read",
	RunE:  runTemplatesList,
}

func init() {
	rootCmd.AddCommand(templatesCmd)
	templatesCmd.AddCommand(templatesInitCmd)
	templatesCmd.AddCommand(templatesListCmd)
}

func runTemplatesInit(cmd *cobra.Command, args []string) error {
	cwd, err := projectRoot()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cwd)
	if err != nil {
		return err
	}

	written, err := scaffold.WriteDefaults(cfg.TemplatesDir)
	if err != nil {
		return fmt.Errorf("seed templates: %w", err)
	}

	if !silent {
		for _, path := range written {
			fmt.Printf("  ✓ %s\n", path)
		}
		fmt.Printf("\n✅ Wrote %d templates to %s\n", len(written), cfg.TemplatesDir)
	}
	return nil
}

func runTemplatesList(cmd *cobra.Command, args []string) error {
	cwd, err := projectRoot()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cwd)
	if err != nil {
		return err
	}

	store := scaffold.NewStore(cfg.TemplatesDir)
	for _, kind := range scaffold.Kinds() {
		for _, ext := range cfg.Extensions {
			path := store.KindPath(kind, ext)
			printTemplate(path)
		}
	}
	printTemplate(store.ActionPath())
	return nil
}

func printTemplate(path string) {
	if _, err := os.Stat(path); err == nil {
		fmt.Printf("  ✓ %s\n", path)
	} else {
		fmt.Printf("  ❌ %s (missing)\n", path)
	}
}
