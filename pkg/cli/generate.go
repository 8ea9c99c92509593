package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/cameron-webmatter/stencil/pkg/config"
	"github.com/cameron-webmatter/stencil/pkg/scaffold"
)

var (
	generateFields string
	generateKinds  []string
)

var generateCmd = &cobra.Command{
	Use:   "generate [entity]",
	Short: "Generate record components for an entity",
	Long:  `Render the view/edit/create component bundles and quick-action descriptors for one entity`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&generateFields, "fields", "", "comma-separated field names, in render order")
	generateCmd.Flags().StringSliceVar(&generateKinds, "kind", nil, "kinds to generate (view, edit, create); default all")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	cwd, err := projectRoot()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cwd)
	if err != nil {
		return err
	}

	var entity string
	if len(args) > 0 {
		entity = args[0]
	} else {
		prompt := &survey.Input{Message: "Entity name:"}
		if err := survey.AskOne(prompt, &entity, survey.WithValidator(survey.Required)); err != nil {
			return err
		}
	}

	fieldsInput := generateFields
	if fieldsInput == "" {
		prompt := &survey.Input{Message: "Fields (comma-separated, in order):"}
		if err := survey.AskOne(prompt, &fieldsInput); err != nil {
			return err
		}
	}
	fields := splitFields(fieldsInput)

	kinds := scaffold.Kinds()
	if len(generateKinds) > 0 {
		kinds = kinds[:0]
		for _, raw := range generateKinds {
			kind, ok := scaffold.ParseKind(raw)
			if !ok {
				return fmt.Errorf("unknown kind: %s (must be view, edit, or create)", raw)
			}
			kinds = append(kinds, kind)
		}
	}

	gen := newGenerator(cfg)

	if !silent {
		fmt.Printf("\n🛠  Generating %s components...\n", entity)
	}

	failures := 0
	for _, kind := range kinds {
		report := gen.Generate(kind, entity, fields)
		failures += printReport(report)
	}

	if failures > 0 {
		if !silent {
			fmt.Printf("\n❌ %d file(s) failed\n", failures)
		}
		os.Exit(1)
	}

	if !silent {
		fmt.Printf("\n✅ Done\n")
	}
	return nil
}

func newGenerator(cfg *config.Config) *scaffold.Generator {
	return scaffold.NewGenerator(
		scaffold.NewStore(cfg.TemplatesDir),
		cfg.ComponentsDir,
		cfg.ActionsDir,
		cfg.Extensions,
	)
}

func splitFields(input string) []string {
	var fields []string
	for _, part := range strings.Split(input, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			fields = append(fields, part)
		}
	}
	return fields
}

// printReport prints per-file outcomes and returns the failure count.
func printReport(report *scaffold.Report) int {
	failures := 0
	for _, file := range report.Files {
		if file.Err != nil {
			failures++
			if !silent {
				fmt.Printf("  ❌ %s: %v\n", file.Path, file.Err)
			}
		} else if verbose {
			fmt.Printf("  ✓ %s\n", file.Path)
		}
	}
	if !silent && failures == 0 {
		fmt.Printf("  ✓ %s %s (%d files)\n", report.Kind, report.Entity, len(report.Files))
	}
	return failures
}
