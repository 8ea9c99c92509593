package cli

import (
	"fmt"

	"github.com/AlecAivazis/survey/v2"
	"github.com/spf13/cobra"

	"github.com/cameron-webmatter/stencil/pkg/landing"
	"github.com/cameron-webmatter/stencil/pkg/manifest"
	"github.com/cameron-webmatter/stencil/pkg/scaffold"
)

var (
	landingList    bool
	landingPreview bool
)

var landingCmd = &cobra.Command{
	Use:   "landing [variant]",
	Short: "Apply a canned landing page to the project",
	Long:  `Copy one of the built-in landing page documents into the pages directory`,
	Args:  cobra.MaximumNArgs(1),
	RunE:  runLanding,
}

func init() {
	rootCmd.AddCommand(landingCmd)
	landingCmd.Flags().BoolVar(&landingList, "list", false, "list available variants")
	landingCmd.Flags().BoolVar(&landingPreview, "preview", false, "print the variant rendered as HTML instead of applying it")
}

func runLanding(cmd *cobra.Command, args []string) error {
	if landingList {
		for _, name := range landing.Names() {
			info, err := landing.Describe(name)
			if err != nil {
				return err
			}
			fmt.Printf("%-12s %s — %s\n", info.Name, info.Title, info.Description)
		}
		return nil
	}

	var variant string
	if len(args) > 0 {
		variant = args[0]
	} else {
		prompt := &survey.Select{
			Message: "Select a landing page:",
			Options: landing.Names(),
		}
		if err := survey.AskOne(prompt, &variant); err != nil {
			return err
		}
	}

	if landingPreview {
		html, err := landing.Preview(variant)
		if err != nil {
			return err
		}
		fmt.Print(html)
		return nil
	}

	cwd, err := projectRoot()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cwd)
	if err != nil {
		return err
	}

	dest, err := landing.Apply(variant, cfg.PagesDir)
	if err != nil {
		return err
	}

	if !silent {
		fmt.Printf("✅ Applied %s landing page → %s\n", variant, dest)
	}

	// Show where scaffolding stands so a missing artifact is obvious
	// right after setting up the page that links to it.
	entities, err := manifest.Load(cfg.Manifest)
	if err != nil {
		if verbose {
			fmt.Printf("  (no manifest status: %v)\n", err)
		}
		return nil
	}

	gen := newGenerator(cfg)
	statuses := make(map[string]scaffold.Status, len(entities))
	for _, entity := range entities {
		statuses[entity.Name] = gen.Probe(entity.Name)
	}
	if !silent {
		printStatuses(statuses)
	}
	return nil
}
