package cli

import (
	"fmt"
	"sort"

	"github.com/fatih/color"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/cameron-webmatter/stencil/pkg/manifest"
	"github.com/cameron-webmatter/stencil/pkg/scaffold"
)

var syncWatch bool

var syncCmd = &cobra.Command{
	Use:   "sync",
	Short: "Generate missing artifacts from the manifest",
	Long: `Compare the manifest's entities against the quick-action descriptors on
disk and generate only the missing component kinds`,
	RunE: runSync,
}

func init() {
	rootCmd.AddCommand(syncCmd)
	syncCmd.Flags().BoolVar(&syncWatch, "watch", false, "re-sync when the manifest or templates change")
}

func runSync(cmd *cobra.Command, args []string) error {
	cwd, err := projectRoot()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cwd)
	if err != nil {
		return err
	}

	sync := func() error {
		entities, err := manifest.Load(cfg.Manifest)
		if err != nil {
			return err
		}

		gen := newGenerator(cfg)
		statuses, reports := gen.Reconcile(entities)

		failures := 0
		for _, report := range reports {
			failures += printReport(report)
		}

		if !silent {
			printStatuses(statuses)
			if failures > 0 {
				fmt.Printf("\n⚠️  %d file(s) failed; rerun sync after fixing\n", failures)
			}
		}
		return nil
	}

	if err := sync(); err != nil {
		return err
	}

	if !syncWatch {
		return nil
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("start watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(cfg.Manifest); err != nil {
		return fmt.Errorf("watch manifest: %w", err)
	}
	if err := watcher.Add(cfg.TemplatesDir); err != nil {
		return fmt.Errorf("watch templates: %w", err)
	}

	if !silent {
		fmt.Println("\n👀 Watching for changes (ctrl-c to stop)...")
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if !silent {
				fmt.Printf("\n🔁 %s changed, re-syncing...\n", event.Name)
			}
			if err := sync(); err != nil {
				fmt.Printf("❌ sync: %v\n", err)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Printf("❌ watch: %v\n", err)
		}
	}
}

func printStatuses(statuses map[string]scaffold.Status) {
	names := make([]string, 0, len(statuses))
	for name := range statuses {
		names = append(names, name)
	}
	sort.Strings(names)

	green := color.New(color.FgGreen).SprintFunc()
	red := color.New(color.FgRed).SprintFunc()
	mark := func(present bool) string {
		if present {
			return green("✓")
		}
		return red("✗")
	}

	fmt.Printf("\n%-24s %-6s %-6s %-6s\n", "ENTITY", "VIEW", "EDIT", "CREATE")
	for _, name := range names {
		status := statuses[name]
		fmt.Printf("%-24s %-6s %-6s %-6s\n",
			name, mark(status.View), mark(status.Edit), mark(status.Create))
	}
}
