package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/cameron-webmatter/stencil/pkg/config"
)

var (
	Version = "0.4.0"
	cfgFile string
	rootDir string
	verbose bool
	silent  bool
)

var rootCmd = &cobra.Command{
	Use:   "stencil",
	Short: "Stencil - record component scaffolding CLI",
	Long: `Stencil generates view/edit/create record components and their
quick-action descriptors from a template set, and keeps a project in
sync with its scaffolding manifest.`,
	Version: Version,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file path")
	rootCmd.PersistentFlags().StringVar(&rootDir, "root", "", "project root directory")
	rootCmd.PersistentFlags().BoolVar(&verbose, "verbose", false, "enable verbose logging")
	rootCmd.PersistentFlags().BoolVar(&silent, "silent", false, "disable all logging")
}

func projectRoot() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", err
	}
	if rootDir != "" {
		cwd = rootDir
	}
	return cwd, nil
}

func loadConfig(root string) (*config.Config, error) {
	var cfg *config.Config
	var err error

	if cfgFile != "" {
		cfg, err = config.Load(cfgFile)
	} else {
		cfg, err = config.LoadFromDir(root)
	}
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	cfg.Resolve(root)
	return cfg, nil
}
