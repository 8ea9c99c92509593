package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/spf13/cobra"
)

var infoCmd = &cobra.Command{
	Use:   "info",
	Short: "Display environment information",
	Long:  `Display useful information about your current Stencil setup`,
	RunE:  runInfo,
}

func init() {
	rootCmd.AddCommand(infoCmd)
}

func runInfo(cmd *cobra.Command, args []string) error {
	cwd, err := projectRoot()
	if err != nil {
		return err
	}

	fmt.Printf("Stencil                  v%s\n", Version)
	fmt.Printf("Go                       %s\n", runtime.Version())
	fmt.Printf("System                   %s (%s)\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("Working Directory        %s\n", cwd)

	configPath := filepath.Join(cwd, "stencil.config.toml")
	if _, err := os.Stat(configPath); err == nil {
		fmt.Printf("Config                   %s\n", configPath)
	}

	cfg, err := loadConfig(cwd)
	if err != nil {
		return nil
	}

	if _, err := os.Stat(cfg.Manifest); err == nil {
		fmt.Printf("Manifest                 %s\n", cfg.Manifest)
	}
	if info, err := os.Stat(cfg.TemplatesDir); err == nil && info.IsDir() {
		fmt.Printf("Templates                %s\n", cfg.TemplatesDir)
	}
	if info, err := os.Stat(cfg.ComponentsDir); err == nil && info.IsDir() {
		fmt.Printf("Components               %s\n", cfg.ComponentsDir)
	}
	if info, err := os.Stat(cfg.ActionsDir); err == nil && info.IsDir() {
		fmt.Printf("Actions                  %s\n", cfg.ActionsDir)
	}

	return nil
}
