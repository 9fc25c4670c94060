package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-starfield/internal/config"
)

var flagCheck string

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or check configuration",
	Long: `Without flags, prints the built-in default configuration. Save it to
~/.starfield/configs/starfield.yaml or ./configs/starfield.yaml to customize.
Files may set only the keys they change.

Examples:
  starfield config > ~/.starfield/configs/starfield.yaml
  starfield config --check ./my-starfield.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().StringVar(&flagCheck, "check", "", "Validate a config file and report every problem")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagCheck == "" {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	if _, err := config.LoadStarfield(flagCheck); err != nil {
		return err
	}
	fmt.Printf("%s: ok\n", flagCheck)
	return nil
}
