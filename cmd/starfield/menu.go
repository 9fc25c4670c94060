package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-starfield/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a variant interactively",
	Long: `Shows the registered variants and plays the one you pick.

Examples:
  starfield menu
  starfield menu --mute`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	gameID, rc, err := tui.RunMenu(terminalRuntime())
	if err != nil {
		return err
	}
	if gameID == "" {
		return nil
	}
	return playVariant(gameID, rc, cfg)
}
