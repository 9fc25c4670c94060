package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-starfield/internal/audio"
	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/core"
	"github.com/vovakirdan/tui-starfield/internal/games/starfield"
	"github.com/vovakirdan/tui-starfield/internal/platform/tui"
	"github.com/vovakirdan/tui-starfield/internal/registry"
)

var playCmd = &cobra.Command{
	Use:   "play [variant]",
	Short: "Play in this terminal",
	Long: `Start the game in the current terminal.

Controls:
  W/Up           - Thrust
  A/Left D/Right - Turn
  Space          - Fire
  Enter          - Launch
  P/Esc          - Pause
  R              - Restart (after game over)
  Q/Ctrl+C       - Quit

Logs go to ~/.starfield/starfield.log while the game owns the terminal.

Examples:
  starfield play
  starfield play starfield_scaled
  starfield play --seed 42 --mute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := starfield.ID
	if len(args) > 0 {
		gameID = args[0]
	}

	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown variant %q (run 'starfield list')", gameID)
	}
	return playVariant(gameID, terminalRuntime(), cfg)
}

// terminalRuntime sizes the runtime config to the current terminal.
func terminalRuntime() core.RuntimeConfig {
	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

// playVariant runs one variant in this terminal with audio attached.
func playVariant(gameID string, rc core.RuntimeConfig, cfg config.StarfieldConfig) error {
	logFile, err := openLogFile()
	if err != nil {
		return err
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "starfield")
	if err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	player := audio.NewPlayer(cfg.Audio, logger)
	_ = player.Open() // Logged; the game runs silent without a device
	defer player.Close()
	if emitter, ok := game.(registry.CueEmitter); ok {
		emitter.SetCueSink(player)
	}

	return tui.Run(game, rc, tui.Options{Input: cfg.Input, Logger: logger})
}

// openLogFile opens ~/.starfield/starfield.log for appending.
func openLogFile() (*os.File, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("cannot get home directory: %w", err)
	}
	dir := filepath.Join(home, ".starfield")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("cannot create %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "starfield.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("cannot open log file: %w", err)
	}
	return f, nil
}
