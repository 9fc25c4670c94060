// starfield is a terminal arcade shooter: fly a ship through a wrapping
// starfield, shoot meteors and saucers, dodge their lasers.
//
// Usage:
//
//	starfield play [variant]   - Play in this terminal
//	starfield list             - List registered variants
//	starfield menu             - Pick a variant interactively
//	starfield serve            - Start SSH server for remote play
//	starfield stream           - Start websocket frame stream
//	starfield config           - Print the default configuration
//
// Global flags:
//
//	--fps <rate>       - Set tick rate (default: 60)
//	--seed <value>     - Set RNG seed for reproducible gameplay
//	--config <path>    - Load configuration from a YAML file
//	--time-scaled      - Scale motion by elapsed time instead of per tick
//	--mute             - Disable audio
//	--log-level <lvl>  - debug, info, warn or error
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-starfield/internal/config"
	"github.com/vovakirdan/tui-starfield/internal/games/starfield"
)

var (
	// Global flags
	flagFPS        int
	flagSeed       int64
	flagConfig     string
	flagTimeScaled bool
	flagMute       bool
	flagLogLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starfield",
	Short: "Starfield - an arcade shooter in your terminal",
	Long: `Starfield is a real-time 2D shooter for the terminal. Thrust and turn
your ship through a wrapping field of stars, blast meteors and saucers,
and survive their return fire.

Available commands:
  play     - Play in this terminal
  list     - Show registered variants
  menu     - Pick a variant interactively
  serve    - Start SSH server for remote play
  stream   - Stream frames to websocket clients
  config   - Print or check configuration

Examples:
  starfield play
  starfield play --time-scaled --fps 30
  starfield serve --ssh :2222
  starfield stream --addr :8090
  starfield config --check ./my-starfield.yaml`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().BoolVar(&flagTimeScaled, "time-scaled", false, "Scale motion by elapsed time")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Disable audio")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(streamCmd)
	rootCmd.AddCommand(configCmd)
}

// newLogger builds the command logger writing to w.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level: %w", err)
	}
	logger := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	})
	return logger, nil
}

// loadGameConfig loads the configuration, applies global flags and hands
// it to the game package for every game created afterwards.
func loadGameConfig() (config.StarfieldConfig, error) {
	cfg, err := config.LoadStarfield(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagTimeScaled {
		cfg.Motion.TimeScaled = true
	}
	if flagMute {
		cfg.Audio.Enabled = false
	}
	starfield.SetConfig(cfg)
	return cfg, nil
}
