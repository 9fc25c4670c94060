package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-starfield/internal/platform/stream"
)

var (
	flagStreamAddr   string
	flagStreamWidth  float64
	flagStreamHeight float64
)

var streamCmd = &cobra.Command{
	Use:   "stream",
	Short: "Stream frames to websocket clients",
	Long: `Start a websocket server at /ws. Each connection runs its own game and
receives one JSON frame per tick; clients send the actions they hold.

Client messages:
  {"type":"input","held":["move-forward","fire"]}
  {"type":"start"}
  {"type":"pause"}
  {"type":"resize","width":1024,"height":768}

Examples:
  starfield stream
  starfield stream --addr :9000 --fps 30`,
	RunE: runStream,
}

func init() {
	streamCmd.Flags().StringVar(&flagStreamAddr, "addr", ":8090", "HTTP listen address (host:port)")
	streamCmd.Flags().Float64Var(&flagStreamWidth, "width", 800, "Initial viewport width in pixels")
	streamCmd.Flags().Float64Var(&flagStreamHeight, "height", 600, "Initial viewport height in pixels")
}

func runStream(_ *cobra.Command, _ []string) error {
	cfg, err := loadGameConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "starfield-stream")
	if err != nil {
		return err
	}

	streamCfg := stream.DefaultConfig()
	streamCfg.Address = flagStreamAddr
	streamCfg.TickRate = flagFPS
	streamCfg.Seed = flagSeed
	streamCfg.Width = flagStreamWidth
	streamCfg.Height = flagStreamHeight

	if streamCfg.Width <= 0 || streamCfg.Height <= 0 {
		return fmt.Errorf("viewport must be positive, got %vx%v", streamCfg.Width, streamCfg.Height)
	}

	server := stream.NewServer(streamCfg, cfg, logger)

	fmt.Printf("Streaming on ws://%s%s\n", streamCfg.Address, streamCfg.Path)
	fmt.Println("Press Ctrl+C to stop")

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return server.ListenAndServe(ctx)
}
