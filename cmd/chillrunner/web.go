package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/chill-runner/internal/platform/web"
	"github.com/vovakirdan/chill-runner/internal/storage"
)

var flagWebAddr string

var webCmd = &cobra.Command{
	Use:   "web",
	Short: "Stream game sessions to browsers over websockets",
	Long: `Start an HTTP server with a websocket endpoint. Every connection runs its
own game on the server; the browser renders the snapshots it receives.

Endpoints:
  GET /ws?w=<px>&h=<px>&device=<class>&seed=<n>&player=<name>
  GET /healthz

Client messages:
  {"type":"activate"}                       jump
  {"type":"activate","restart":true}        play again after game over
  {"type":"pause"}                          toggle pause
  {"type":"resize","width":..,"height":..}  viewport changed
  {"type":"sky","sky":"rockets"}            change sky objects

Examples:
  chillrunner web
  chillrunner web --addr :9000 --fps 30`,
	Args: cobra.NoArgs,
	RunE: runWeb,
}

func init() {
	webCmd.Flags().StringVar(&flagWebAddr, "addr", ":8080", "HTTP listen address (host:port)")
}

func runWeb(_ *cobra.Command, _ []string) error {
	logger := newLogger(os.Stderr, "chillrunner-web")

	doc, err := loadDocument()
	if err != nil {
		return err
	}
	logger.Info("config loaded", "source", doc.Source)

	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open scores database", "error", err)
		store = nil
	}
	if store != nil {
		defer store.Close()
	}

	cfg := web.DefaultServerConfig()
	cfg.Address = flagWebAddr
	cfg.TickRate = flagFPS
	cfg.Document = doc
	cfg.Store = store
	cfg.Logger = logger

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return web.NewServer(cfg).ListenAndServe(ctx)
}
