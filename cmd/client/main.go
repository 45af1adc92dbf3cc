package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrijs2005/feedbackdesk/internal/client/cli"
	"github.com/dmitrijs2005/feedbackdesk/internal/client/client"
	"github.com/dmitrijs2005/feedbackdesk/internal/client/config"
	"github.com/dmitrijs2005/feedbackdesk/internal/logging"
	"github.com/dmitrijs2005/feedbackdesk/internal/session"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("invalid configuration: %v", err)
	}

	logger, err := logging.New(logging.Options{Backend: cfg.LogBackend, Level: cfg.LogLevel})
	if err != nil {
		log.Fatalf("logger: %v", err)
	}
	if s, ok := logger.(interface{ Sync() error }); ok {
		defer s.Sync()
	}

	store, closeStore, err := client.OpenStore(ctx, cfg.StoreDSN)
	if err != nil {
		log.Fatalf("session store: %v", err)
	}
	defer closeStore()

	backend, err := client.NewBackend(cfg, logger)
	if err != nil {
		log.Fatalf("identity backend: %v", err)
	}

	manager := session.NewManager(store, backend.Auth, backend.Registrar, session.WithLogger(logger))

	var pinger cli.Pinger
	if backend.Pinger != nil {
		pinger = backend.Pinger
	}

	cli.NewApp(manager, pinger, logger, os.Stdin, os.Stdout).Run(ctx)
}
