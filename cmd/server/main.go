package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/blueputty01/swiftnotes/config"
	"github.com/blueputty01/swiftnotes/pkg/otel"
	"github.com/blueputty01/swiftnotes/server"
)

func main() {
	configFlag := flag.String("config", "config.yaml", "config file")
	addressFlag := flag.String("address", "", "listen address")

	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := otel.Setup(ctx, "swiftnotes"); err != nil {
		slog.Error("failed to set up telemetry", "error", err)
	}

	cfg, err := config.Parse(*configFlag)

	if err != nil {
		slog.Error("failed to load config", "path", *configFlag, "error", err)
		os.Exit(1)
	}

	if *addressFlag != "" {
		cfg.Address = *addressFlag
	}

	s, err := server.New(cfg)

	if err != nil {
		slog.Error("failed to create server", "error", err)
		os.Exit(1)
	}

	if err := s.ListenAndServe(ctx); err != nil {
		slog.Error("server failed", "error", err)
		os.Exit(1)
	}
}
