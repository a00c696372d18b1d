package main

import (
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/drewhx/portfolio-web/config"
	"github.com/drewhx/portfolio-web/internal/router"
)

var configPath = flag.String("c", "config.yaml", "Path to the configuration file (in YAML format)")

func main() {
	flag.Parse()

	cfg, err := config.InitConfig(*configPath)
	if err != nil {
		slog.Error("fail to load configuration", slog.String("error", err.Error()))
		os.Exit(1)
	}

	slog.SetLogLoggerLevel(cfg.LogLevel)
	slog.Info("starting portfolio-web server...")

	r, err := router.NewRouter(cfg)
	if err != nil {
		slog.Error("fail to initialize router", slog.String("error", err.Error()))
		os.Exit(1)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := r.Listen(cfg.Listen); err != nil {
			slog.Error("server stopped unexpectedly", slog.String("error", err.Error()))
			quit <- syscall.SIGTERM
		}
	}()

	<-quit
	slog.Info("shutting down...")

	if err := r.Close(); err != nil {
		slog.Error("fail to shut down cleanly", slog.String("error", err.Error()))
		os.Exit(1)
	}
}
