package main

import (
	"log/slog"
	"os"

	"github.com/mathquizapp/mathquiz/internal/app"
	"github.com/mathquizapp/mathquiz/internal/lib/slogcustom"
	"github.com/spf13/pflag"
)

func main() {
	configPath := pflag.String("config", "config.yaml", "path to the configuration file")
	debug := pflag.Bool("debug", false, "enable debug logging")
	pflag.Parse()

	level := slog.LevelInfo
	if *debug {
		level = slog.LevelDebug
	}
	logger := slog.New(slogcustom.NewCustomHandler(os.Stdout, level))
	slog.SetDefault(logger)

	application, err := app.NewApp(*configPath)
	if err != nil {
		slog.Error("failed to initialize application", "error", err)
		os.Exit(1)
	}

	slog.Info("app starting")
	if err := application.ListenAndServe(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}
