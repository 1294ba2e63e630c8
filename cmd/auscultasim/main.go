package main

import (
	"os"

	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/medsignal/auscultasim/internal/cli"
	"github.com/medsignal/auscultasim/internal/config"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()

	var logger *zap.Logger
	if cfg.LogPretty {
		logger, _ = zap.NewDevelopment()
	} else {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	logger.Info("auscultasim starting",
		zap.Int64("seed", cfg.Seed),
		zap.String("outDir", cfg.OutDir),
	)

	if err := cli.Execute(cfg, logger); err != nil {
		logger.Error("command failed", zap.Error(err))
		os.Exit(1)
	}
}
