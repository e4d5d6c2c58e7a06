package app

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/chup1x/carprice/internal/config"
	"github.com/chup1x/carprice/internal/logger"
	"github.com/chup1x/carprice/internal/regression"
	"github.com/chup1x/carprice/internal/services/pricing"
	"github.com/chup1x/carprice/internal/transport/v1/rest"
	"go.uber.org/zap"
)

func MustRunApp() {
	config, err := config.ReadConfig()
	if err != nil {
		log.Fatalf("read config: %s", err.Error())
	}

	logger, err := logger.New(config.Log)
	if err != nil {
		log.Fatalf("build logger: %s", err.Error())
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service := pricing.NewPriceService(newModel(config, logger), logger)

	server := rest.New(config, logger, service)
	if err := server.Start(ctx); err != nil {
		logger.Fatal("start web server", zap.Error(err))
	}
}

func newModel(cfg *config.Config, logger *zap.Logger) pricing.Model {
	if cfg.ModelService.Enabled() {
		logger.Info("using remote model service",
			zap.String("host", cfg.ModelService.Host),
			zap.String("port", cfg.ModelService.Port),
			zap.String("path", cfg.ModelService.Path),
		)
		return pricing.NewClient(cfg.ModelService.Host, cfg.ModelService.Port, cfg.ModelService.Path, cfg.ModelService.Timeout)
	}

	model, err := regression.Load(cfg.Model.Path)
	if err != nil {
		logger.Error("model not loaded, predictions will report the failure",
			zap.String("path", cfg.Model.Path),
			zap.Error(err),
		)
		return pricing.Unavailable(err)
	}

	logger.Info("model loaded", zap.String("path", cfg.Model.Path), zap.Strings("features", model.Features()))
	return model
}
