package rest

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/chup1x/carprice/internal/config"
	"github.com/chup1x/carprice/internal/services/pricing"
	pricingcntrl "github.com/chup1x/carprice/internal/transport/v1/rest/pricing"
	"github.com/chup1x/carprice/internal/transport/v1/rest/views"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/template/html/v2"
	"go.uber.org/zap"
)

const shutdownTimeout = 30 * time.Second

type Server struct {
	app    *fiber.App
	config *config.Config
	logger *zap.Logger
}

func New(config *config.Config, logger *zap.Logger, s *pricing.PriceService) *Server {
	app := fiber.New(fiber.Config{
		Views:                 html.NewFileSystem(http.FS(views.FS), ".html"),
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestLogger(logger))

	app.Get("/healthz", healthHandler(s))

	pricingcntrl.RegisterPageRoutes(app, s)

	api := app.Group("/api/v1")
	pricingcntrl.RegisterPriceRoutes(api, s)

	return &Server{
		app:    app,
		config: config,
		logger: logger,
	}
}

// Start serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Start(ctx context.Context) error {
	addr := fmt.Sprintf(":%s", s.config.Server.Port)

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("starting web server", zap.String("addr", addr))
		errCh <- s.app.Listen(addr)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server start: unable to start web server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := s.app.ShutdownWithContext(shutdownCtx); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server shutdown: %w", err)
	}

	return nil
}

func healthHandler(s *pricing.PriceService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		return c.JSON(fiber.Map{
			"status":       "ok",
			"model_loaded": s.ModelLoaded(),
		})
	}
}
