package rest

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

func requestLogger(logger *zap.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()
		if err != nil {
			if handlerErr := c.App().ErrorHandler(c, err); handlerErr != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}

		fields := []zap.Field{
			zap.String("method", c.Method()),
			zap.String("path", c.Path()),
			zap.Int("status", c.Response().StatusCode()),
			zap.Duration("latency", time.Since(start)),
		}
		if err != nil {
			logger.Error("request failed", append(fields, zap.Error(err))...)
			return nil
		}

		logger.Info("request", fields...)
		return nil
	}
}
