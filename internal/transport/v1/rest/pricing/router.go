package pricingcntrl

import (
	"github.com/chup1x/carprice/internal/services/pricing"
	"github.com/gofiber/fiber/v2"
)

// RegisterPageRoutes mounts the HTML form on router.
func RegisterPageRoutes(router fiber.Router, s *pricing.PriceService) {
	priceCntrl := NewPriceController(s)
	router.Get("/", priceCntrl.pageHandler)
	router.Post("/", priceCntrl.submitHandler)
}

func RegisterPriceRoutes(router fiber.Router, s *pricing.PriceService) {
	priceCntrl := NewPriceController(s)
	price := router.Group("/price")
	price.Post("/predict", priceCntrl.predictHandler)
}
