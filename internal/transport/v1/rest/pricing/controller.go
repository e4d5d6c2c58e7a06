package pricingcntrl

import (
	"math"
	"strconv"
	"strings"

	"github.com/chup1x/carprice/internal/domain"
	"github.com/chup1x/carprice/internal/services/pricing"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

const indexView = "index"

type priceController struct {
	s         *pricing.PriceService
	validator *validator.Validate
}

func NewPriceController(s *pricing.PriceService) *priceController {
	return &priceController{
		s:         s,
		validator: validator.New(),
	}
}

func (p *priceController) pageHandler(c *fiber.Ctx) error {
	return c.Render(indexView, pricePage{})
}

func (p *priceController) submitHandler(c *fiber.Ctx) error {
	page := pricePage{
		Year:     strings.TrimSpace(c.FormValue("year")),
		Mileage:  strings.TrimSpace(c.FormValue("mileage")),
		MaxPower: strings.TrimSpace(c.FormValue("max_power")),
	}

	in := domain.CarInputs{
		Year:     parseField(page.Year),
		Mileage:  parseField(page.Mileage),
		MaxPower: parseField(page.MaxPower),
	}

	page.Result = p.s.PredictPrice(c.UserContext(), in).Message

	return c.Render(indexView, page)
}

func (p *priceController) predictHandler(c *fiber.Ctx) error {
	var req predictPriceRequest
	if err := c.BodyParser(&req); err != nil {
		return c.SendStatus(fiber.StatusUnprocessableEntity)
	}

	if err := p.validator.Struct(req); err != nil {
		return c.Status(fiber.StatusUnprocessableEntity).JSON(predictPriceResponse{
			Result:    pricing.MissingInputMessage,
			ErrorKind: domain.KindMissingInput,
		})
	}

	estimate := p.s.PredictPrice(c.UserContext(), domain.CarInputs{
		Year:     req.Year,
		Mileage:  req.Mileage,
		MaxPower: req.MaxPower,
	})

	if !estimate.OK() {
		return c.Status(statusFor(estimate.Err)).JSON(predictPriceResponse{
			Result:    estimate.Message,
			ErrorKind: domain.ErrorKind(estimate.Err),
		})
	}

	return c.JSON(predictPriceResponse{
		Result: estimate.Message,
		Price:  &estimate.Price,
	})
}

func statusFor(err error) int {
	switch domain.ErrorKind(err) {
	case domain.KindMissingInput:
		return fiber.StatusUnprocessableEntity
	case domain.KindModelUnavailable:
		return fiber.StatusServiceUnavailable
	default:
		return fiber.StatusInternalServerError
	}
}

// parseField treats an empty or non-numeric field as unset.
func parseField(raw string) *float64 {
	if raw == "" {
		return nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}
