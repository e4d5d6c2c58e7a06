package pricing

import (
	"context"
	"fmt"
	"math"

	"github.com/chup1x/carprice/internal/domain"
	"go.uber.org/zap"
)

const (
	MissingInputMessage = "Please enter all values"
	priceMessageFormat  = "The predicted car price = %.2f Baht"
	errorMessagePrefix  = "An error occurred: "
)

// Model predicts the natural log of a car price from one feature row.
type Model interface {
	Predict(ctx context.Context, record domain.FeatureRecord) (float64, error)
}

type PriceService struct {
	model  Model
	logger *zap.Logger
}

func NewPriceService(model Model, logger *zap.Logger) *PriceService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &PriceService{
		model:  model,
		logger: logger,
	}
}

// ModelLoaded reports whether predictions can currently reach a model.
func (s *PriceService) ModelLoaded() bool {
	_, unavailable := s.model.(unavailableModel)
	return s.model != nil && !unavailable
}

// PredictPrice always returns an estimate with a display message.
func (s *PriceService) PredictPrice(ctx context.Context, in domain.CarInputs) domain.PriceEstimate {
	if !in.Complete() {
		return domain.PriceEstimate{Message: MissingInputMessage, Err: domain.ErrMissingInput}
	}

	price, err := s.predict(ctx, in)
	if err != nil {
		s.logger.Warn("price prediction failed",
			zap.String("kind", domain.ErrorKind(err)),
			zap.Error(err),
		)
		return domain.PriceEstimate{Message: errorMessagePrefix + err.Error(), Err: err}
	}

	return domain.PriceEstimate{Message: fmt.Sprintf(priceMessageFormat, price), Price: price}
}

func (s *PriceService) predict(ctx context.Context, in domain.CarInputs) (price float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("%w: model panicked: %v", domain.ErrInference, r)
		}
	}()

	if s.model == nil {
		return 0, fmt.Errorf("%w: no model configured", domain.ErrModelUnavailable)
	}

	record, err := domain.NewFeatureRecord(in)
	if err != nil {
		return 0, err
	}

	logPrice, err := s.model.Predict(ctx, record)
	if err != nil {
		if domain.Classified(err) {
			return 0, err
		}
		return 0, fmt.Errorf("%w: %w", domain.ErrInference, err)
	}

	price = math.Exp(logPrice)
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, fmt.Errorf("%w: price for log value %g is not finite", domain.ErrInference, logPrice)
	}

	return price, nil
}
