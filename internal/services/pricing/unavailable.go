package pricing

import (
	"context"
	"fmt"

	"github.com/chup1x/carprice/internal/domain"
)

type unavailableModel struct {
	cause error
}

// Unavailable returns a Model that fails every prediction with cause.
// It stands in for an artifact that could not be loaded at start-up.
func Unavailable(cause error) Model {
	return unavailableModel{cause: cause}
}

func (m unavailableModel) Predict(context.Context, domain.FeatureRecord) (float64, error) {
	if m.cause == nil {
		return 0, domain.ErrModelUnavailable
	}
	if domain.Classified(m.cause) {
		return 0, m.cause
	}
	return 0, fmt.Errorf("%w: %w", domain.ErrModelUnavailable, m.cause)
}
