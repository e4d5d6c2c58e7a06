package pricing

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"
	"testing"

	"github.com/chup1x/carprice/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeModel struct {
	logPrice float64
	err      error
	panics   bool
	calls    int
	last     domain.FeatureRecord
}

func (f *fakeModel) Predict(_ context.Context, record domain.FeatureRecord) (float64, error) {
	f.calls++
	f.last = record
	if f.panics {
		panic("index out of range")
	}
	return f.logPrice, f.err
}

func ptr(v float64) *float64 { return &v }

func inputs(year, mileage, maxPower *float64) domain.CarInputs {
	return domain.CarInputs{Year: year, Mileage: mileage, MaxPower: maxPower}
}

func TestPredictPrice(t *testing.T) {
	model := &fakeModel{logPrice: 13.0}
	s := NewPriceService(model, nil)

	got := s.PredictPrice(context.Background(), inputs(ptr(2018), ptr(40000), ptr(100)))

	require.True(t, got.OK())
	assert.Equal(t, "The predicted car price = 442413.39 Baht", got.Message)
	assert.InDelta(t, math.Exp(13.0), got.Price, 1e-6)
	assert.Equal(t, []string{"year", "mileage", "max_power"}, model.last.Columns)
	assert.Equal(t, []float64{2018, 40000, 100}, model.last.Values)
}

func TestPredictPriceMissingInput(t *testing.T) {
	cases := []domain.CarInputs{
		inputs(nil, ptr(40000), ptr(100)),
		inputs(ptr(2018), nil, ptr(100)),
		inputs(ptr(2018), ptr(40000), nil),
		inputs(nil, nil, ptr(100)),
		inputs(nil, nil, nil),
	}

	model := &fakeModel{logPrice: 13.0}
	s := NewPriceService(model, nil)

	for _, in := range cases {
		got := s.PredictPrice(context.Background(), in)
		assert.Equal(t, "Please enter all values", got.Message)
		assert.ErrorIs(t, got.Err, domain.ErrMissingInput)
	}
	assert.Zero(t, model.calls)
}

func TestPredictPriceModelError(t *testing.T) {
	tests := []struct {
		name string
		err  error
		kind string
	}{
		{"unexpected", errors.New("feature names mismatch"), domain.KindInternal},
		{"schema", fmt.Errorf("%w: expected 3 columns", domain.ErrSchemaMismatch), domain.KindSchemaMismatch},
		{"unavailable", fmt.Errorf("%w: file missing", domain.ErrModelUnavailable), domain.KindModelUnavailable},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := NewPriceService(&fakeModel{err: tc.err}, nil)

			got := s.PredictPrice(context.Background(), inputs(ptr(2018), ptr(40000), ptr(100)))

			require.False(t, got.OK())
			assert.True(t, strings.HasPrefix(got.Message, "An error occurred: "), got.Message)
			assert.Contains(t, got.Message, tc.err.Error())
			assert.Equal(t, tc.kind, domain.ErrorKind(got.Err))
		})
	}
}

func TestPredictPriceRecoversPanic(t *testing.T) {
	s := NewPriceService(&fakeModel{panics: true}, nil)

	got := s.PredictPrice(context.Background(), inputs(ptr(2018), ptr(40000), ptr(100)))

	assert.ErrorIs(t, got.Err, domain.ErrInference)
	assert.Equal(t, "An error occurred: inference failed: model panicked: index out of range", got.Message)
}

func TestPredictPriceOverflow(t *testing.T) {
	s := NewPriceService(&fakeModel{logPrice: 1000}, nil)

	got := s.PredictPrice(context.Background(), inputs(ptr(2018), ptr(40000), ptr(100)))

	assert.ErrorIs(t, got.Err, domain.ErrInference)
	assert.True(t, strings.HasPrefix(got.Message, "An error occurred: "))
}

func TestPredictPriceIdempotent(t *testing.T) {
	s := NewPriceService(&fakeModel{logPrice: 12.3456}, nil)
	in := inputs(ptr(2020), ptr(15000), ptr(120))

	first := s.PredictPrice(context.Background(), in)
	second := s.PredictPrice(context.Background(), in)

	assert.Equal(t, first.Message, second.Message)
	assert.Equal(t, first.Price, second.Price)
}

func TestPredictPriceUnavailable(t *testing.T) {
	s := NewPriceService(Unavailable(errors.New("open car_price_model.json: no such file or directory")), nil)
	assert.False(t, s.ModelLoaded())

	got := s.PredictPrice(context.Background(), inputs(ptr(2018), ptr(40000), ptr(100)))

	assert.Equal(t, domain.KindModelUnavailable, domain.ErrorKind(got.Err))
	assert.Equal(t, "An error occurred: model unavailable: open car_price_model.json: no such file or directory", got.Message)

	// a still-missing triple is reported before the model is consulted
	got = s.PredictPrice(context.Background(), inputs(nil, ptr(40000), ptr(100)))
	assert.Equal(t, "Please enter all values", got.Message)
}

func TestPredictPriceNilModel(t *testing.T) {
	s := NewPriceService(nil, nil)
	assert.False(t, s.ModelLoaded())

	got := s.PredictPrice(context.Background(), inputs(ptr(2018), ptr(40000), ptr(100)))
	assert.ErrorIs(t, got.Err, domain.ErrModelUnavailable)
}

func TestUnavailableKeepsKind(t *testing.T) {
	cause := fmt.Errorf("load: %w", domain.ErrSchemaMismatch)

	_, err := Unavailable(cause).Predict(context.Background(), domain.FeatureRecord{})
	assert.ErrorIs(t, err, domain.ErrSchemaMismatch)
	assert.NotErrorIs(t, err, domain.ErrModelUnavailable)

	_, err = Unavailable(nil).Predict(context.Background(), domain.FeatureRecord{})
	assert.ErrorIs(t, err, domain.ErrModelUnavailable)
}
