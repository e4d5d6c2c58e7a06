package regression

import (
	"context"
	"fmt"
	"math"
	"slices"

	"github.com/chup1x/carprice/internal/domain"
	"gonum.org/v1/gonum/mat"
)

// Model evaluates a loaded artifact. It is not modified after Load.
type Model struct {
	features  []string
	intercept float64
	coef      *mat.VecDense
	mean      *mat.VecDense
	scale     *mat.VecDense
}

func Load(path string) (*Model, error) {
	artifact, err := ReadArtifact(path)
	if err != nil {
		return nil, fmt.Errorf("load model %s: %w", path, err)
	}

	return New(artifact)
}

func New(a *Artifact) (*Model, error) {
	if err := a.Validate(); err != nil {
		return nil, err
	}

	n := len(a.Features)
	m := &Model{
		features:  slices.Clone(a.Features),
		intercept: a.Intercept,
		coef:      mat.NewVecDense(n, slices.Clone(a.Coefficients)),
	}

	if a.Scaler != nil {
		m.mean = mat.NewVecDense(n, slices.Clone(a.Scaler.Mean))
		m.scale = mat.NewVecDense(n, slices.Clone(a.Scaler.Scale))
	}

	return m, nil
}

func (m *Model) Features() []string {
	return slices.Clone(m.features)
}

// Predict returns the log-space price for one row.
func (m *Model) Predict(ctx context.Context, record domain.FeatureRecord) (float64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}

	if !slices.Equal(record.Columns, m.features) {
		return 0, fmt.Errorf("%w: model expects columns %v, got %v", domain.ErrSchemaMismatch, m.features, record.Columns)
	}

	if len(record.Values) != len(m.features) {
		return 0, fmt.Errorf("%w: %d values for %d columns", domain.ErrSchemaMismatch, len(record.Values), len(m.features))
	}

	x := mat.NewVecDense(len(record.Values), slices.Clone(record.Values))
	if m.mean != nil {
		x.SubVec(x, m.mean)
		x.DivElemVec(x, m.scale)
	}

	y := m.intercept + mat.Dot(m.coef, x)
	if math.IsNaN(y) || math.IsInf(y, 0) {
		return 0, fmt.Errorf("%w: prediction is not finite", domain.ErrInference)
	}

	return y, nil
}
