package regression

import (
	"bytes"
	"fmt"
	"os"
	"slices"

	"github.com/chup1x/carprice/internal/domain"
	"gopkg.in/yaml.v3"
)

const (
	SupportedSchemaVersion = 1
	TargetLogPrice         = "log_price"
)

// Artifact is the serialized form of a trained linear model on log price.
// JSON artifacts are read as YAML.
type Artifact struct {
	SchemaVersion int       `yaml:"schema_version"`
	Features      []string  `yaml:"features"`
	Intercept     float64   `yaml:"intercept"`
	Coefficients  []float64 `yaml:"coefficients"`
	Scaler        *Scaler   `yaml:"scaler,omitempty"`
	Target        string    `yaml:"target,omitempty"`
}

type Scaler struct {
	Mean  []float64 `yaml:"mean"`
	Scale []float64 `yaml:"scale"`
}

func ReadArtifact(path string) (*Artifact, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: read artifact: %w", domain.ErrModelUnavailable, err)
	}

	return ParseArtifact(data)
}

func ParseArtifact(data []byte) (*Artifact, error) {
	if len(bytes.TrimSpace(data)) == 0 {
		return nil, fmt.Errorf("%w: artifact is empty", domain.ErrModelUnavailable)
	}

	artifact := &Artifact{}
	if err := yaml.Unmarshal(data, artifact); err != nil {
		return nil, fmt.Errorf("%w: decode artifact: %w", domain.ErrModelUnavailable, err)
	}

	if err := artifact.Validate(); err != nil {
		return nil, err
	}

	return artifact, nil
}

// Validate checks the artifact against the feature columns the form produces.
func (a *Artifact) Validate() error {
	if a.SchemaVersion != SupportedSchemaVersion {
		return fmt.Errorf("%w: unsupported schema version %d", domain.ErrSchemaMismatch, a.SchemaVersion)
	}

	if a.Target != "" && a.Target != TargetLogPrice {
		return fmt.Errorf("%w: unsupported target %q", domain.ErrSchemaMismatch, a.Target)
	}

	if !slices.Equal(a.Features, domain.FeatureColumns) {
		return fmt.Errorf("%w: model expects features %v, inputs provide %v",
			domain.ErrSchemaMismatch, a.Features, domain.FeatureColumns)
	}

	n := len(a.Features)
	if len(a.Coefficients) != n {
		return fmt.Errorf("%w: %d coefficients for %d features", domain.ErrSchemaMismatch, len(a.Coefficients), n)
	}

	if a.Scaler != nil {
		if len(a.Scaler.Mean) != n || len(a.Scaler.Scale) != n {
			return fmt.Errorf("%w: scaler size does not match %d features", domain.ErrSchemaMismatch, n)
		}
		for i, s := range a.Scaler.Scale {
			if s == 0 {
				return fmt.Errorf("%w: zero scale for feature %q", domain.ErrSchemaMismatch, a.Features[i])
			}
		}
	}

	return nil
}
