// Package model wraps the pre-trained scoring artifacts. An artifact is a
// JSON export of a fitted logistic regression: an ordered feature schema,
// one coefficient per feature, an intercept and a decision threshold. It is
// loaded once at process start from a trusted local path and held as
// read-only shared state; the adapter itself is a pure function over its
// inputs plus the loaded artifact.
package model

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
)

var (
	ErrMissingField = errors.New("missing required field")
	ErrWrongType    = errors.New("field has wrong type")
)

type FeatureType string

const (
	FeatureInt   FeatureType = "int"
	FeatureFloat FeatureType = "float"
	FeatureBool  FeatureType = "bool"
)

// FeatureSpec names one input field and its expected encoding. Callers must
// supply every field in the units the artifact was trained on; the adapter
// performs no feature derivation.
type FeatureSpec struct {
	Name string      `json:"name"`
	Type FeatureType `json:"type"`
}

// Artifact is the on-disk model format.
type Artifact struct {
	Model        string        `json:"model"`
	Features     []FeatureSpec `json:"features"`
	Coefficients []float64     `json:"coefficients"`
	Intercept    float64       `json:"intercept"`
	Threshold    float64       `json:"threshold"`
}

type Model struct {
	name     string
	artifact Artifact
}

// Load reads and validates an artifact file. Startup fails fast on any error.
func Load(name, path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading model artifact %s: %w", path, err)
	}

	var artifact Artifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, fmt.Errorf("parsing model artifact %s: %w", path, err)
	}

	m, err := New(name, artifact)
	if err != nil {
		return nil, fmt.Errorf("invalid model artifact %s: %w", path, err)
	}
	return m, nil
}

func New(name string, artifact Artifact) (*Model, error) {
	if artifact.Model != "logistic_regression" {
		return nil, fmt.Errorf("unsupported model type %q", artifact.Model)
	}
	if len(artifact.Features) == 0 {
		return nil, errors.New("artifact declares no features")
	}
	if len(artifact.Coefficients) != len(artifact.Features) {
		return nil, fmt.Errorf("artifact has %d coefficients for %d features",
			len(artifact.Coefficients), len(artifact.Features))
	}
	if artifact.Threshold == 0 {
		artifact.Threshold = 0.5
	}
	if artifact.Threshold < 0 || artifact.Threshold > 1 {
		return nil, fmt.Errorf("threshold %v outside [0,1]", artifact.Threshold)
	}
	return &Model{name: name, artifact: artifact}, nil
}

func (m *Model) Name() string { return m.name }

func (m *Model) Features() []FeatureSpec { return m.artifact.Features }

// Vector validates the input against the ordered schema and returns the
// feature values in artifact order, booleans encoded as 0/1.
func (m *Model) Vector(input map[string]interface{}) ([]float64, error) {
	vec := make([]float64, len(m.artifact.Features))
	for i, spec := range m.artifact.Features {
		raw, ok := input[spec.Name]
		if !ok || raw == nil {
			return nil, fmt.Errorf("%w: %s", ErrMissingField, spec.Name)
		}
		val, err := coerce(raw, spec.Type)
		if err != nil {
			return nil, fmt.Errorf("%w: %s (%v)", ErrWrongType, spec.Name, err)
		}
		vec[i] = val
	}
	return vec, nil
}

// Score evaluates the artifact over an already-validated vector.
// The sigmoid keeps the result strictly inside [0,1].
func (m *Model) Score(vec []float64) float64 {
	z := m.artifact.Intercept
	for i, coef := range m.artifact.Coefficients {
		z += coef * vec[i]
	}
	return 1.0 / (1.0 + math.Exp(-z))
}

// Predict validates the input and returns the positive-class probability.
func (m *Model) Predict(input map[string]interface{}) (float64, error) {
	vec, err := m.Vector(input)
	if err != nil {
		return 0, err
	}
	return m.Score(vec), nil
}

// Label derives the categorical result. The boundary is exclusive on the
// positive side: exactly-threshold is "negativo".
func (m *Model) Label(probability float64) string {
	if probability > m.artifact.Threshold {
		return "positivo"
	}
	return "negativo"
}

// coerce converts a decoded JSON value to the feature's numeric encoding.
func coerce(raw interface{}, ft FeatureType) (float64, error) {
	switch ft {
	case FeatureBool:
		switch v := raw.(type) {
		case bool:
			if v {
				return 1, nil
			}
			return 0, nil
		case float64:
			if v == 0 || v == 1 {
				return v, nil
			}
			return 0, fmt.Errorf("expected boolean or 0/1, got %v", v)
		default:
			return 0, fmt.Errorf("expected boolean, got %T", raw)
		}
	case FeatureInt:
		v, ok := raw.(float64)
		if !ok {
			return 0, fmt.Errorf("expected integer, got %T", raw)
		}
		if v != math.Trunc(v) {
			return 0, fmt.Errorf("expected integer, got %v", v)
		}
		return v, nil
	case FeatureFloat:
		v, ok := raw.(float64)
		if !ok {
			return 0, fmt.Errorf("expected number, got %T", raw)
		}
		return v, nil
	default:
		return 0, fmt.Errorf("unknown feature type %q", ft)
	}
}
