package classifier

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"

	"gonum.org/v1/gonum/floats"

	"github.com/abhisek/lipredict/internal/features"
)

// DefaultThreshold is the probability cut used by Predict when the artifact
// does not set one.
const DefaultThreshold = 0.5

// Class labels.
const (
	ClassNonUser = 0
	ClassUser    = 1
)

// artifact is the on-disk JSON form written by the training exporter.
type artifact struct {
	Features     []string  `json:"features,omitempty"`
	Coefficients []float64 `json:"coefficients"`
	Intercept    float64   `json:"intercept"`
	Threshold    *float64  `json:"threshold,omitempty"`
}

// Model is a trained binary logistic classifier. It is immutable after
// Load and safe to share.
type Model struct {
	coefficients []float64
	intercept    float64
	threshold    float64
}

// Load reads and validates the model artifact at path.
func Load(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ErrModelLoad{Path: path, Err: err}
	}

	var raw artifact
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, &ErrModelLoad{Path: path, Err: fmt.Errorf("decode artifact: %w", err)}
	}

	threshold := DefaultThreshold
	if raw.Threshold != nil {
		threshold = *raw.Threshold
	}

	m, err := New(raw.Coefficients, raw.Intercept, threshold)
	if err != nil {
		return nil, &ErrModelLoad{Path: path, Err: err}
	}

	if raw.Features != nil && !slices.Equal(raw.Features, features.Names) {
		return nil, &ErrModelLoad{
			Path: path,
			Err:  fmt.Errorf("feature order %v does not match %v", raw.Features, features.Names),
		}
	}

	return m, nil
}

// New builds a model from explicit parameters.
func New(coefficients []float64, intercept, threshold float64) (*Model, error) {
	if len(coefficients) != features.Count {
		return nil, fmt.Errorf("expected %d coefficients, got %d", features.Count, len(coefficients))
	}
	for i, c := range coefficients {
		if math.IsNaN(c) || math.IsInf(c, 0) {
			return nil, fmt.Errorf("coefficient %s is not finite", features.Names[i])
		}
	}
	if math.IsNaN(intercept) || math.IsInf(intercept, 0) {
		return nil, errors.New("intercept is not finite")
	}
	if !(threshold > 0 && threshold < 1) {
		return nil, fmt.Errorf("threshold %v outside (0, 1)", threshold)
	}
	return &Model{
		coefficients: slices.Clone(coefficients),
		intercept:    intercept,
		threshold:    threshold,
	}, nil
}

// Coefficients returns a copy of the weights in canonical feature order.
func (m *Model) Coefficients() []float64 {
	return slices.Clone(m.coefficients)
}

// Intercept returns the bias term.
func (m *Model) Intercept() float64 { return m.intercept }

// Threshold returns the decision threshold applied to PredictProba.
func (m *Model) Threshold() float64 { return m.threshold }

// Decision returns the linear score intercept + Σ cᵢvᵢ.
func (m *Model) Decision(v features.Vector) float64 {
	return m.intercept + floats.Dot(m.coefficients, v.Values())
}

// PredictProba returns the probability of the positive (user) class.
func (m *Model) PredictProba(v features.Vector) float64 {
	return sigmoid(m.Decision(v))
}

// Predict returns ClassUser when PredictProba(v) >= Threshold, else ClassNonUser.
func (m *Model) Predict(v features.Vector) int {
	if m.PredictProba(v) >= m.threshold {
		return ClassUser
	}
	return ClassNonUser
}

// Classify validates v and returns the predicted class with its probability.
// An invalid vector is rejected before scoring.
func (m *Model) Classify(v features.Vector) (Result, error) {
	if err := v.Validate(); err != nil {
		return Result{}, err
	}
	p := m.PredictProba(v)
	class := ClassNonUser
	if p >= m.threshold {
		class = ClassUser
	}
	return Result{Class: class, Probability: p}, nil
}

// sigmoid is the logistic function, split by sign to avoid overflow in exp.
func sigmoid(z float64) float64 {
	if z >= 0 {
		return 1 / (1 + math.Exp(-z))
	}
	e := math.Exp(z)
	return e / (1 + e)
}
