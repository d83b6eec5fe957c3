// Package contrib ranks how strongly each input moved a single prediction.
//
// Strength is |coefficient × value|: a display heuristic, not a causal
// attribution, and it never feeds back into the classifier.
package contrib

import (
	"fmt"
	"math"
	"slices"

	"github.com/abhisek/lipredict/internal/features"
)

// MinStrength is the cut below which a contribution is hidden. Entries with
// strength <= MinStrength are dropped.
const MinStrength = 0.01

// Contribution is one feature's share of a prediction.
type Contribution struct {
	Feature  string  `json:"feature"`
	Strength float64 `json:"strength"`
}

// Rank computes |cᵢ·vᵢ| per feature, drops near-zero entries and sorts the
// rest by strength, strongest first. Ties keep canonical feature order.
func Rank(v features.Vector, coefficients []float64) ([]Contribution, error) {
	values := v.Values()
	if len(coefficients) != len(values) {
		return nil, fmt.Errorf("rank contributions: %d coefficients for %d features", len(coefficients), len(values))
	}

	out := make([]Contribution, 0, len(values))
	for i, x := range values {
		s := math.Abs(coefficients[i] * x)
		if s <= MinStrength {
			continue
		}
		out = append(out, Contribution{Feature: features.DisplayNames[i], Strength: s})
	}

	slices.SortStableFunc(out, func(a, b Contribution) int {
		switch {
		case a.Strength > b.Strength:
			return -1
		case a.Strength < b.Strength:
			return 1
		default:
			return 0
		}
	})
	return out, nil
}

// Max returns the largest strength, or 0 for an empty ranking.
func Max(cs []Contribution) float64 {
	var m float64
	for _, c := range cs {
		m = max(m, c.Strength)
	}
	return m
}

// Total sums all strengths.
func Total(cs []Contribution) float64 {
	var t float64
	for _, c := range cs {
		t += c.Strength
	}
	return t
}

// Share returns c's fraction of total, or 0 when total is 0.
func (c Contribution) Share(total float64) float64 {
	if total <= 0 {
		return 0
	}
	return c.Strength / total
}
