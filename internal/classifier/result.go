package classifier

import "fmt"

// Result is the outcome of classifying one feature vector.
type Result struct {
	Class       int
	Probability float64 // probability of ClassUser
}

// IsUser reports whether the positive class was predicted.
func (r Result) IsUser() bool { return r.Class == ClassUser }

// Label returns the display text for the predicted class.
func (r Result) Label() string {
	if r.IsUser() {
		return "LinkedIn User"
	}
	return "Not a User"
}

// ProbabilityText formats the probability to three decimals.
func (r Result) ProbabilityText() string {
	return fmt.Sprintf("%.3f", r.Probability)
}
