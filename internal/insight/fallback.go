package insight

import (
	"fmt"

	"github.com/abhisek/lipredict/internal/contrib"
)

const maxFactors = 4

// Fallback builds a deterministic narrative from the ranked contributions.
// It is used when no LLM provider is configured or the provider fails.
func Fallback(req Request) *Narrative {
	n := &Narrative{
		Headline: fmt.Sprintf("Predicted: %s (p=%s)", req.Result.Label(), req.Result.ProbabilityText()),
		Source:   SourceFallback,
	}

	if len(req.Contributions) == 0 {
		n.Summary = "No input contributed more than 0.01 to the decision value, so the prediction rests on the model intercept."
		return n
	}

	total := contrib.Total(req.Contributions)
	top := req.Contributions[0]
	n.Summary = fmt.Sprintf("%s carries the most weight in this prediction, accounting for %.0f%% of the total feature strength.",
		top.Feature, top.Share(total)*100)
	if len(req.Contributions) > 1 {
		second := req.Contributions[1]
		n.Summary += fmt.Sprintf(" %s follows at %.0f%%.", second.Feature, second.Share(total)*100)
	}

	for i, c := range req.Contributions {
		if i == maxFactors {
			break
		}
		n.Factors = append(n.Factors, fmt.Sprintf("%s: strength %.3f", c.Feature, c.Strength))
	}
	return n
}
