package insight

import (
	"fmt"
	"strings"
)

const systemPrompt = `You explain the output of a logistic regression model that predicts whether a person uses LinkedIn. You only describe what the model computed. You never speculate about the individual beyond the inputs given.`

func buildUserMessage(req Request) string {
	var b strings.Builder

	b.WriteString("Inputs:\n")
	b.WriteString(fmt.Sprintf("- Income: %s\n", req.Selections.Income))
	b.WriteString(fmt.Sprintf("- Education: %s\n", req.Selections.Education))
	b.WriteString(fmt.Sprintf("- Parent: %s\n", req.Selections.Parent))
	b.WriteString(fmt.Sprintf("- Marital status: %s\n", req.Selections.Married))
	b.WriteString(fmt.Sprintf("- Gender: %s\n", req.Selections.Gender))
	b.WriteString(fmt.Sprintf("- Age: %d\n", req.Selections.Age))

	b.WriteString(fmt.Sprintf("\nPrediction: %s\n", req.Result.Label()))
	b.WriteString(fmt.Sprintf("Probability of being a LinkedIn user: %s\n", req.Result.ProbabilityText()))

	b.WriteString("\nFeature strengths (|coefficient x value|, strongest first):\n")
	if len(req.Contributions) == 0 {
		b.WriteString("None above 0.01\n")
	} else {
		for _, c := range req.Contributions {
			b.WriteString(fmt.Sprintf("- %s: %.3f\n", c.Feature, c.Strength))
		}
	}

	b.WriteString(`
Instructions:
1. Write a one-line headline stating the prediction.
2. Write a 2-3 sentence summary that names the strongest inputs and says how confident the model is.
3. List up to four factors, strongest first, using the feature names above.
4. Strengths are magnitudes only. Do not claim an input pushed the prediction up or down.
5. Plain text only. No markdown.`)

	return b.String()
}
