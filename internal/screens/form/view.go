package form

import (
	"fmt"
	"strings"

	"charm.land/lipgloss/v2"

	"github.com/abhisek/lipredict/internal/contrib"
	"github.com/abhisek/lipredict/internal/ui/components"
	"github.com/abhisek/lipredict/internal/ui/layout"
	"github.com/abhisek/lipredict/internal/ui/theme"
)

const labelWidth = 11

var prompts = [focusCount]string{
	focusIncome:    "Select your income level.",
	focusEducation: "Select your education level.",
	focusParent:    "Are you a parent of a child under 18 living in your home?",
	focusMarried:   "Select your marital status.",
	focusGender:    "Select your gender.",
	focusAge:       "Select your age. Shift+←→ moves by 10.",
	focusPredict:   "Run the model on these inputs.",
	focusLearn:     "See LinkedIn usage patterns in the survey data.",
}

func (f *FormScreen) View(width, height int) string {
	if layout.IsCompactWidth(width) {
		inner := width - 4
		top := lipgloss.NewStyle().Padding(1, 2).Render(f.viewInputs(inner))
		bottom := lipgloss.NewStyle().Padding(0, 2).Render(f.viewResults(inner))
		return lipgloss.JoinVertical(lipgloss.Left, top, bottom)
	}

	leftWidth := width / 2
	if leftWidth > 56 {
		leftWidth = 56
	}
	rightWidth := width - leftWidth - 4

	left := lipgloss.NewStyle().Width(leftWidth).Padding(1, 2).Render(f.viewInputs(leftWidth - 4))
	right := lipgloss.NewStyle().Width(rightWidth).Padding(1, 1).Render(f.viewResults(rightWidth - 2))

	return lipgloss.JoinHorizontal(lipgloss.Top, left, right)
}

func (f *FormScreen) viewInputs(width int) string {
	var b strings.Builder

	b.WriteString(lipgloss.NewStyle().Foreground(theme.Text).Bold(true).Render("Select Your Characteristics"))
	b.WriteString("\n\n")

	for _, s := range f.selectors {
		b.WriteString(s.View(labelWidth))
		b.WriteString("\n")
	}
	b.WriteString(f.age.View(labelWidth, width-labelWidth-4))
	b.WriteString("\n\n")

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Center, f.predict.View(), "  ", f.learn.View()))
	b.WriteString("\n\n")

	b.WriteString(theme.Hint.Width(width).Render(prompts[f.focus]))
	if f.errMsg != "" {
		b.WriteString("\n\n")
		b.WriteString(theme.Negative.Width(width).Render(f.errMsg))
	}
	return b.String()
}

func (f *FormScreen) viewResults(width int) string {
	var sections []string

	bars := make([]components.Bar, len(f.contributions))
	for i, c := range f.contributions {
		bars[i] = components.Bar{Label: c.Feature, Value: c.Strength}
	}
	chart := components.NewBarChart("Top Factors Affecting Your Prediction", bars, contrib.Max(f.contributions), width)
	chart.Empty = "No input contributes more than 0.01."
	sections = append(sections, chart.View())
	sections = append(sections, theme.Hint.Render("This chart updates as you adjust your inputs."))

	if f.outcome != nil {
		res := f.outcome.Result
		classStyle := theme.Negative
		if res.IsUser() {
			classStyle = theme.Positive
		}
		sections = append(sections,
			theme.Body.Render("Predicted Class: ")+classStyle.Render(res.Label())+"\n"+
				theme.Body.Render("Probability of Using LinkedIn: ")+theme.Selected.Render(res.ProbabilityText()))
	} else if f.phase == Predicted {
		sections = append(sections, theme.Hint.Render("Inputs changed. Press p to predict again."))
	}

	switch {
	case f.pending:
		sections = append(sections, theme.Hint.Render("Explaining this prediction..."))
	case f.narrative != nil:
		sections = append(sections, viewNarrative(f.narrative.Headline, f.narrative.Summary, f.narrative.Factors, width))
		if f.insightErr != "" {
			sections = append(sections, theme.Hint.Width(width).Render("LLM unavailable: "+f.insightErr))
		}
	}

	if f.phase == Predicted {
		sections = append(sections, theme.Hint.Render("Press l to learn more about your results."))
	}

	return strings.Join(sections, "\n\n")
}

func viewNarrative(headline, summary string, factors []string, width int) string {
	var b strings.Builder
	b.WriteString(lipgloss.NewStyle().Foreground(theme.Accent).Bold(true).Width(width).Render(headline))
	if summary != "" {
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(width).Render(summary))
	}
	for _, factor := range factors {
		b.WriteString("\n")
		b.WriteString(theme.Body.Width(width).Render(fmt.Sprintf("  • %s", factor)))
	}
	return b.String()
}
