// Package form is the prediction screen: six demographic controls, a live
// contribution chart, the Predict action and the gated Learn more action.
package form

import (
	"context"
	"errors"

	"charm.land/bubbles/v2/key"
	tea "charm.land/bubbletea/v2"
	"go.uber.org/zap"

	"github.com/abhisek/lipredict/internal/contrib"
	"github.com/abhisek/lipredict/internal/features"
	"github.com/abhisek/lipredict/internal/insight"
	"github.com/abhisek/lipredict/internal/predict"
	"github.com/abhisek/lipredict/internal/router"
	"github.com/abhisek/lipredict/internal/screen"
	"github.com/abhisek/lipredict/internal/ui/components"
	"github.com/abhisek/lipredict/internal/ui/layout"
)

// Phase tracks whether the user has asked for a prediction yet. It only
// moves forward.
type Phase int

const (
	AwaitingPrediction Phase = iota
	Predicted
)

// Focus positions, top to bottom.
const (
	focusIncome = iota
	focusEducation
	focusParent
	focusMarried
	focusGender
	focusAge
	focusPredict
	focusLearn
	focusCount
)

type insightMsg struct {
	id        int
	narrative *insight.Narrative
	err       error
}

// Deps are the collaborators the form needs. Population is required;
// History may be nil when no event store is available.
type Deps struct {
	Predictor  *predict.Service
	Insight    *insight.Service
	Population func() screen.Screen
	History    func() screen.Screen
	Logger     *zap.Logger
}

// FormScreen collects selections and shows the prediction.
type FormScreen struct {
	deps Deps
	keys keyMap

	selectors []components.Selector
	age       components.Slider
	predict   components.Button
	learn     components.Button
	focus     int

	phase         Phase
	contributions []contrib.Contribution
	outcome       *predict.Outcome
	narrative     *insight.Narrative
	insightErr    string
	pending       bool
	requestID     int
	errMsg        string
}

var _ screen.Screen = (*FormScreen)(nil)
var _ screen.KeyHintProvider = (*FormScreen)(nil)

// New creates the form with default selections.
func New(deps Deps) *FormScreen {
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	def := features.DefaultSelections()

	f := &FormScreen{
		deps: deps,
		keys: newKeyMap(),
		selectors: []components.Selector{
			components.NewSelector("Income", features.Labels(features.IncomeOptions), def.Income),
			components.NewSelector("Education", features.Labels(features.EducationOptions), def.Education),
			components.NewSelector("Parent", features.Labels(features.ParentOptions), def.Parent),
			components.NewSelector("Marital", features.Labels(features.MaritalOptions), def.Married),
			components.NewSelector("Gender", features.Labels(features.GenderOptions), def.Gender),
		},
		age: components.NewSlider("Age", features.MinAge, features.MaxAge, def.Age),
	}
	f.predict = components.NewButton("Predict", f.runPrediction)
	f.learn = components.NewButton("Learn more", f.openPopulation)
	f.learn.Disabled = true
	f.keys.History.SetEnabled(deps.History != nil)
	f.setFocus(focusIncome)
	f.refreshContributions()
	return f
}

func (f *FormScreen) Init() tea.Cmd {
	return nil
}

func (f *FormScreen) Title() string {
	return "LinkedIn User Prediction"
}

func (f *FormScreen) KeyHints() []layout.KeyHint {
	return layout.HintsFrom(f.keys.Next, components.KeyPrev, f.keys.Predict, f.keys.Learn, f.keys.History)
}

// Phase reports whether a prediction has been made in this screen.
func (f *FormScreen) Phase() Phase { return f.phase }

// Selections returns the current raw form values.
func (f *FormScreen) Selections() features.Selections {
	return features.Selections{
		Income:    f.selectors[focusIncome].Value(),
		Education: f.selectors[focusEducation].Value(),
		Parent:    f.selectors[focusParent].Value(),
		Married:   f.selectors[focusMarried].Value(),
		Gender:    f.selectors[focusGender].Value(),
		Age:       f.age.Value,
	}
}

func (f *FormScreen) Update(msg tea.Msg) (screen.Screen, tea.Cmd) {
	switch msg := msg.(type) {
	case insightMsg:
		if msg.id != f.requestID {
			return f, nil
		}
		f.pending = false
		if msg.err != nil {
			f.deps.Logger.Warn("insight request failed", zap.Error(msg.err))
			f.insightErr = msg.err.Error()
			f.narrative = insight.Fallback(f.insightRequest())
			return f, nil
		}
		f.narrative = msg.narrative
		return f, nil

	case tea.KeyPressMsg:
		switch {
		case key.Matches(msg, f.keys.Next):
			f.setFocus((f.focus + 1) % focusCount)
			return f, nil
		case key.Matches(msg, f.keys.Prev):
			f.setFocus((f.focus + focusCount - 1) % focusCount)
			return f, nil
		case key.Matches(msg, f.keys.Predict):
			return f, f.runPrediction()
		case key.Matches(msg, f.keys.Learn):
			return f, f.openPopulation()
		case key.Matches(msg, f.keys.History):
			if f.deps.History == nil {
				return f, nil
			}
			next := f.deps.History()
			return f, func() tea.Msg { return router.PushScreenMsg{Screen: next} }
		}
		return f, f.updateFocused(msg)
	}
	return f, nil
}

func (f *FormScreen) updateFocused(msg tea.KeyPressMsg) tea.Cmd {
	before := f.Selections()

	var cmd tea.Cmd
	switch {
	case f.focus < focusAge:
		f.selectors[f.focus], cmd = f.selectors[f.focus].Update(msg)
	case f.focus == focusAge:
		f.age, cmd = f.age.Update(msg)
	case f.focus == focusPredict:
		f.predict, cmd = f.predict.Update(msg)
	case f.focus == focusLearn:
		f.learn, cmd = f.learn.Update(msg)
	}

	if f.Selections() != before {
		f.inputsChanged()
	}
	return cmd
}

// inputsChanged clears the shown result; the contribution chart follows the
// inputs but a new class needs another Predict. Phase is left as is.
func (f *FormScreen) inputsChanged() {
	f.errMsg = ""
	f.outcome = nil
	f.narrative = nil
	f.insightErr = ""
	f.pending = false
	f.requestID++
	f.refreshContributions()
}

func (f *FormScreen) refreshContributions() {
	v, err := f.deps.Predictor.Encode(f.Selections())
	if err != nil {
		f.contributions = nil
		f.errMsg = err.Error()
		return
	}
	cs, err := f.deps.Predictor.Contributions(v)
	if err != nil {
		f.contributions = nil
		f.errMsg = err.Error()
		return
	}
	f.contributions = cs
}

func (f *FormScreen) setFocus(i int) {
	f.focus = i
	for j := range f.selectors {
		f.selectors[j].Focused = j == i
	}
	f.age.Focused = i == focusAge
	f.predict.Focused = i == focusPredict
	f.learn.Focused = i == focusLearn
}

func (f *FormScreen) runPrediction() tea.Cmd {
	out, err := f.deps.Predictor.Predict(context.Background(), f.Selections())
	if err != nil {
		var invalid *features.ErrInvalidSelection
		if !errors.As(err, &invalid) {
			f.deps.Logger.Error("prediction failed", zap.Error(err))
		}
		f.errMsg = err.Error()
		return nil
	}

	f.errMsg = ""
	f.outcome = out
	f.contributions = out.Contributions
	f.phase = Predicted
	f.learn.Disabled = false
	f.keys.Learn.SetEnabled(true)

	return f.requestInsight()
}

func (f *FormScreen) insightRequest() insight.Request {
	return insight.Request{
		Selections:    f.outcome.Selections,
		Result:        f.outcome.Result,
		Contributions: f.outcome.Contributions,
	}
}

func (f *FormScreen) requestInsight() tea.Cmd {
	f.requestID++
	f.narrative = nil
	f.insightErr = ""

	req := f.insightRequest()
	if f.deps.Insight == nil || !f.deps.Insight.Enabled() {
		f.narrative = insight.Fallback(req)
		return nil
	}

	f.pending = true
	id := f.requestID
	svc := f.deps.Insight
	return func() tea.Msg {
		n, err := svc.Explain(context.Background(), req)
		return insightMsg{id: id, narrative: n, err: err}
	}
}

func (f *FormScreen) openPopulation() tea.Cmd {
	if f.phase != Predicted {
		return nil
	}
	next := f.deps.Population()
	return func() tea.Msg {
		return router.PushScreenMsg{Screen: next}
	}
}
