// Package predict bundles the encode, classify and rank steps behind one
// entry point for the TUI and the CLI.
package predict

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/abhisek/lipredict/internal/classifier"
	"github.com/abhisek/lipredict/internal/contrib"
	"github.com/abhisek/lipredict/internal/features"
	"github.com/abhisek/lipredict/internal/store"
)

// Outcome is the full answer to one Predict call.
type Outcome struct {
	Selections    features.Selections
	Vector        features.Vector
	Result        classifier.Result
	Contributions []contrib.Contribution
}

// Service scores selections against a loaded model.
type Service struct {
	model     *classifier.Model
	repo      store.EventRepo
	logger    *zap.Logger
	sessionID string
}

// NewService creates a prediction service. repo may be nil, in which case
// predictions are not recorded.
func NewService(model *classifier.Model, repo store.EventRepo, logger *zap.Logger, sessionID string) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{model: model, repo: repo, logger: logger, sessionID: sessionID}
}

// Model returns the underlying classifier.
func (s *Service) Model() *classifier.Model { return s.model }

// SessionID returns the session the service records predictions under.
func (s *Service) SessionID() string { return s.sessionID }

// Encode maps form selections to a feature vector.
func (s *Service) Encode(sel features.Selections) (features.Vector, error) {
	return features.Encode(sel)
}

// Classify scores an already encoded vector.
func (s *Service) Classify(v features.Vector) (classifier.Result, error) {
	return s.model.Classify(v)
}

// Contributions ranks the per-feature strengths of v.
func (s *Service) Contributions(v features.Vector) ([]contrib.Contribution, error) {
	return contrib.Rank(v, s.model.Coefficients())
}

// Predict runs the whole pipeline and records the result. A failed store
// write is logged and does not fail the prediction.
func (s *Service) Predict(ctx context.Context, sel features.Selections) (*Outcome, error) {
	v, err := s.Encode(sel)
	if err != nil {
		return nil, err
	}
	res, err := s.Classify(v)
	if err != nil {
		return nil, fmt.Errorf("classify: %w", err)
	}
	cs, err := s.Contributions(v)
	if err != nil {
		return nil, fmt.Errorf("rank contributions: %w", err)
	}

	s.logger.Debug("prediction",
		zap.Stringer("vector", v),
		zap.Int("class", res.Class),
		zap.Float64("probability", res.Probability),
	)
	s.record(ctx, v, res)

	return &Outcome{
		Selections:    sel,
		Vector:        v,
		Result:        res,
		Contributions: cs,
	}, nil
}

func (s *Service) record(ctx context.Context, v features.Vector, res classifier.Result) {
	if s.repo == nil {
		return
	}
	err := s.repo.AppendPrediction(ctx, store.PredictionEventData{
		SessionID:   s.sessionID,
		Income:      v.Income,
		Education:   v.Education,
		Parent:      v.Parent,
		Married:     v.Married,
		Female:      v.Female,
		Age:         v.Age,
		Class:       res.Class,
		Probability: res.Probability,
	})
	if err != nil {
		s.logger.Warn("failed to record prediction", zap.Error(err))
	}
}
