package store

import (
	"context"
	"time"
)

// QueryOpts configures event queries with filtering and pagination.
type QueryOpts struct {
	Limit     int       // max results (0 = unlimited)
	After     int64     // sequence > After
	From      time.Time // timestamp >= From
	SessionID string    // prediction events only
	Purpose   string    // LLM events only
}

// PredictionEventData captures one classified form submission.
type PredictionEventData struct {
	SessionID   string  `sql:"session_id"`
	Income      int     `sql:"income"`
	Education   int     `sql:"education"`
	Parent      int     `sql:"parent"`
	Married     int     `sql:"married"`
	Female      int     `sql:"female"`
	Age         int     `sql:"age"`
	Class       int     `sql:"class"`
	Probability float64 `sql:"probability"`
}

// PredictionEvent is a stored prediction with its ordering metadata.
type PredictionEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	PredictionEventData
}

// LLMRequestEventData captures the data for a single LLM request event.
type LLMRequestEventData struct {
	Provider     string `sql:"provider"`
	Model        string `sql:"model"`
	Purpose      string `sql:"purpose"`
	InputTokens  int    `sql:"input_tokens"`
	OutputTokens int    `sql:"output_tokens"`
	LatencyMs    int64  `sql:"latency_ms"`
	Success      bool   `sql:"success"`
	ErrorMessage string `sql:"error_message"`
	RequestBody  string `sql:"request_body"`
	ResponseBody string `sql:"response_body"`
}

// LLMRequestEvent is a stored LLM call.
type LLMRequestEvent struct {
	ID        int
	Sequence  int64
	Timestamp time.Time
	LLMRequestEventData
}

// EventRepo provides append and query access to domain events.
type EventRepo interface {
	// AppendPrediction records a classified submission.
	AppendPrediction(ctx context.Context, data PredictionEventData) error

	// QueryPredictions returns prediction events, newest first.
	QueryPredictions(ctx context.Context, opts QueryOpts) ([]PredictionEvent, error)

	// AppendLLMRequest records an LLM API call event.
	AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error

	// QueryLLMEvents returns LLM request events, newest first.
	QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error)

	// GetLLMEvent returns one LLM event by ID, or nil if it does not exist.
	GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error)
}
