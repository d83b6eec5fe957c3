package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

// eventRepo implements EventRepo on the ent SQL driver and the global
// sequence counter.
type eventRepo struct {
	drv *entsql.Driver
	seq *sequenceCounter
}

var _ EventRepo = (*eventRepo)(nil)

// predictionRow mirrors a prediction_events row.
type predictionRow struct {
	ID        int   `sql:"id"`
	Sequence  int64 `sql:"sequence"`
	Timestamp int64 `sql:"timestamp"`
	PredictionEventData
}

func (r *eventRepo) AppendPrediction(ctx context.Context, data PredictionEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	err = insert(ctx, r.drv, predictionEventsTable, predictionColumns[1:],
		seqNum, toMillis(time.Now()), data.SessionID,
		data.Income, data.Education, data.Parent, data.Married, data.Female, data.Age,
		data.Class, data.Probability,
	)
	if err != nil {
		return fmt.Errorf("save prediction event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryPredictions(ctx context.Context, opts QueryOpts) ([]PredictionEvent, error) {
	s := eventSelector(predictionEventsTable, predictionColumns, opts)
	if opts.SessionID != "" {
		s.Where(entsql.EQ("session_id", opts.SessionID))
	}

	var rows []predictionRow
	if err := scanAll(ctx, r.drv, s, &rows); err != nil {
		return nil, fmt.Errorf("query prediction events: %w", err)
	}

	out := make([]PredictionEvent, len(rows))
	for i, row := range rows {
		out[i] = PredictionEvent{
			ID:                  row.ID,
			Sequence:            row.Sequence,
			Timestamp:           fromMillis(row.Timestamp),
			PredictionEventData: row.PredictionEventData,
		}
	}
	return out, nil
}
