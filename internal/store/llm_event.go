package store

import (
	"context"
	"fmt"
	"time"

	entsql "entgo.io/ent/dialect/sql"
)

type llmRequestRow struct {
	ID        int   `sql:"id"`
	Sequence  int64 `sql:"sequence"`
	Timestamp int64 `sql:"timestamp"`
	LLMRequestEventData
}

func (row llmRequestRow) event() LLMRequestEvent {
	return LLMRequestEvent{
		ID:                  row.ID,
		Sequence:            row.Sequence,
		Timestamp:           fromMillis(row.Timestamp),
		LLMRequestEventData: row.LLMRequestEventData,
	}
}

func (r *eventRepo) AppendLLMRequest(ctx context.Context, data LLMRequestEventData) error {
	seqNum, err := r.seq.Next(ctx)
	if err != nil {
		return err
	}

	err = insert(ctx, r.drv, llmRequestEventsTable, llmRequestColumns[1:],
		seqNum, toMillis(time.Now()), data.Provider, data.Model, data.Purpose,
		data.InputTokens, data.OutputTokens, data.LatencyMs, data.Success,
		data.ErrorMessage, data.RequestBody, data.ResponseBody,
	)
	if err != nil {
		return fmt.Errorf("save LLM request event: %w", err)
	}
	return nil
}

func (r *eventRepo) QueryLLMEvents(ctx context.Context, opts QueryOpts) ([]LLMRequestEvent, error) {
	s := eventSelector(llmRequestEventsTable, llmRequestColumns, opts)
	if opts.Purpose != "" {
		s.Where(entsql.EQ("purpose", opts.Purpose))
	}

	var rows []llmRequestRow
	if err := scanAll(ctx, r.drv, s, &rows); err != nil {
		return nil, fmt.Errorf("query LLM events: %w", err)
	}

	out := make([]LLMRequestEvent, len(rows))
	for i, row := range rows {
		out[i] = row.event()
	}
	return out, nil
}

func (r *eventRepo) GetLLMEvent(ctx context.Context, id int) (*LLMRequestEvent, error) {
	s := builder.Select(llmRequestColumns...).
		From(entsql.Table(llmRequestEventsTable)).
		Where(entsql.EQ("id", id)).
		Limit(1)

	var rows []llmRequestRow
	if err := scanAll(ctx, r.drv, s, &rows); err != nil {
		return nil, fmt.Errorf("get LLM event %d: %w", id, err)
	}
	if len(rows) == 0 {
		return nil, nil
	}
	e := rows[0].event()
	return &e, nil
}
