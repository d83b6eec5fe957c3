package store

import (
	"context"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
)

var builder = entsql.Dialect(dialect.SQLite)

// sequenceCounter hands out one increasing sequence number shared by every
// event table, so a prediction and the LLM call it triggered can be ordered
// against each other. The mutex serializes within the process; the
// RETURNING clause makes the increment atomic at the database level.
type sequenceCounter struct {
	mu  sync.Mutex
	drv *entsql.Driver
}

// newSequenceCounter seeds the counter row if it is missing.
func newSequenceCounter(ctx context.Context, drv *entsql.Driver) (*sequenceCounter, error) {
	query, args := builder.Insert(sequenceTable).
		Columns("id", "next_val").
		Values(1, 1).
		OnConflict(entsql.ConflictColumns("id"), entsql.DoNothing()).
		Query()
	if err := drv.Exec(ctx, query, args, nil); err != nil {
		return nil, fmt.Errorf("seed sequence: %w", err)
	}
	return &sequenceCounter{drv: drv}, nil
}

// Next atomically returns the next sequence number and increments the counter.
func (sc *sequenceCounter) Next(ctx context.Context) (int64, error) {
	sc.mu.Lock()
	defer sc.mu.Unlock()

	query, args := builder.Update(sequenceTable).
		Add("next_val", 1).
		Where(entsql.EQ("id", 1)).
		Returning("next_val").
		Query()
	rows := &entsql.Rows{}
	if err := sc.drv.Query(ctx, query, args, rows); err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	defer rows.Close()

	next, err := entsql.ScanInt64(rows)
	if err != nil {
		return 0, fmt.Errorf("next sequence: %w", err)
	}
	return next - 1, nil
}

func toMillis(t time.Time) int64 { return t.UTC().UnixMilli() }

func fromMillis(ms int64) time.Time { return time.UnixMilli(ms).UTC() }

// eventSelector selects columns from table with the filters every event
// query shares, newest first.
func eventSelector(table string, columns []string, opts QueryOpts) *entsql.Selector {
	s := builder.Select(columns...).From(entsql.Table(table))
	if opts.After > 0 {
		s.Where(entsql.GT("sequence", opts.After))
	}
	if !opts.From.IsZero() {
		s.Where(entsql.GTE("timestamp", toMillis(opts.From)))
	}
	s.OrderBy(entsql.Desc("sequence"))
	if opts.Limit > 0 {
		s.Limit(opts.Limit)
	}
	return s
}

// scanAll runs the selector and scans every row into v, a pointer to a slice.
func scanAll(ctx context.Context, drv *entsql.Driver, s *entsql.Selector, v any) error {
	query, args := s.Query()
	rows := &entsql.Rows{}
	if err := drv.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return entsql.ScanSlice(rows, v)
}

// insert runs a single-row INSERT of columns and values into table.
func insert(ctx context.Context, drv *entsql.Driver, table string, columns []string, values ...any) error {
	query, args := builder.Insert(table).Columns(columns...).Values(values...).Query()
	return drv.Exec(ctx, query, args, nil)
}
