package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const (
	predictionEventsTable = "prediction_events"
	llmRequestEventsTable = "llm_request_events"
	sequenceTable         = "global_sequence"
)

// Each event table leads with id, sequence and timestamp; sequence is the
// cross-table order. Timestamps are unix milliseconds (UTC).
func newEventTable(name string, columns ...*schema.Column) *schema.Table {
	t := schema.NewTable(name).
		AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt, Increment: true}).
		AddColumn(&schema.Column{Name: "sequence", Type: field.TypeInt64, Unique: true}).
		AddColumn(&schema.Column{Name: "timestamp", Type: field.TypeInt64})
	for _, c := range columns {
		t.AddColumn(c)
	}
	return t
}

func predictionEventsSchema() *schema.Table {
	return newEventTable(predictionEventsTable,
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "income", Type: field.TypeInt},
		&schema.Column{Name: "education", Type: field.TypeInt},
		&schema.Column{Name: "parent", Type: field.TypeInt},
		&schema.Column{Name: "married", Type: field.TypeInt},
		&schema.Column{Name: "female", Type: field.TypeInt},
		&schema.Column{Name: "age", Type: field.TypeInt},
		&schema.Column{Name: "class", Type: field.TypeInt},
		&schema.Column{Name: "probability", Type: field.TypeFloat64},
	).
		AddIndex("predictionevent_session_id", false, []string{"session_id"}).
		AddIndex("predictionevent_timestamp", false, []string{"timestamp"})
}

func llmRequestEventsSchema() *schema.Table {
	return newEventTable(llmRequestEventsTable,
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64, Default: 0},
		&schema.Column{Name: "success", Type: field.TypeBool},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "request_body", Type: field.TypeString, Default: ""},
		&schema.Column{Name: "response_body", Type: field.TypeString, Default: ""},
	).
		AddIndex("llmrequestevent_purpose", false, []string{"purpose"})
}

// The counter table holds a single row with id 1.
func sequenceSchema() *schema.Table {
	return schema.NewTable(sequenceTable).
		AddPrimary(&schema.Column{Name: "id", Type: field.TypeInt}).
		AddColumn(&schema.Column{Name: "next_val", Type: field.TypeInt64, Default: 1})
}

// Column lists used by the selectors, in table order.
var (
	predictionColumns = columnNames(predictionEventsSchema())
	llmRequestColumns = columnNames(llmRequestEventsSchema())
)

func columnNames(t *schema.Table) []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// migrate creates missing tables, columns and indexes. Tables are built
// fresh on every call since the migrator links them in place.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("create migrator: %w", err)
	}
	return m.Create(ctx, predictionEventsSchema(), llmRequestEventsSchema(), sequenceSchema())
}
