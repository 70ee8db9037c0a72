package store

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

// eventColumns prefixes cols with the columns every event table shares.
// The sequence orders events of different kinds against each other;
// timestamp is unix milliseconds.
func eventColumns(cols ...*schema.Column) []*schema.Column {
	return append([]*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "sequence", Type: field.TypeInt64, Unique: true},
		{Name: "timestamp", Type: field.TypeInt64},
	}, cols...)
}

// eventTable builds an event table keyed by id with the shared timestamp
// index. The sequence column is already unique and needs no extra index.
func eventTable(name string, cols []*schema.Column, indexes ...*schema.Index) *schema.Table {
	return &schema.Table{
		Name:       name,
		Columns:    cols,
		PrimaryKey: []*schema.Column{cols[0]},
		Indexes: append([]*schema.Index{
			{Name: name + "_timestamp", Columns: []*schema.Column{cols[2]}},
		}, indexes...),
	}
}

var (
	answerColumns = eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "source", Type: field.TypeString},
		&schema.Column{Name: "mode", Type: field.TypeString},
		&schema.Column{Name: "target", Type: field.TypeInt},
		&schema.Column{Name: "correct_equation", Type: field.TypeString},
		&schema.Column{Name: "chosen", Type: field.TypeString},
		&schema.Column{Name: "correct", Type: field.TypeInt},
		&schema.Column{Name: "degraded", Type: field.TypeInt, Default: 0},
		&schema.Column{Name: "time_ms", Type: field.TypeInt64, Default: 0},
	)
	answerEventsTable = eventTable("answer_events", answerColumns,
		&schema.Index{Name: "answer_events_mode", Columns: []*schema.Column{answerColumns[5]}},
	)

	speedRoundEventsTable = eventTable("speed_round_events", eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "score", Type: field.TypeInt},
		&schema.Column{Name: "answered", Type: field.TypeInt},
		&schema.Column{Name: "correct", Type: field.TypeInt},
		&schema.Column{Name: "duration_secs", Type: field.TypeInt},
	))

	bossEventsTable = eventTable("boss_events", eventColumns(
		&schema.Column{Name: "session_id", Type: field.TypeString},
		&schema.Column{Name: "phases_cleared", Type: field.TypeInt},
		&schema.Column{Name: "attempts", Type: field.TypeInt},
		&schema.Column{Name: "defeated", Type: field.TypeInt},
	))

	llmRequestEventsTable = eventTable("llm_request_events", eventColumns(
		&schema.Column{Name: "provider", Type: field.TypeString},
		&schema.Column{Name: "model", Type: field.TypeString},
		&schema.Column{Name: "purpose", Type: field.TypeString},
		&schema.Column{Name: "input_tokens", Type: field.TypeInt},
		&schema.Column{Name: "output_tokens", Type: field.TypeInt},
		&schema.Column{Name: "latency_ms", Type: field.TypeInt64},
		&schema.Column{Name: "success", Type: field.TypeInt},
		&schema.Column{Name: "error_message", Type: field.TypeString, Default: ""},
	))
)

// eventTables lists every event table in creation order.
var eventTables = []*schema.Table{
	answerEventsTable,
	speedRoundEventsTable,
	bossEventsTable,
	llmRequestEventsTable,
}

// migrate creates missing tables, columns and indexes.
func migrate(ctx context.Context, drv dialect.Driver) error {
	m, err := schema.NewMigrate(drv)
	if err != nil {
		return fmt.Errorf("new migrate: %w", err)
	}
	if err := m.Create(ctx, eventTables...); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
