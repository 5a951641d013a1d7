package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"cooling_calculator/internal/models"

	"github.com/google/uuid"
)

type HistorySQLite struct {
	db *sql.DB
}

func NewHistorySQLite(db *sql.DB) *HistorySQLite { return &HistorySQLite{db: db} }

const (
	sqliteTimestampLayout = "2006-01-02 15:04:05"

	insertHistorySQL = `
		INSERT INTO history_events (id, occurred_at, type, message, meta)
		VALUES (?, ?, ?, ?, ?)
	`
	countHistorySQL = `
		SELECT type, COUNT(*), MAX(occurred_at)
		FROM history_events
		GROUP BY type
		ORDER BY type
	`
)

// Append inserts a new event. If EventID or OccurredAt are empty, they're set.
func (r *HistorySQLite) Append(ctx context.Context, e models.HistoryEvent) error {
	if e.EventID == "" {
		e.EventID = uuid.NewString()
	}
	if e.OccurredAt.IsZero() {
		e.OccurredAt = time.Now().UTC()
	} else {
		e.OccurredAt = e.OccurredAt.UTC()
	}

	var metaPtr *string
	if e.Metadata != nil {
		if b, err := json.Marshal(e.Metadata); err == nil {
			s := string(b)
			metaPtr = &s
		}
	}

	_, err := r.db.ExecContext(ctx, insertHistorySQL,
		e.EventID,
		e.OccurredAt.Format(sqliteTimestampLayout),
		strings.ToUpper(strings.TrimSpace(e.Type)),
		e.Description,
		metaPtr,
	)
	return err
}

// Counts aggregates the history per event type, ordered by type.
func (r *HistorySQLite) Counts(ctx context.Context) ([]models.HistoryCount, error) {
	rows, err := r.db.QueryContext(ctx, countHistorySQL)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []models.HistoryCount
	for rows.Next() {
		var (
			c    models.HistoryCount
			last any
		)
		if err := rows.Scan(&c.Type, &c.Count, &last); err != nil {
			return nil, err
		}
		if c.Last, err = parseHistoryTime(last); err != nil {
			return nil, fmt.Errorf("parse last occurrence of %s: %w", c.Type, err)
		}
		out = append(out, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return out, nil
}

// parseHistoryTime reads an aggregated occurred_at. MAX() loses the column
// type, so the driver may hand back the stored text instead of a time.
func parseHistoryTime(v any) (time.Time, error) {
	switch t := v.(type) {
	case time.Time:
		return t.UTC(), nil
	case string:
		return time.ParseInLocation(sqliteTimestampLayout, t, time.UTC)
	case []byte:
		return time.ParseInLocation(sqliteTimestampLayout, string(t), time.UTC)
	case nil:
		return time.Time{}, nil
	default:
		return time.Time{}, fmt.Errorf("unexpected type %T", v)
	}
}

// NopHistory discards events. It is used when history is disabled.
type NopHistory struct{}

func (NopHistory) Append(context.Context, models.HistoryEvent) error { return nil }

func (NopHistory) Counts(context.Context) ([]models.HistoryCount, error) { return nil, nil }
