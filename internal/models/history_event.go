package models

import "time"

// History event types.
const (
	EventCoolingTime     = "COOLING_TIME"
	EventCoolingConstant = "COOLING_CONSTANT"
	EventLogCleared      = "LOG_CLEARED"
)

// HistoryEvent is a single row of the calculation history.
type HistoryEvent struct {
	EventID     string    `json:"event_id"`
	OccurredAt  time.Time `json:"occurred_at"`
	Type        string    `json:"type"`        // COOLING_TIME | COOLING_CONSTANT | LOG_CLEARED
	Description string    `json:"description"` // human-readable
	Metadata    any       `json:"metadata,omitempty"`
}

// HistoryCount aggregates the history rows of one event type.
type HistoryCount struct {
	Type  string
	Count int
	Last  time.Time
}
