package repository

import (
	"context"
	"database/sql"

	"cooling_calculator/internal/models"
)

type CoolingLog interface {
	Ensure() error
	Append(e models.LogEntry) error
	Read() (string, error)
	Clear() error
}

type HistoryRepo interface {
	Append(ctx context.Context, e models.HistoryEvent) error
	Counts(ctx context.Context) ([]models.HistoryCount, error)
}

type Repository struct {
	CoolingLog CoolingLog
	History    HistoryRepo
}

// NewRepository wires the log file at logPath. A nil db disables history.
func NewRepository(logPath string, db *sql.DB) *Repository {
	var history HistoryRepo = NopHistory{}
	if db != nil {
		history = NewHistorySQLite(db)
	}
	return &Repository{
		CoolingLog: NewLogFile(logPath),
		History:    history,
	}
}
