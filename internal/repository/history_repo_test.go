package repository

import (
	"context"
	"database/sql"
	"errors"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"cooling_calculator/internal/models"
	"cooling_calculator/internal/repository/db"

	"github.com/DATA-DOG/go-sqlmock"
)

func ctx(t *testing.T) context.Context {
	t.Helper()
	c, cancel := context.WithTimeout(context.Background(), 3*time.Second)
	t.Cleanup(cancel)
	return c
}

func newMock(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	conn, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock new: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn, mock
}

func TestHistoryAppend_Success_WithDefaults(t *testing.T) {
	t.Parallel()

	conn, mock := newMock(t)
	repo := NewHistorySQLite(conn)

	mock.ExpectExec(regexp.QuoteMeta(insertHistorySQL)).
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(),
			models.EventCoolingTime, "t=16.09 minutes",
			`{"k":0.1}`,
		).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(ctx(t), models.HistoryEvent{
		Type:        "  cooling_time ",
		Description: "t=16.09 minutes",
		Metadata:    map[string]any{"k": 0.1},
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestHistoryAppend_KeepsGivenIDAndTime(t *testing.T) {
	t.Parallel()

	conn, mock := newMock(t)
	repo := NewHistorySQLite(conn)

	at := time.Date(2025, 3, 4, 7, 8, 9, 0, time.FixedZone("UTC+2", 2*3600))

	mock.ExpectExec("INSERT INTO history_events").
		WithArgs("id-1", "2025-03-04 05:08:09", models.EventLogCleared, "cleared", nil).
		WillReturnResult(sqlmock.NewResult(0, 1))

	err := repo.Append(ctx(t), models.HistoryEvent{
		EventID:     "id-1",
		OccurredAt:  at,
		Type:        models.EventLogCleared,
		Description: "cleared",
	})
	if err != nil {
		t.Fatalf("Append: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestHistoryAppend_DBError(t *testing.T) {
	t.Parallel()

	conn, mock := newMock(t)
	repo := NewHistorySQLite(conn)

	mock.ExpectExec("INSERT INTO history_events").
		WillReturnError(errors.New("disk full"))

	err := repo.Append(ctx(t), models.HistoryEvent{Type: models.EventCoolingConstant, Description: "x"})
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Fatalf("expected error, got %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestHistoryCounts_GroupsByType(t *testing.T) {
	t.Parallel()

	conn, mock := newMock(t)
	repo := NewHistorySQLite(conn)

	last := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	rows := sqlmock.NewRows([]string{"type", "count", "last"}).
		AddRow(models.EventCoolingConstant, 1, "2025-01-01 10:00:00").
		AddRow(models.EventCoolingTime, 4, []byte("2025-01-01 11:30:00")).
		AddRow(models.EventLogCleared, 2, last)

	mock.ExpectQuery(regexp.QuoteMeta(countHistorySQL)).WillReturnRows(rows)

	got, err := repo.Counts(ctx(t))
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	want := []models.HistoryCount{
		{Type: models.EventCoolingConstant, Count: 1, Last: time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)},
		{Type: models.EventCoolingTime, Count: 4, Last: time.Date(2025, 1, 1, 11, 30, 0, 0, time.UTC)},
		{Type: models.EventLogCleared, Count: 2, Last: last},
	}
	if len(got) != len(want) {
		t.Fatalf("want %d rows, got %d: %+v", len(want), len(got), got)
	}
	for i := range want {
		if got[i].Type != want[i].Type || got[i].Count != want[i].Count || !got[i].Last.Equal(want[i].Last) {
			t.Fatalf("row %d: got %+v; want %+v", i, got[i], want[i])
		}
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("mock expectations: %v", err)
	}
}

func TestHistoryCounts_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		setup func(mock sqlmock.Sqlmock)
	}{
		{
			name: "query fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT type, COUNT").WillReturnError(errors.New("db locked"))
			},
		},
		{
			name: "bad timestamp",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT type, COUNT").WillReturnRows(
					sqlmock.NewRows([]string{"type", "count", "last"}).
						AddRow(models.EventCoolingTime, 1, "yesterday"))
			},
		},
		{
			name: "scan fails",
			setup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("SELECT type, COUNT").WillReturnRows(
					sqlmock.NewRows([]string{"type", "count", "last"}).
						AddRow(models.EventCoolingTime, "many", "2025-01-01 10:00:00"))
			},
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			conn, mock := newMock(t)
			tc.setup(mock)

			if _, err := NewHistorySQLite(conn).Counts(ctx(t)); err == nil {
				t.Fatalf("expected error, got nil")
			}
			if err := mock.ExpectationsWereMet(); err != nil {
				t.Fatalf("mock expectations: %v", err)
			}
		})
	}
}

func TestHistorySQLite_AppendThenCounts(t *testing.T) {
	conn, err := db.InitDB(filepath.Join(t.TempDir(), "history.db"))
	if err != nil {
		t.Fatalf("InitDB: %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })

	repo := NewHistorySQLite(conn)
	t1 := time.Date(2025, 5, 6, 7, 8, 9, 0, time.UTC)
	for _, e := range []models.HistoryEvent{
		{Type: models.EventCoolingTime, OccurredAt: t1, Description: "a", Metadata: map[string]any{"k": 0.1}},
		{Type: models.EventCoolingTime, OccurredAt: t1.Add(time.Minute), Description: "b"},
		{Type: models.EventLogCleared, OccurredAt: t1, Description: "c"},
	} {
		if err := repo.Append(ctx(t), e); err != nil {
			t.Fatalf("Append: %v", err)
		}
	}

	got, err := repo.Counts(ctx(t))
	if err != nil {
		t.Fatalf("Counts: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("want 2 types, got %+v", got)
	}
	if got[0].Type != models.EventCoolingTime || got[0].Count != 2 || !got[0].Last.Equal(t1.Add(time.Minute)) {
		t.Fatalf("unexpected cooling time row: %+v", got[0])
	}
	if got[1].Type != models.EventLogCleared || got[1].Count != 1 || !got[1].Last.Equal(t1) {
		t.Fatalf("unexpected log cleared row: %+v", got[1])
	}
}

func TestNewRepository_NilDBDisablesHistory(t *testing.T) {
	t.Parallel()

	repos := NewRepository("cooling_log.txt", nil)
	if _, ok := repos.History.(NopHistory); !ok {
		t.Fatalf("expected NopHistory, got %T", repos.History)
	}
	if err := repos.History.Append(context.Background(), models.HistoryEvent{}); err != nil {
		t.Fatalf("NopHistory.Append: %v", err)
	}
	if counts, err := repos.History.Counts(context.Background()); err != nil || len(counts) != 0 {
		t.Fatalf("NopHistory.Counts = %v, %v; want empty", counts, err)
	}
}
