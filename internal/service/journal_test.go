package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"cooling_calculator/internal/models"
	"cooling_calculator/internal/repository"
)

func TestJournalService_ClearThenReadShowsOnlyHeader(t *testing.T) {
	t.Parallel()

	log := &fakeCoolingLog{}
	hist := &fakeHistory{}
	journal := NewJournalService(log, hist)
	cooling := NewCoolingService(log, hist)

	if err := journal.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	res, _ := cooling.Calculate(workedExample)
	_ = cooling.Record(context.Background(), res)

	if err := journal.Clear(context.Background()); err != nil {
		t.Fatalf("Clear: %v", err)
	}
	content, err := journal.Read()
	if err != nil {
		t.Fatalf("Read: %v", err)
	}
	if content != repository.LogHeader {
		t.Fatalf("expected only header, got %q", content)
	}
	if last := hist.events[len(hist.events)-1]; last.Type != models.EventLogCleared {
		t.Fatalf("expected LOG_CLEARED event, got %+v", last)
	}
}

func TestJournalService_ReadMissing(t *testing.T) {
	t.Parallel()

	journal := NewJournalService(&fakeCoolingLog{}, &fakeHistory{})
	if _, err := journal.Read(); !errors.Is(err, repository.ErrLogNotFound) {
		t.Fatalf("expected ErrLogNotFound, got %v", err)
	}
}

func TestJournalService_ClearErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("permission denied")
	hist := &fakeHistory{}
	journal := NewJournalService(&fakeCoolingLog{clearErr: boom}, hist)
	if err := journal.Clear(context.Background()); !errors.Is(err, boom) {
		t.Fatalf("expected clear error, got %v", err)
	}
	if len(hist.events) != 0 {
		t.Fatalf("failed clear must not be recorded")
	}

	journal = NewJournalService(&fakeCoolingLog{}, &fakeHistory{appendErr: boom})
	if err := journal.Clear(context.Background()); !errors.Is(err, ErrHistoryWrite) {
		t.Fatalf("expected ErrHistoryWrite, got %v", err)
	}
}

func TestJournalService_Summary(t *testing.T) {
	t.Parallel()

	t1 := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	t2 := t1.Add(time.Hour)
	hist := &fakeHistory{events: []models.HistoryEvent{
		{Type: models.EventCoolingTime, OccurredAt: t2},
		{Type: models.EventCoolingTime, OccurredAt: t1},
		{Type: models.EventCoolingConstant, OccurredAt: t1},
	}}
	journal := NewJournalService(&fakeCoolingLog{}, hist)

	sum, err := journal.Summary(context.Background())
	if err != nil {
		t.Fatalf("Summary: %v", err)
	}
	if sum.Total != 3 || sum.ByType[models.EventCoolingTime] != 2 || sum.ByType[models.EventCoolingConstant] != 1 {
		t.Fatalf("unexpected summary: %+v", sum)
	}
	if !sum.Last.Equal(t2) {
		t.Fatalf("last=%v; want %v", sum.Last, t2)
	}

	hist.countErr = errors.New("db down")
	if _, err := journal.Summary(context.Background()); err == nil {
		t.Fatalf("expected count error")
	}
}
