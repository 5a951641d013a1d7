package service

import (
	"context"
	"fmt"
	"time"

	"cooling_calculator/internal/models"
	"cooling_calculator/internal/repository"
)

type JournalService struct {
	coolingLog repository.CoolingLog
	history    repository.HistoryRepo
}

func NewJournalService(coolingLog repository.CoolingLog, history repository.HistoryRepo) *JournalService {
	return &JournalService{coolingLog: coolingLog, history: history}
}

// Init creates the log file with its header on first run.
func (s *JournalService) Init() error {
	return s.coolingLog.Ensure()
}

func (s *JournalService) Read() (string, error) {
	return s.coolingLog.Read()
}

// Clear resets the log file to its header. The history keeps its rows and
// gains a LOG_CLEARED event.
func (s *JournalService) Clear(ctx context.Context) error {
	if err := s.coolingLog.Clear(); err != nil {
		return err
	}
	if err := s.history.Append(ctx, models.HistoryEvent{
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventLogCleared,
		Description: "Cooling log cleared",
	}); err != nil {
		return fmt.Errorf("%w: %w", ErrHistoryWrite, err)
	}
	return nil
}

func (s *JournalService) Summary(ctx context.Context) (HistorySummary, error) {
	counts, err := s.history.Counts(ctx)
	if err != nil {
		return HistorySummary{}, err
	}
	sum := HistorySummary{ByType: make(map[string]int, len(counts))}
	for _, c := range counts {
		sum.Total += c.Count
		sum.ByType[c.Type] += c.Count
		if c.Last.After(sum.Last) {
			sum.Last = c.Last
		}
	}
	return sum, nil
}
