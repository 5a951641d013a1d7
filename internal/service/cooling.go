package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cooling_calculator/internal/models"
	"cooling_calculator/internal/physics"
	"cooling_calculator/internal/repository"
)

type CoolingService struct {
	coolingLog repository.CoolingLog
	history    repository.HistoryRepo
}

func NewCoolingService(coolingLog repository.CoolingLog, history repository.HistoryRepo) *CoolingService {
	return &CoolingService{coolingLog: coolingLog, history: history}
}

// Calculate runs the cooling-time formula. The result is in minutes; use
// CoolingResult.In for another unit. A HeatingNotCooling status comes back
// with a nil error and no time.
func (s *CoolingService) Calculate(sc models.CoolingScenario) (CoolingResult, error) {
	minutes, status, err := physics.CoolingTime(sc)
	if err != nil {
		return CoolingResult{}, err
	}
	res := CoolingResult{Scenario: sc, Status: status, Unit: physics.Minutes}
	if status == physics.HeatingNotCooling {
		return res, nil
	}
	res.Minutes = minutes
	res.Time = minutes
	return res, nil
}

// Record appends r to the cooling log and the history.
// Heating scenarios are never recorded.
func (s *CoolingService) Record(ctx context.Context, r CoolingResult) error {
	if r.Status == physics.HeatingNotCooling {
		return nil
	}
	now := time.Now()

	var errs []error
	if err := s.coolingLog.Append(models.LogEntry{
		Timestamp: now,
		Scenario:  r.Scenario,
		Time:      r.Time,
		Unit:      r.Unit.String(),
	}); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrLogWrite, err))
	}

	if err := s.history.Append(ctx, models.HistoryEvent{
		OccurredAt:  now.UTC(),
		Type:        models.EventCoolingTime,
		Description: fmt.Sprintf("Cooling time %.2f %s", r.Time, r.Unit),
		Metadata: map[string]any{
			"initial_temp_c":     r.Scenario.InitialTempC,
			"environment_temp_c": r.Scenario.EnvironmentTempC,
			"k":                  r.Scenario.K,
			"target_temp_c":      r.Scenario.TargetTempC,
			"minutes":            r.Minutes,
			"status":             r.Status.String(),
		},
	}); err != nil {
		errs = append(errs, fmt.Errorf("%w: %w", ErrHistoryWrite, err))
	}

	return errors.Join(errs...)
}
