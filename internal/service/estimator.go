package service

import (
	"context"
	"fmt"
	"time"

	"cooling_calculator/internal/models"
	"cooling_calculator/internal/physics"
	"cooling_calculator/internal/repository"
)

type EstimatorService struct {
	history repository.HistoryRepo
}

func NewEstimatorService(history repository.HistoryRepo) *EstimatorService {
	return &EstimatorService{history: history}
}

func (s *EstimatorService) Unusual(g models.MaterialGeometry) []string {
	return physics.Unusual(g)
}

// EstimateK returns k in 1/min. A history failure is reported as
// ErrHistoryWrite alongside a valid k.
func (s *EstimatorService) EstimateK(ctx context.Context, g models.MaterialGeometry) (float64, error) {
	k, err := physics.CoolingConstant(g)
	if err != nil {
		return 0, err
	}

	if err := s.history.Append(ctx, models.HistoryEvent{
		OccurredAt:  time.Now().UTC(),
		Type:        models.EventCoolingConstant,
		Description: fmt.Sprintf("Cooling constant k = %.5f 1/min", k),
		Metadata: map[string]any{
			"h":             g.H,
			"area":          g.Area,
			"mass":          g.Mass,
			"specific_heat": g.SpecificHeat,
			"k":             k,
		},
	}); err != nil {
		return k, fmt.Errorf("%w: %w", ErrHistoryWrite, err)
	}
	return k, nil
}
