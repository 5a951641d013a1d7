package service

import (
	"context"

	"cooling_calculator/internal/models"
	"cooling_calculator/internal/repository"
)

// Cooling predicts how long an object takes to cool and records the result.
type Cooling interface {
	Calculate(s models.CoolingScenario) (CoolingResult, error)
	Record(ctx context.Context, r CoolingResult) error
}

// Estimator derives a cooling constant from material and geometry.
type Estimator interface {
	Unusual(g models.MaterialGeometry) []string
	EstimateK(ctx context.Context, g models.MaterialGeometry) (float64, error)
}

// Journal exposes the cooling log file and the calculation history.
type Journal interface {
	Init() error
	Read() (string, error)
	Clear(ctx context.Context) error
	Summary(ctx context.Context) (HistorySummary, error)
}

type Service struct {
	Cooling
	Estimator
	Journal
}

func NewService(repos *repository.Repository) *Service {
	return &Service{
		Cooling:   NewCoolingService(repos.CoolingLog, repos.History),
		Estimator: NewEstimatorService(repos.History),
		Journal:   NewJournalService(repos.CoolingLog, repos.History),
	}
}
