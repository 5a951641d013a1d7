package service

import (
	"errors"
	"time"

	"cooling_calculator/internal/models"
	"cooling_calculator/internal/physics"
)

// Record failures. History is secondary: callers usually only warn on it.
var (
	ErrLogWrite     = errors.New("failed to write cooling log")
	ErrHistoryWrite = errors.New("failed to write calculation history")
)

// CoolingResult is a finished cooling-time calculation.
type CoolingResult struct {
	Scenario models.CoolingScenario
	Status   physics.Status
	Minutes  float64          // canonical
	Unit     physics.TimeUnit // requested output unit
	Time     float64          // Minutes expressed in Unit
}

// In returns r expressed in unit.
func (r CoolingResult) In(unit physics.TimeUnit) CoolingResult {
	r.Unit = unit
	r.Time = unit.FromMinutes(r.Minutes)
	return r
}

// HistorySummary counts recorded history events.
type HistorySummary struct {
	Total  int
	ByType map[string]int
	Last   time.Time
}
