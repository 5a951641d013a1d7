// Package physics implements Newton's Law of Cooling in its analytic form:
//
//	T(t) = Tenv + (T0 - Tenv) * e^(-k*t)
//
// solved for t, plus the lumped estimate of k from material and geometry.
package physics

import (
	"errors"
	"fmt"
	"math"

	"cooling_calculator/internal/models"
)

// ErrDomain is returned when a scenario has no finite real answer.
var ErrDomain = errors.New("mathematically invalid scenario")

// Status describes how a cooling time was obtained.
type Status int

const (
	// Computed means the time came from the logarithmic formula.
	Computed Status = iota
	// Trivial means target equals environment: zero time by definition.
	Trivial
	// HeatingNotCooling means target is below environment; no value is produced.
	HeatingNotCooling
)

func (s Status) String() string {
	switch s {
	case Computed:
		return "computed"
	case Trivial:
		return "trivial"
	case HeatingNotCooling:
		return "heating_not_cooling"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// CoolingTime returns the minutes needed for an object to cool from
// InitialTempC to TargetTempC in an environment at EnvironmentTempC:
//
//	t = -(1/k) * ln((Ttarget - Tenv) / (T0 - Tenv))
//
// A HeatingNotCooling status is a warning, not an error, and carries no time.
func CoolingTime(s models.CoolingScenario) (float64, Status, error) {
	tEnv, tTarget := s.EnvironmentTempC, s.TargetTempC

	if tTarget == tEnv {
		return 0, Trivial, nil
	}
	// An object already at ambient has no cooling curve at all, whichever
	// side the target lies on.
	if s.InitialTempC == tEnv {
		return 0, Computed, fmt.Errorf("%w: initial temperature equals environment temperature", ErrDomain)
	}
	if tTarget < tEnv {
		return 0, HeatingNotCooling, nil
	}
	if s.K <= 0 {
		return 0, Computed, fmt.Errorf("%w: cooling constant k must be positive, got %g", ErrDomain, s.K)
	}

	ratio := (tTarget - tEnv) / (s.InitialTempC - tEnv)
	if ratio <= 0 {
		return 0, Computed, fmt.Errorf("%w: initial temperature is below environment, object cannot cool to %g °C", ErrDomain, tTarget)
	}
	if ratio > 1 {
		return 0, Computed, fmt.Errorf("%w: target %g °C is above the initial temperature %g °C", ErrDomain, tTarget, s.InitialTempC)
	}

	t := -(1 / s.K) * math.Log(ratio)
	if math.IsNaN(t) || math.IsInf(t, 0) {
		return 0, Computed, fmt.Errorf("%w: cooling time is not finite", ErrDomain)
	}
	// ln(1) is exactly zero; avoid reporting -0.
	if t == 0 {
		t = 0
	}
	return t, Computed, nil
}
