package physics

import (
	"fmt"
	"math"

	"cooling_calculator/internal/models"
)

// Plausibility limits above which inputs are reported as unusually high.
const (
	MaxPlausibleH    = 5000.0 // W/(m²·K)
	MaxPlausibleArea = 50.0   // m²
	MaxPlausibleMass = 500.0  // kg
)

// CoolingConstant estimates k = h*A / (m*c).
//
// The result is reported in 1/min by convention even though strict SI inputs
// give 1/s. The formula is kept as is; see DESIGN.md.
func CoolingConstant(g models.MaterialGeometry) (float64, error) {
	if g.Mass <= 0 {
		return 0, fmt.Errorf("%w: mass must be positive, got %g kg", ErrDomain, g.Mass)
	}
	if g.SpecificHeat <= 0 {
		return 0, fmt.Errorf("%w: specific heat capacity must be positive, got %g J/(kg·K)", ErrDomain, g.SpecificHeat)
	}
	k := g.H * g.Area / (g.Mass * g.SpecificHeat)
	if math.IsNaN(k) || math.IsInf(k, 0) {
		return 0, fmt.Errorf("%w: cooling constant is not finite", ErrDomain)
	}
	return k, nil
}

// Unusual lists the inputs that exceed the plausibility limits.
// An empty result means nothing needs confirming.
func Unusual(g models.MaterialGeometry) []string {
	var flagged []string
	if g.H > MaxPlausibleH {
		flagged = append(flagged, fmt.Sprintf("h = %g W/(m²·K) exceeds %g", g.H, MaxPlausibleH))
	}
	if g.Area > MaxPlausibleArea {
		flagged = append(flagged, fmt.Sprintf("A = %g m² exceeds %g", g.Area, MaxPlausibleArea))
	}
	if g.Mass > MaxPlausibleMass {
		flagged = append(flagged, fmt.Sprintf("m = %g kg exceeds %g", g.Mass, MaxPlausibleMass))
	}
	return flagged
}
