package units

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Input errors. All of them are recoverable: the caller re-prompts.
var (
	ErrFormat       = errors.New("invalid format: expected a number or '<value> <unit>', e.g. '500 g' or '0.2 kg'")
	ErrNumberFormat = errors.New("invalid number")
	ErrUnknownUnit  = errors.New("unknown unit")
)

// UnknownUnitError names the unit that is missing from the conversion table.
type UnknownUnitError struct {
	Unit string
}

func (e *UnknownUnitError) Error() string {
	return fmt.Sprintf("unknown unit '%s'", e.Unit)
}

// Is lets errors.Is(err, ErrUnknownUnit) match any *UnknownUnitError.
func (e *UnknownUnitError) Is(target error) bool {
	return target == ErrUnknownUnit
}

type conversion struct {
	mul float64
	div float64
}

func (c conversion) apply(v float64) float64 { return v * c.mul / c.div }

// conversions maps a normalized unit to the transform that brings a value into
// canonical units (kg, m², J/(kg·K), W/(m²·K)).
var conversions = map[string]conversion{
	// mass
	"kg": {1, 1},
	"g":  {1, 1000},

	// area
	"m2":  {1, 1},
	"cm2": {1, 10000},

	// specific heat capacity
	"j/kgk": {1, 1},
	"j/gk":  {1000, 1},

	// heat transfer coefficient
	"w/m2k":  {1, 1},
	"w/cm2k": {10000, 1}, // cm² -> m²
	"kw/m2k": {1000, 1},  // kW -> W
}

var superscripts = strings.NewReplacer("²", "2", " ", "")

// NormalizeUnit folds a unit token into its table form.
func NormalizeUnit(unit string) string {
	return strings.ToLower(superscripts.Replace(unit))
}

// Convert turns raw user input into a value in canonical units.
// A bare number is returned unchanged.
func Convert(raw string) (float64, error) {
	raw = strings.ToLower(strings.TrimSpace(raw))

	if v, err := strconv.ParseFloat(raw, 64); err == nil {
		if !isFinite(v) {
			return 0, fmt.Errorf("%w: %q", ErrNumberFormat, raw)
		}
		return v, nil
	}

	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return 0, ErrFormat
	}
	valueStr, unit := parts[0], NormalizeUnit(parts[1])

	// The unit is checked first so that input with neither a number nor a
	// known unit reports the unit.
	conv, ok := conversions[unit]
	if !ok {
		return 0, &UnknownUnitError{Unit: unit}
	}

	value, err := strconv.ParseFloat(valueStr, 64)
	if err != nil || !isFinite(value) {
		return 0, fmt.Errorf("%w: %q", ErrNumberFormat, valueStr)
	}
	return conv.apply(value), nil
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
