package handlers

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"cooling_calculator/internal/models"
	"cooling_calculator/internal/physics"
	"cooling_calculator/internal/service"
	"cooling_calculator/internal/units"
)

func (h *Handler) estimateK(ctx context.Context) error {
	h.ui.Info("\n--- ESTIMATE K FROM MATERIAL & SIZE ---\n")

	var g models.MaterialGeometry
	c, err := h.chooseSpecificHeat()
	if err != nil {
		return err
	}
	g.SpecificHeat = c

	for _, field := range []struct {
		prompt string
		dst    *float64
	}{
		{"Enter convective heat transfer coefficient h (W/m2K, W/cm2K, or kW/m2K): ", &g.H},
		{"Enter surface area (m2 or cm2): ", &g.Area},
		{"Enter mass (kg or g): ", &g.Mass},
	} {
		v, err := h.PromptUntilValid(field.prompt, units.Convert)
		if err != nil {
			return err
		}
		*field.dst = v
	}

	if flagged := h.services.Estimator.Unusual(g); len(flagged) > 0 {
		h.ui.Warn("\nWarning: One or more values are unusually high.")
		for _, f := range flagged {
			h.ui.Warn("  - %s", f)
		}
		answer, err := h.ask("Continue anyway? (y/n): ")
		if err != nil {
			return err
		}
		if strings.ToLower(answer) != "y" {
			h.ui.Error("Calculation cancelled.")
			return nil
		}
	}

	h.ui.Info("\nCalculating cooling constant k...")
	k, err := h.services.Estimator.EstimateK(ctx, g)
	switch {
	case errors.Is(err, physics.ErrDomain):
		h.ui.Error("Cannot estimate k: %v.", err)
		return h.waitForEnter()
	case errors.Is(err, service.ErrHistoryWrite):
		h.warnHistory(err)
	case err != nil:
		h.reportError("Estimation failed.", "estimate_k_failed", err)
		return h.waitForEnter()
	}

	h.ui.Success("\nEstimated cooling constant k = %.5f 1/min", k)
	return h.waitForEnter()
}

// chooseSpecificHeat offers the material presets; anything but a preset
// number asks for a custom value.
func (h *Handler) chooseSpecificHeat() (float64, error) {
	h.ui.Info("Choose a material:\n")
	for i, m := range models.Materials {
		h.ui.Info("%d. %s (c = %g J/kgK)", i+1, m.Name, m.SpecificHeat)
	}
	custom := len(models.Materials) + 1
	h.ui.Info("%d. Custom", custom)

	choice, err := h.ask(fmt.Sprintf("Select an option (1-%d): ", custom))
	if err != nil {
		return 0, err
	}
	if n, err := strconv.Atoi(choice); err == nil && n >= 1 && n <= len(models.Materials) {
		m := models.Materials[n-1]
		h.ui.Success("Using preset: %s (%g J/kgK)", m.Name, m.SpecificHeat)
		return m.SpecificHeat, nil
	}
	if choice != strconv.Itoa(custom) {
		h.ui.Error("Invalid choice. Defaulting to custom.")
	}
	h.ui.Success("Custom material selected.")
	return h.PromptUntilValid("Enter specific heat capacity (J/kgK or J/gK): ", units.Convert)
}
