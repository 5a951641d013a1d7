package handlers

import (
	"context"
	"errors"

	"cooling_calculator/internal/models"
	"cooling_calculator/internal/physics"
	"cooling_calculator/internal/service"
	"cooling_calculator/internal/units"
)

func (h *Handler) calculateCoolingTime(ctx context.Context) error {
	h.ui.Info("\n--- COOLING TIME CALCULATOR ---\n")

	var sc models.CoolingScenario
	for _, field := range []struct {
		prompt string
		dst    *float64
	}{
		{"Initial temperature of object (°C): ", &sc.InitialTempC},
		{"Environment temperature (°C): ", &sc.EnvironmentTempC},
		{"Cooling constant k (1/min): ", &sc.K},
		{"Target temperature you want to reach (°C): ", &sc.TargetTempC},
	} {
		v, err := h.PromptUntilValid(field.prompt, units.Convert)
		if err != nil {
			return err
		}
		*field.dst = v
	}

	res, err := h.services.Cooling.Calculate(sc)
	if err != nil {
		if errors.Is(err, physics.ErrDomain) {
			h.ui.Error("Cannot calculate a cooling time: %v.", err)
			return h.waitForEnter()
		}
		h.reportError("Calculation failed.", "cooling_time_failed", err)
		return h.waitForEnter()
	}

	switch res.Status {
	case physics.HeatingNotCooling:
		h.ui.Warn("Warning: Target temperature is below environment temperature. This implies heating, not cooling.")
		return nil
	case physics.Trivial:
		h.ui.Success("Target temperature equals environment temperature. Cooling time is zero.")
	}

	unit, err := h.chooseTimeUnit()
	if err != nil {
		return err
	}
	res = res.In(unit)

	h.ui.Progress("Calculating")
	h.ui.Pause(1)
	h.ui.Success("The estimated cooling time of your object is %.2f %s.", res.Time, res.Unit)

	h.record(ctx, res)
	return h.waitForEnter()
}

func (h *Handler) chooseTimeUnit() (physics.TimeUnit, error) {
	h.ui.Info("\nChoose output units:")
	h.ui.Info("1. Minutes")
	h.ui.Info("2. Seconds")
	h.ui.Info("3. Hours")

	choice, err := h.ask("Select an option (1-3): ")
	if err != nil {
		return physics.Minutes, err
	}
	unit, ok := physics.ParseTimeUnit(choice)
	if !ok {
		h.ui.Error("Invalid choice. Defaulting to minutes.")
	}
	return unit, nil
}

func (h *Handler) record(ctx context.Context, res service.CoolingResult) {
	err := h.services.Cooling.Record(ctx, res)
	if err == nil {
		return
	}
	if errors.Is(err, service.ErrLogWrite) {
		h.reportError("Could not save the result to the log file.", "log_append_failed", err)
	}
	if errors.Is(err, service.ErrHistoryWrite) {
		h.warnHistory(err)
	}
}
