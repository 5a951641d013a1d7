package handlers

import (
	"context"
	"errors"
	"strings"

	"cooling_calculator/internal/models"
	"cooling_calculator/internal/repository"
	"cooling_calculator/internal/service"
)

const historyTimeLayout = "2006-01-02 15:04:05"

func (h *Handler) viewLog(ctx context.Context) error {
	content, err := h.services.Journal.Read()
	switch {
	case errors.Is(err, repository.ErrLogNotFound):
		h.ui.Error("\nNo log file found. Run a calculation first.")
		return h.waitForEnter()
	case err != nil:
		h.reportError("\nCould not read the log file.", "log_read_failed", err)
		return h.waitForEnter()
	}

	h.ui.Info("\n----- Saved Cooling Log -----\n")
	if strings.TrimSpace(content) == "" {
		h.ui.Warn("Log file is empty.")
	} else {
		h.ui.Plain(content)
	}
	h.ui.Info("\n-----------------------------\n")

	h.showHistorySummary(ctx)
	return h.waitForEnter()
}

func (h *Handler) showHistorySummary(ctx context.Context) {
	sum, err := h.services.Journal.Summary(ctx)
	if err != nil {
		if h.log != nil {
			h.log.Warnw("history_summary_failed", "err", err)
		}
		return
	}
	if sum.Total == 0 {
		return
	}
	h.ui.Info("History: %d records (%d cooling times, %d k estimates, %d clears), last at %s UTC",
		sum.Total,
		sum.ByType[models.EventCoolingTime],
		sum.ByType[models.EventCoolingConstant],
		sum.ByType[models.EventLogCleared],
		sum.Last.UTC().Format(historyTimeLayout),
	)
}

func (h *Handler) clearLog(ctx context.Context) error {
	err := h.services.Journal.Clear(ctx)
	switch {
	case errors.Is(err, service.ErrHistoryWrite):
		h.warnHistory(err)
	case err != nil:
		h.reportError("\nCould not clear the log file.", "log_clear_failed", err)
		return h.waitForEnter()
	}
	h.ui.Success("\nLog file cleared.")
	return h.waitForEnter()
}
