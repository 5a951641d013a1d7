package handlers

import (
	"context"
	"errors"

	"cooling_calculator/internal/logger"
	"cooling_calculator/internal/service"
)

// Version is shown in the startup banner.
const Version = "1.0"

// ErrExit is returned by the Exit action to end the session.
var ErrExit = errors.New("exit requested")

// Action runs one menu entry.
type Action func(ctx context.Context) error

// MenuItem is one numbered entry of the main menu.
type MenuItem struct {
	Key    string
	Title  string
	Action Action
}

// Handler wires the console to services and logging.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	ui       *Presenter
	in       *Input
	menu     []MenuItem
}

// NewHandler constructs a console handler with dependencies. log may be nil.
func NewHandler(services *service.Service, log *logger.Logger, in *Input, ui *Presenter) *Handler {
	h := &Handler{services: services, log: log, ui: ui, in: in}
	h.menu = h.initMenu()
	return h
}

func (h *Handler) initMenu() []MenuItem {
	return []MenuItem{
		{Key: "1", Title: "Calculate Estimated Cooling Time", Action: h.calculateCoolingTime},
		{Key: "2", Title: "Learn Cooling Time Equation", Action: h.explainEquation},
		{Key: "3", Title: "Estimate k from Material and Size", Action: h.estimateK},
		{Key: "4", Title: "Open Saved Results File", Action: h.viewLog},
		{Key: "5", Title: "Clear Log File", Action: h.clearLog},
		{Key: "6", Title: "About Menu", Action: h.about},
		{Key: "7", Title: "Exit Program", Action: h.exit},
	}
}

// Menu returns the main menu entries in display order.
func (h *Handler) Menu() []MenuItem { return h.menu }

// Banner prints the startup banner.
func (h *Handler) Banner() {
	h.ui.Info(banner, Version)
	h.ui.Pause(2)
}

// Choose prints the main menu and reads a choice, asking again until it is valid.
func (h *Handler) Choose(ctx context.Context) (MenuItem, error) {
	for {
		if err := ctx.Err(); err != nil {
			return MenuItem{}, err
		}
		h.ui.Info("\n+------------------------------+")
		h.ui.Info("|          MAIN MENU           |")
		h.ui.Info("+------------------------------+\n")
		for _, item := range h.menu {
			h.ui.Info("%s. %s", item.Key, item.Title)
		}

		choice, err := h.ask("\nChoose an option (1-" + h.menu[len(h.menu)-1].Key + "): ")
		if err != nil {
			return MenuItem{}, err
		}
		for _, item := range h.menu {
			if item.Key == choice {
				return item, nil
			}
		}
		h.ui.Error("Invalid choice. Please enter a number between 1 and %d.", len(h.menu))
	}
}

func (h *Handler) exit(context.Context) error {
	h.ui.Info("\nExiting program . . .")
	return ErrExit
}

// reportError tells the user what failed and logs the cause.
func (h *Handler) reportError(userMsg, logKey string, err error, kv ...any) {
	if h.log != nil && err != nil {
		fields := append([]any{"err", err}, kv...)
		h.log.Errorw(logKey, fields...)
	}
	h.ui.Error("%s", userMsg)
}

// warnHistory logs a failed history write without bothering the user.
func (h *Handler) warnHistory(err error) {
	if h.log != nil {
		h.log.Warnw("history_write_failed", "err", err)
	}
}

const banner = `
+----------------------------------------+
|      COOLING TIME CALCULATOR v%s      |
|        Newton's Law of Cooling         |
+----------------------------------------+`
