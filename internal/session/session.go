package session

import (
	"context"
	"errors"

	"cooling_calculator/internal/handlers"
	"cooling_calculator/internal/logger"
)

// Menu is the interactive surface a session drives.
type Menu interface {
	Banner()
	Choose(ctx context.Context) (handlers.MenuItem, error)
}

// Session runs the read-choose-dispatch loop until the user exits, the input
// ends, or ctx is cancelled.
type Session struct {
	log *logger.Logger
}

func New(log *logger.Logger) *Session {
	return &Session{log: log}
}

// Run blocks until the session ends. A normal exit or end of input returns nil.
func (s *Session) Run(ctx context.Context, m Menu) error {
	m.Banner()
	for {
		item, err := m.Choose(ctx)
		if err != nil {
			return s.finish(err)
		}

		if s.log != nil {
			s.log.Debugw("menu_action", "key", item.Key, "title", item.Title)
		}
		if err := item.Action(ctx); err != nil {
			if isTerminal(err) {
				return s.finish(err)
			}
			// actions report their own failures; keep the menu alive
			if s.log != nil {
				s.log.Errorw("menu_action_failed", "key", item.Key, "err", err)
			}
		}
	}
}

func isTerminal(err error) bool {
	return errors.Is(err, handlers.ErrExit) ||
		errors.Is(err, handlers.ErrInputClosed) ||
		errors.Is(err, context.Canceled) ||
		errors.Is(err, context.DeadlineExceeded)
}

func (s *Session) finish(err error) error {
	switch {
	case errors.Is(err, handlers.ErrExit), errors.Is(err, handlers.ErrInputClosed):
		return nil
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		if s.log != nil {
			s.log.Infow("session_cancelled", "err", err)
		}
		return nil
	default:
		return err
	}
}
