package service

import (
	"context"

	"cooling_calculator/internal/models"
	"cooling_calculator/internal/repository"
)

// fakeCoolingLog is an in-memory repository.CoolingLog.
type fakeCoolingLog struct {
	content  string
	exists   bool
	entries  []models.LogEntry
	ensures  int
	clears   int
	appendEr error
	clearErr error
	readErr  error
}

func (f *fakeCoolingLog) Ensure() error {
	f.ensures++
	if !f.exists {
		f.exists = true
		f.content = repository.LogHeader
	}
	return nil
}

func (f *fakeCoolingLog) Append(e models.LogEntry) error {
	if f.appendEr != nil {
		return f.appendEr
	}
	f.entries = append(f.entries, e)
	f.content += repository.FormatLogEntry(e)
	return nil
}

func (f *fakeCoolingLog) Read() (string, error) {
	if f.readErr != nil {
		return "", f.readErr
	}
	if !f.exists {
		return "", repository.ErrLogNotFound
	}
	return f.content, nil
}

func (f *fakeCoolingLog) Clear() error {
	f.clears++
	if f.clearErr != nil {
		return f.clearErr
	}
	f.exists = true
	f.content = repository.LogHeader
	f.entries = nil
	return nil
}

// fakeHistory is an in-memory repository.HistoryRepo.
type fakeHistory struct {
	events    []models.HistoryEvent
	appendErr error
	countErr  error
}

func (f *fakeHistory) Append(_ context.Context, e models.HistoryEvent) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.events = append(f.events, e)
	return nil
}

func (f *fakeHistory) Counts(_ context.Context) ([]models.HistoryCount, error) {
	if f.countErr != nil {
		return nil, f.countErr
	}
	idx := map[string]int{}
	var out []models.HistoryCount
	for _, e := range f.events {
		i, ok := idx[e.Type]
		if !ok {
			i = len(out)
			idx[e.Type] = i
			out = append(out, models.HistoryCount{Type: e.Type})
		}
		c := &out[i]
		c.Count++
		if e.OccurredAt.After(c.Last) {
			c.Last = e.OccurredAt
		}
	}
	return out, nil
}
