package repository

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"cooling_calculator/internal/models"
)

// LogHeader opens every cooling log file.
const LogHeader = "=== COOLING LOG FILE ===\n\n"

const (
	logTimestampLayout = "2006-01-02 15:04:05.000000"
	logFileMode        = 0o644
)

// ErrLogNotFound is returned by Read when the log file does not exist.
var ErrLogNotFound = errors.New("no log file found")

// LogFile is the plain-text, append-only cooling log.
// Every call opens and closes the file; nothing is held between calls.
type LogFile struct {
	path string
	open func(name string, flag int, perm os.FileMode) (logWriter, error)
}

type logWriter interface {
	WriteString(s string) (int, error)
	Close() error
}

func NewLogFile(path string) *LogFile { return &LogFile{path: path, open: openOSFile} }

func openOSFile(name string, flag int, perm os.FileMode) (logWriter, error) {
	f, err := os.OpenFile(name, flag, perm)
	if err != nil {
		return nil, err
	}
	return f, nil
}

// Ensure creates the file with its header if it is missing.
func (l *LogFile) Ensure() (err error) {
	f, err := l.open(l.path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, logFileMode)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return nil
		}
		return fmt.Errorf("create log file %q: %w", l.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close log file %q: %w", l.path, cerr)
		}
	}()

	if _, err := f.WriteString(LogHeader); err != nil {
		return fmt.Errorf("write log header: %w", err)
	}
	return nil
}

// Append writes one entry at the end of the file. A failed close is reported
// too, since some filesystems only surface write errors there.
func (l *LogFile) Append(e models.LogEntry) (err error) {
	f, err := l.open(l.path, os.O_WRONLY|os.O_APPEND|os.O_CREATE, logFileMode)
	if err != nil {
		return fmt.Errorf("open log file %q: %w", l.path, err)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("close log file %q: %w", l.path, cerr)
		}
	}()

	if _, err := f.WriteString(FormatLogEntry(e)); err != nil {
		return fmt.Errorf("append log entry: %w", err)
	}
	return nil
}

// Read returns the whole file content.
func (l *LogFile) Read() (string, error) {
	b, err := os.ReadFile(l.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", ErrLogNotFound
		}
		return "", fmt.Errorf("read log file %q: %w", l.path, err)
	}
	return string(b), nil
}

// Clear truncates the file back to the header.
func (l *LogFile) Clear() error {
	if err := os.WriteFile(l.path, []byte(LogHeader), logFileMode); err != nil {
		return fmt.Errorf("clear log file %q: %w", l.path, err)
	}
	return nil
}

// FormatLogEntry renders e in the log file layout.
func FormatLogEntry(e models.LogEntry) string {
	var b strings.Builder
	b.WriteString("=====================================\n")
	b.WriteString(" COOLING CALCULATION LOG ENTRY\n")
	b.WriteString("=====================================\n")
	fmt.Fprintf(&b, "Timestamp:                 %s\n", e.Timestamp.Format(logTimestampLayout))
	fmt.Fprintf(&b, "Initial Temperature:       %s °C\n", formatNumber(e.Scenario.InitialTempC))
	fmt.Fprintf(&b, "Environment Temperature:   %s °C\n", formatNumber(e.Scenario.EnvironmentTempC))
	fmt.Fprintf(&b, "Cooling Constant k:        %s 1/min\n", formatNumber(e.Scenario.K))
	fmt.Fprintf(&b, "Target Temperature:        %s °C\n", formatNumber(e.Scenario.TargetTempC))
	fmt.Fprintf(&b, "Estimated Cooling Time:    %.2f %s\n", e.Time, e.Unit)
	b.WriteString("-------------------------------------\n\n")
	return b.String()
}

// formatNumber keeps at least one decimal so whole values read as 150.0.
func formatNumber(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}
