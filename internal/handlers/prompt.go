package handlers

import (
	"bufio"
	"errors"
	"io"
	"strings"

	"cooling_calculator/internal/units"
)

// ErrInputClosed is returned when the input stream ends mid-conversation.
var ErrInputClosed = errors.New("input closed")

// Input reads user answers line by line.
type Input struct {
	scanner *bufio.Scanner
}

func NewInput(r io.Reader) *Input {
	return &Input{scanner: bufio.NewScanner(r)}
}

// ReadLine returns the next line without its line ending.
func (in *Input) ReadLine() (string, error) {
	if !in.scanner.Scan() {
		if err := in.scanner.Err(); err != nil {
			return "", err
		}
		return "", ErrInputClosed
	}
	return strings.TrimRight(in.scanner.Text(), "\r"), nil
}

// ConvertFunc turns an answer into a canonical number.
type ConvertFunc func(raw string) (float64, error)

// PromptUntilValid asks the same question until convert accepts the answer.
// Only a closed or failing input ends the loop early.
func (h *Handler) PromptUntilValid(prompt string, convert ConvertFunc) (float64, error) {
	for {
		h.ui.Prompt(prompt)
		raw, err := h.in.ReadLine()
		if err != nil {
			return 0, err
		}
		v, err := convert(raw)
		if err == nil {
			return v, nil
		}
		h.ui.Error("%s", inputErrorMessage(err))
	}
}

// ask prints prompt and returns the trimmed answer.
func (h *Handler) ask(prompt string) (string, error) {
	h.ui.Prompt(prompt)
	raw, err := h.in.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(raw), nil
}

// waitForEnter blocks until the user presses Enter.
func (h *Handler) waitForEnter() error {
	h.ui.Prompt("\nPress Enter to return to the menu...")
	_, err := h.in.ReadLine()
	return err
}

func inputErrorMessage(err error) string {
	var unknown *units.UnknownUnitError
	switch {
	case errors.As(err, &unknown):
		return "Unknown unit '" + unknown.Unit + "'."
	case errors.Is(err, units.ErrFormat):
		return "Invalid format. Example: '500 g' or '0.2 kg'."
	case errors.Is(err, units.ErrNumberFormat):
		return "Invalid number."
	default:
		return "Invalid input: " + err.Error()
	}
}
