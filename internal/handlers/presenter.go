package handlers

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
)

// ANSI colour codes.
const (
	red    = "\033[91m"
	green  = "\033[92m"
	yellow = "\033[93m"
	cyan   = "\033[96m"
	reset  = "\033[0m"
)

// Colour modes accepted in config.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// Presenter owns everything about how text reaches the terminal: colour and
// pacing. It never computes anything.
type Presenter struct {
	out   io.Writer
	color bool
	pace  time.Duration
	sleep func(time.Duration)
}

// NewPresenter builds a presenter for out. With ColorAuto, colour is used only
// when out is a terminal. A zero pace disables the pauses.
func NewPresenter(out io.Writer, colorMode string, pace time.Duration) *Presenter {
	return &Presenter{
		out:   out,
		color: useColor(out, colorMode),
		pace:  pace,
		sleep: time.Sleep,
	}
}

func useColor(out io.Writer, mode string) bool {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case ColorAlways:
		return true
	case ColorNever:
		return false
	}
	f, ok := out.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (p *Presenter) paint(code, s string) string {
	if !p.color {
		return s
	}
	return code + s + reset
}

func (p *Presenter) line(code, format string, args ...any) {
	fmt.Fprintln(p.out, p.paint(code, fmt.Sprintf(format, args...)))
}

func (p *Presenter) Info(format string, args ...any)    { p.line(cyan, format, args...) }
func (p *Presenter) Success(format string, args ...any) { p.line(green, format, args...) }
func (p *Presenter) Warn(format string, args ...any)    { p.line(yellow, format, args...) }
func (p *Presenter) Error(format string, args ...any)   { p.line(red, format, args...) }

// Plain writes s without colour or a trailing newline.
func (p *Presenter) Plain(s string) { fmt.Fprint(p.out, s) }

// Prompt writes a prompt without a trailing newline.
func (p *Presenter) Prompt(s string) { fmt.Fprint(p.out, p.paint(cyan, s)) }

// Pause sleeps for n pacing steps.
func (p *Presenter) Pause(n int) {
	if p.pace <= 0 || n <= 0 {
		return
	}
	p.sleep(time.Duration(n) * p.pace)
}

// Progress prints "Calculating." with growing dots, one pacing step apart.
func (p *Presenter) Progress(label string) {
	for i := 1; i <= 3; i++ {
		fmt.Fprintln(p.out, label+strings.Repeat(".", i))
		p.Pause(1)
	}
}
