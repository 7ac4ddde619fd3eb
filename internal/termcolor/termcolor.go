// Package termcolor decides whether table output should be colored and
// provides the small set of ANSI styles the table writer uses.
package termcolor

import (
	"fmt"
	"os"
	"strings"

	"golang.org/x/term"
)

type ColorMode int

const (
	ModeAuto ColorMode = iota
	ModeAlways
	ModeNever
)

func (m ColorMode) String() string {
	switch m {
	case ModeAlways:
		return "always"
	case ModeNever:
		return "never"
	default:
		return "auto"
	}
}

func ParseMode(v string) (ColorMode, error) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "auto":
		return ModeAuto, nil
	case "always":
		return ModeAlways, nil
	case "never":
		return ModeNever, nil
	default:
		return ModeAuto, fmt.Errorf("unknown color mode: %s", v)
	}
}

// Enabled reports whether colors should be emitted, honoring the usual
// environment conventions before falling back to a TTY check.
//
// Priority order (first match wins):
//  1. ModeAlways / ModeNever as requested.
//  2. TERM=dumb or NO_COLOR disable colors.
//  3. CLICOLOR=0 disables, CLICOLOR_FORCE / FORCE_COLOR enable.
//  4. Otherwise colors are emitted only when stdout is a TTY.
func Enabled(mode ColorMode, stdout *os.File, getenv func(string) string) bool {
	switch mode {
	case ModeAlways:
		return true
	case ModeNever:
		return false
	}
	if getenv == nil {
		getenv = os.Getenv
	}
	if strings.ToLower(strings.TrimSpace(getenv("TERM"))) == "dumb" {
		return false
	}
	if strings.TrimSpace(getenv("NO_COLOR")) != "" {
		return false
	}
	if strings.TrimSpace(getenv("CLICOLOR")) == "0" {
		return false
	}
	if forceColor(getenv("CLICOLOR_FORCE")) || forceColor(getenv("FORCE_COLOR")) {
		return true
	}
	return isTerminal(stdout)
}

const (
	ansiReset  = "\x1b[0m"
	ansiBold   = "\x1b[1m"
	ansiYellow = "\x1b[33m"
	ansiCyan   = "\x1b[36m"
	ansiDim    = "\x1b[2m"
)

// Term paints a matched warning term for the table output.
func Term(s string, enabled bool) string {
	if !enabled || s == "" {
		return s
	}
	return ansiBold + ansiYellow + s + ansiReset
}

// Location paints a file:line locator.
func Location(s string, enabled bool) string {
	if !enabled || s == "" {
		return s
	}
	return ansiCyan + s + ansiReset
}

// Faint paints secondary detail such as the language column.
func Faint(s string, enabled bool) string {
	if !enabled || s == "" {
		return s
	}
	return ansiDim + s + ansiReset
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd()))
}

func forceColor(v string) bool {
	v = strings.TrimSpace(v)
	return v != "" && v != "0"
}
