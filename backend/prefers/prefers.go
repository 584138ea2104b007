// Package prefers answers "does the environment prefer a dark color scheme".
package prefers

import (
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Signal reports a dark-scheme preference. ok is false when the environment
// cannot tell.
type Signal interface {
	PrefersDark() (dark bool, ok bool)
}

type SignalFunc func() (bool, bool)

func (f SignalFunc) PrefersDark() (bool, bool) { return f() }

// Static always reports the given preference.
func Static(dark bool) Signal {
	return SignalFunc(func() (bool, bool) { return dark, true })
}

func Unavailable() Signal {
	return SignalFunc(func() (bool, bool) { return false, false })
}

// FromValue interprets a configured color scheme such as "dark" or
// "light". Any other value is unavailable.
func FromValue(value string) Signal {
	return SignalFunc(func() (bool, bool) {
		switch strings.ToLower(strings.TrimSpace(value)) {
		case "dark":
			return true, true
		case "light":
			return false, true
		}
		return false, false
	})
}

// Terminal asks the attached terminal for its background color. It is
// unavailable when stdout is not a terminal.
func Terminal() Signal {
	return SignalFunc(func() (bool, bool) {
		fd := os.Stdout.Fd()
		if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
			return false, false
		}
		return lipgloss.HasDarkBackground(), true
	})
}

// First returns the answer of the first available signal.
func First(signals ...Signal) Signal {
	return SignalFunc(func() (bool, bool) {
		for _, s := range signals {
			if s == nil {
				continue
			}
			if dark, ok := s.PrefersDark(); ok {
				return dark, true
			}
		}
		return false, false
	})
}
