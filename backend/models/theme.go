package models

import (
	"errors"
	"fmt"
)

var ErrInvalidTheme = errors.New("invalid theme")

// Theme is the active display mode. Only Light and Dark exist; the zero
// value is Light.
type Theme struct {
	dark bool
}

var (
	Light = Theme{}
	Dark  = Theme{dark: true}
)

// ParseTheme accepts "light" or "dark".
func ParseTheme(s string) (Theme, error) {
	switch s {
	case "light":
		return Light, nil
	case "dark":
		return Dark, nil
	}
	return Light, fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}

func (t Theme) IsDark() bool { return t.dark }

// Toggled returns the opposite theme.
func (t Theme) Toggled() Theme {
	return Theme{dark: !t.dark}
}

func (t Theme) String() string {
	if t.dark {
		return "dark"
	}
	return "light"
}

func (t Theme) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

func (t *Theme) UnmarshalText(text []byte) error {
	parsed, err := ParseTheme(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
