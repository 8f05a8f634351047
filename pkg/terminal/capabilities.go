// Package terminal inspects the environment for terminal capabilities that
// affect rendering. Detection is environment-only: no I/O, no terminal
// queries, and nothing is cached, so every call sees the current env.
package terminal

import (
	"os"
	"strings"

	"github.com/muesli/termenv"
)

// ColorTermEnv is the environment variable that advertises 24-bit colour.
const ColorTermEnv = "COLORTERM"

// DetectColorProfile reports the colour profile advertised by COLORTERM in
// the process environment.
func DetectColorProfile() termenv.Profile {
	return ColorProfileFrom(os.Getenv)
}

// ColorProfileFrom reports the colour profile using getenv as the source of
// environment variables. A COLORTERM value mentioning "truecolor" or "24bit"
// selects termenv.TrueColor; anything else, including an unset variable,
// selects the 256-colour fallback.
func ColorProfileFrom(getenv func(string) string) termenv.Profile {
	if SupportsTrueColor(getenv(ColorTermEnv)) {
		return termenv.TrueColor
	}
	return termenv.ANSI256
}

// SupportsTrueColor reports whether a COLORTERM value indicates 24-bit
// colour support.
func SupportsTrueColor(colorterm string) bool {
	ct := strings.ToLower(colorterm)
	return strings.Contains(ct, "truecolor") || strings.Contains(ct, "24bit")
}
