package terminal

import (
	"os"
	"strconv"

	"github.com/mattn/go-isatty"
	"golang.org/x/sys/unix"
)

// Size is the terminal dimensions in character cells.
type Size struct {
	Cols int
	Rows int
}

// DefaultSize is used when neither the tty nor the environment report one.
var DefaultSize = Size{Cols: 80, Rows: 24}

// GetSize returns the current terminal dimensions. It tries
//  1. TIOCGWINSZ on stdout
//  2. TIOCGWINSZ on stderr (stdout may be redirected)
//  3. COLUMNS/LINES
//  4. DefaultSize
func GetSize() Size {
	for _, fd := range []uintptr{os.Stdout.Fd(), os.Stderr.Fd()} {
		if s := sizeFromIoctl(fd); s.Cols > 0 && s.Rows > 0 {
			return s
		}
	}
	return SizeFromEnv(os.Getenv)
}

func sizeFromIoctl(fd uintptr) Size {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return Size{}
	}
	return Size{Cols: int(ws.Col), Rows: int(ws.Row)}
}

// SizeFromEnv reads COLUMNS/LINES through getenv, falling back to
// DefaultSize per dimension.
func SizeFromEnv(getenv func(string) string) Size {
	return Size{
		Cols: envInt(getenv, "COLUMNS", DefaultSize.Cols),
		Rows: envInt(getenv, "LINES", DefaultSize.Rows),
	}
}

// envInt returns the fallback if the variable is unset, empty, or not a
// positive integer.
func envInt(getenv func(string) string, name string, fallback int) int {
	v := getenv(name)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
}

// IsInteractive reports whether f is attached to a terminal (including
// Cygwin/MSYS ptys).
func IsInteractive(f *os.File) bool {
	fd := f.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
