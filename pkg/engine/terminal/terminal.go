// Package terminal reports properties of the controlling terminal.
package terminal

import (
	"os"

	"golang.org/x/term"
)

const (
	DefaultWidth  = 80
	DefaultHeight = 24
)

// GetSize returns the width and height of the terminal on stdout.
// Falls back to defaults if the size cannot be determined.
func GetSize() (width, height int) {
	return SizeOf(os.Stdout)
}

// SizeOf returns the terminal size behind f, or the defaults when f is not a terminal
func SizeOf(f *os.File) (width, height int) {
	width, height, err := term.GetSize(int(f.Fd()))
	if err != nil || width <= 0 || height <= 0 {
		return DefaultWidth, DefaultHeight
	}
	return width, height
}

// IsTerminal reports whether f is attached to a terminal
func IsTerminal(f *os.File) bool {
	return f != nil && term.IsTerminal(int(f.Fd()))
}

// ColourEnabled reports whether coloured output should be written to f.
// NO_COLOR in the environment turns colour off.
func ColourEnabled(f *os.File) bool {
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return IsTerminal(f)
}

// Fits reports whether a block of w columns and h rows fits on stdout
func Fits(w, h int) bool {
	tw, th := GetSize()
	return w <= tw && h <= th
}
