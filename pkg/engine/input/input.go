package input

import (
	"bufio"
	"errors"
	"io"
	"os"

	"golang.org/x/term"
)

// ErrInterrupt is returned when Ctrl+C is read while the terminal is raw
var ErrInterrupt = errors.New("interrupted")

// KeyReader reads single keypresses, decoding arrow key escape sequences
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// ReadCode returns the next key code. Printable keys are returned as
// themselves ("w", "?"), arrows as "arrow_up" and friends. Unknown escape
// sequences and control bytes come back as "".
func (k *KeyReader) ReadCode() (string, error) {
	b, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}

	switch {
	case b == 3:
		return "", ErrInterrupt
	case b == 0x1b:
		return k.readEscape()
	case b == '\r' || b == '\n':
		return "enter", nil
	case b >= 32 && b < 127:
		return string(b), nil
	}
	return "", nil
}

// readEscape handles both CSI (ESC [) and SS3 (ESC O) arrow sequences
func (k *KeyReader) readEscape() (string, error) {
	if k.r.Buffered() == 0 {
		return "escape", nil
	}
	b2, err := k.r.ReadByte()
	if err != nil {
		return "escape", nil
	}
	if b2 != '[' && b2 != 'O' {
		return "", nil
	}
	b3, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}
	return "", nil
}

// MakeRaw puts stdin into raw mode and returns a function restoring it
func MakeRaw() (func(), error) {
	fd := int(os.Stdin.Fd())
	old, err := term.MakeRaw(fd)
	if err != nil {
		return nil, err
	}
	return func() { _ = term.Restore(fd, old) }, nil
}
