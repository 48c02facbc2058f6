package config

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrInvalidSeed is wrapped by every seed parsing failure
var ErrInvalidSeed = errors.New("invalid seed")

// ParseSeed accepts a bare number ("123") or the session-start form "n123s"
func ParseSeed(s string) (int64, error) {
	seed, moves, err := ParseInput(s)
	if err != nil {
		return 0, err
	}
	if moves != "" {
		return 0, fmt.Errorf("%w: unexpected trailing input %q", ErrInvalidSeed, moves)
	}
	return seed, nil
}

// ParseInput splits "n<digits>s<moves>" into the seed and the movement
// symbols that follow it. A bare number is a seed with no moves.
// Input is case-insensitive.
func ParseInput(s string) (int64, string, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	if in == "" {
		return 0, "", fmt.Errorf("%w: empty input", ErrInvalidSeed)
	}

	digits, moves := in, ""
	if in[0] == 'n' {
		end := strings.IndexByte(in, 's')
		if end < 0 {
			return 0, "", fmt.Errorf("%w: %q has no terminating 's'", ErrInvalidSeed, s)
		}
		digits, moves = in[1:end], in[end+1:]
	}
	if digits == "" {
		return 0, "", fmt.Errorf("%w: %q has no digits", ErrInvalidSeed, s)
	}

	seed, err := strconv.ParseInt(digits, 10, 64)
	if err != nil {
		return 0, "", fmt.Errorf("%w: %w", ErrInvalidSeed, err)
	}
	return seed, moves, nil
}
