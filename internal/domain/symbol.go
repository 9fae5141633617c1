package domain

import "fmt"

// Symbol is the single-character form of a cell value. Values below ten
// print as decimal digits, higher values as letters starting at 'A'.
type Symbol uint8

// MaxSymbol is the largest value the alphabet can express ('Z').
const MaxSymbol = 35

// NewSymbol wraps an integer in [0, MaxSymbol].
func NewSymbol(v int) (Symbol, error) {
	if v < 0 || v > MaxSymbol {
		return 0, fmt.Errorf("%w: %d not in [0, %d]", ErrValue, v, MaxSymbol)
	}
	return Symbol(v), nil
}

// ParseSymbol converts a one-character token back to its value.
// Letters are accepted in either case.
func ParseSymbol(tok string) (Symbol, error) {
	if len(tok) != 1 {
		return 0, fmt.Errorf("%w: %q is not a single character", ErrValue, tok)
	}
	c := tok[0]
	switch {
	case c >= '0' && c <= '9':
		return Symbol(c - '0'), nil
	case c >= 'A' && c <= 'Z':
		return Symbol(c-'A') + 10, nil
	case c >= 'a' && c <= 'z':
		return Symbol(c-'a') + 10, nil
	}
	return 0, fmt.Errorf("%w: %q is not a digit or letter", ErrValue, tok)
}

// Integer returns the wrapped value.
func (s Symbol) Integer() int { return int(s) }

func (s Symbol) String() string {
	if s < 10 {
		return string('0' + byte(s))
	}
	return string('A' + byte(s) - 10)
}
