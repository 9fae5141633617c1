package domain

import (
	"fmt"
	"strings"
)

// Difficulty selects the deduction techniques a solve may use.
// Higher tiers include everything below them.
type Difficulty int

const (
	Easy   Difficulty = iota // candidate propagation only
	Normal                   // + unique candidate, region/line elimination
	Hard                     // + unmatched candidate deletion
)

// Tiers lists the difficulties in increasing strength.
func Tiers() []Difficulty { return []Difficulty{Easy, Normal, Hard} }

func (d Difficulty) String() string {
	switch d {
	case Easy:
		return "easy"
	case Normal:
		return "normal"
	case Hard:
		return "hard"
	}
	return fmt.Sprintf("difficulty(%d)", int(d))
}

// ParseDifficulty maps a tier name to its Difficulty. Unknown names are
// a configuration error.
func ParseDifficulty(s string) (Difficulty, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "easy":
		return Easy, nil
	case "normal", "medium":
		return Normal, nil
	case "hard":
		return Hard, nil
	}
	return 0, fmt.Errorf("%w: unknown difficulty %q", ErrConfig, s)
}

// MarshalText writes the tier name, so JSON documents carry "easy"
// instead of an enum ordinal.
func (d Difficulty) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText parses a tier name.
func (d *Difficulty) UnmarshalText(text []byte) error {
	parsed, err := ParseDifficulty(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}
