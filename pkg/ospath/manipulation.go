package ospath

import (
	"fmt"
	"runtime"
	"strings"
)

// Manipulation indicates which kind of manipulation to perform on a path.
type Manipulation int

const (
	// Default manipulates paths generically: only a leading separator makes
	// a path absolute.
	Default Manipulation = iota

	// Windows manipulates paths compatibly with the Windows operating
	// system, recognizing drive ("C:") and UNC ("\\") prefixes.
	Windows
)

// Manipulations lists every valid [Manipulation].
var Manipulations = []Manipulation{Default, Windows}

// String returns the lower-case name of m.
func (m Manipulation) String() string {
	switch m {
	case Default:
		return "default"
	case Windows:
		return "windows"
	}

	return fmt.Sprintf("Manipulation(%d)", int(m))
}

// ParseManipulation returns the [Manipulation] named s (case-insensitive).
// The empty string parses as [Default].
func ParseManipulation(s string) (Manipulation, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "default":
		return Default, nil
	case "windows":
		return Windows, nil
	}

	return Default, fmt.Errorf("%w: %q", ErrUnknownManipulation, s)
}

// MarshalText implements [encoding.TextMarshaler].
func (m Manipulation) MarshalText() ([]byte, error) {
	return []byte(m.String()), nil
}

// UnmarshalText implements [encoding.TextUnmarshaler].
func (m *Manipulation) UnmarshalText(text []byte) error {
	parsed, err := ParseManipulation(string(text))
	if err != nil {
		return err
	}

	*m = parsed

	return nil
}

// Native returns the [Manipulation] matching the operating system the
// program runs on.
func Native() Manipulation {
	if runtime.GOOS == "windows" {
		return Windows
	}

	return Default
}
