package letters

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for table construction and lookup.
var (
	// ErrUnknownSystem indicates a System value outside the supported set.
	ErrUnknownSystem = errors.New("letters: unknown letter-value system")

	// ErrInvalidLetter indicates a custom table key outside A..Z.
	ErrInvalidLetter = errors.New("letters: letter must be in A..Z")

	// ErrInvalidValue indicates a custom table value outside 1..9.
	ErrInvalidValue = errors.New("letters: value must be in 1..9")
)

// System identifies a letter-value table.
type System int

const (
	// Pythagorean is the modern western table (values 1..9).
	Pythagorean System = iota + 1
	// Chaldean is the traditional table (values 1..8).
	Chaldean
	// Custom marks tables built with NewTable.
	Custom
)

// String returns the lower-case system name.
func (s System) String() string {
	switch s {
	case Pythagorean:
		return "pythagorean"
	case Chaldean:
		return "chaldean"
	case Custom:
		return "custom"
	default:
		return fmt.Sprintf("system(%d)", int(s))
	}
}

// ParseSystem maps a case-insensitive system name back to a built-in System.
// Custom tables cannot be selected by name.
func ParseSystem(s string) (System, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "pythagorean":
		return Pythagorean, nil
	case "chaldean":
		return Chaldean, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownSystem, s)
	}
}

// alphabetSize is the number of letters a table can map (A..Z).
const alphabetSize = 26

// Table is an immutable letter→value mapping. The zero value maps nothing.
// Tables are plain values (arrays, no maps), so copies never alias.
type Table struct {
	system System
	values [alphabetSize]int // 0 means "unmapped"
}

// System reports which letter-value system this table implements.
func (t Table) System() System {
	return t.system
}

// Value returns the value of an uppercase letter A..Z.
// ok is false for anything the table does not map; no value is guessed.
// Complexity: O(1).
func (t Table) Value(r rune) (v int, ok bool) {
	if r < 'A' || r > 'Z' {
		return 0, false
	}
	v = t.values[r-'A']

	return v, v != 0
}

// Len returns how many letters the table maps.
func (t Table) Len() int {
	n := 0
	for _, v := range t.values {
		if v != 0 {
			n++
		}
	}

	return n
}
