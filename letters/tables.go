package letters

import "fmt"

// Data-only tables, indexed by letter - 'A'. Do not mutate.
var (
	pythagoreanValues = [alphabetSize]int{
		1, 2, 3, 4, 5, 6, 7, 8, 9, // A B C D E F G H I
		1, 2, 3, 4, 5, 6, 7, 8, 9, // J K L M N O P Q R
		1, 2, 3, 4, 5, 6, 7, 8, //    S T U V W X Y Z
	}

	chaldeanValues = [alphabetSize]int{
		1, 2, 3, 4, 5, 8, 3, 5, 1, // A B C D E F G H I
		1, 2, 3, 4, 5, 7, 8, 1, 2, // J K L M N O P Q R
		3, 4, 6, 6, 6, 5, 1, 7, //    S T U V W X Y Z
	}
)

// TableFor returns the built-in table for s.
// Returns ErrUnknownSystem for Custom or any value outside the closed set.
// Complexity: O(1); the returned Table is an independent copy.
func TableFor(s System) (Table, error) {
	switch s {
	case Pythagorean:
		return Table{system: s, values: pythagoreanValues}, nil
	case Chaldean:
		return Table{system: s, values: chaldeanValues}, nil
	default:
		return Table{}, fmt.Errorf("%w: %s", ErrUnknownSystem, s)
	}
}

// MustTableFor is TableFor for built-in systems known at compile time.
// It panics on an unknown system.
func MustTableFor(s System) Table {
	t, err := TableFor(s)
	if err != nil {
		panic(err)
	}

	return t
}

// NewTable builds a Custom table from an explicit mapping. Keys must be
// uppercase A..Z and values 1..9. Letters absent from values stay unmapped;
// calculators decide how to treat them.
// Complexity: O(len(values)).
func NewTable(values map[rune]int) (Table, error) {
	t := Table{system: Custom}
	for r, v := range values {
		if r < 'A' || r > 'Z' {
			return Table{}, fmt.Errorf("%w: %q", ErrInvalidLetter, r)
		}
		if v < 1 || v > 9 {
			return Table{}, fmt.Errorf("%w: %q=%d", ErrInvalidValue, r, v)
		}
		t.values[r-'A'] = v
	}

	return t, nil
}
