package loshu

import (
	"errors"
	"fmt"
)

// Sentinel errors for date and grid construction.
var (
	// ErrInvalidDate indicates day/month/year do not form a real calendar date.
	ErrInvalidDate = errors.New("loshu: invalid calendar date")
	// ErrInvalidYear indicates a year that is not four digits long.
	ErrInvalidYear = errors.New("loshu: year must have four digits")
	// ErrInvalidDigit indicates a multiset entry outside 0..9.
	ErrInvalidDigit = errors.New("loshu: digit must be in 0..9")
)

// Size is the grid side length.
const Size = 3

// Date is a timezone-free calendar date. Only the three integers matter.
type Date struct {
	Day, Month, Year int
}

// String formats the date as D/M/YYYY.
func (d Date) String() string {
	return fmt.Sprintf("%d/%d/%04d", d.Day, d.Month, d.Year)
}

// Position is a cell coordinate: Row 0 is the top row, Col 0 the left column.
type Position struct {
	Row, Col int
}

// Cell is one grid cell prepared for display.
type Cell struct {
	Digit   int
	Row     int
	Col     int
	Count   int
	Display string // the digit repeated Count times, "" when absent
}

// Repetition records a digit that occurs at least twice.
type Repetition struct {
	Digit int
	Count int
}

// LineKind tells whether an arrow is a row, a column or a diagonal.
type LineKind int

const (
	Row LineKind = iota + 1
	Column
	Diagonal
)

// String returns the lower-case kind name.
func (k LineKind) String() string {
	switch k {
	case Row:
		return "row"
	case Column:
		return "column"
	case Diagonal:
		return "diagonal"
	default:
		return fmt.Sprintf("linekind(%d)", int(k))
	}
}

// ArrowState classifies an arrow against a grid.
type ArrowState int

const (
	// Mixed means some but not all digits are present. Never reported.
	Mixed ArrowState = iota
	// Present means every digit of the arrow occurs at least once.
	Present
	// Missing means no digit of the arrow occurs.
	Missing
)

// String returns the lower-case state name.
func (s ArrowState) String() string {
	switch s {
	case Mixed:
		return "mixed"
	case Present:
		return "present"
	case Missing:
		return "missing"
	default:
		return fmt.Sprintf("arrowstate(%d)", int(s))
	}
}

// ArrowFinding is a reported (non-mixed) arrow.
type ArrowFinding struct {
	Arrow Arrow
	State ArrowState
}

// PlaneStrength is a plane with its percentage score (0, 33, 67 or 100).
type PlaneStrength struct {
	Plane    Plane
	Present  int
	Strength int
}
