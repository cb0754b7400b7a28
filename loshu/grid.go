package loshu

import (
	"fmt"
	"strings"
	"time"
)

// Digits returns the flat digit multiset of d: day digits, month digits,
// then the four year digits, each field without zero padding.
//
// Validation:
//  1. Year must be 1000..9999 (ErrInvalidYear).
//  2. Day/month must form a Gregorian date (ErrInvalidDate).
//
// Complexity: O(1).
func Digits(d Date) ([]int, error) {
	if err := validate(d); err != nil {
		return nil, err
	}
	out := make([]int, 0, 8)
	out = appendDigits(out, d.Day)
	out = appendDigits(out, d.Month)
	out = appendDigits(out, d.Year)

	return out, nil
}

// validate checks d against the proleptic Gregorian calendar. time.Date
// normalises overflow (31 Feb → 3 Mar), so a round-trip mismatch means the
// date does not exist.
func validate(d Date) error {
	if d.Year < 1000 || d.Year > 9999 {
		return fmt.Errorf("%w: %d", ErrInvalidYear, d.Year)
	}
	if d.Month < 1 || d.Month > 12 || d.Day < 1 || d.Day > 31 {
		return fmt.Errorf("%w: %s", ErrInvalidDate, d)
	}
	t := time.Date(d.Year, time.Month(d.Month), d.Day, 0, 0, 0, 0, time.UTC)
	if t.Day() != d.Day || int(t.Month()) != d.Month || t.Year() != d.Year {
		return fmt.Errorf("%w: %s", ErrInvalidDate, d)
	}

	return nil
}

// appendDigits appends the base-10 digits of a positive n, most significant first.
func appendDigits(dst []int, n int) []int {
	if n < 10 {
		return append(dst, n)
	}
	dst = appendDigits(dst, n/10)

	return append(dst, n%10)
}

// Grid holds digit counts. counts[0] tracks zeros, which have no cell.
// Grid is a value type; copies are independent.
type Grid struct {
	counts [10]int
}

// NewGrid counts a digit multiset. Any value outside 0..9 is rejected.
// Complexity: O(len(digits)).
func NewGrid(digits []int) (Grid, error) {
	var g Grid
	for i, d := range digits {
		if d < 0 || d > 9 {
			return Grid{}, fmt.Errorf("%w: digits[%d]=%d", ErrInvalidDigit, i, d)
		}
		g.counts[d]++
	}

	return g, nil
}

// Count returns the occurrences of digit d (0..9); other values yield 0.
func (g Grid) Count(d int) int {
	if d < 0 || d > 9 {
		return 0
	}

	return g.counts[d]
}

// ZeroCount returns how many zeros the multiset contained.
func (g Grid) ZeroCount() int {
	return g.counts[0]
}

// Placed returns the number of digits that landed in a cell (all non-zero digits).
func (g Grid) Placed() int {
	n := 0
	for d := 1; d <= 9; d++ {
		n += g.counts[d]
	}

	return n
}

// Cells returns the grid as a 3×3 array indexed [row][col].
func (g Grid) Cells() [Size][Size]Cell {
	var out [Size][Size]Cell
	for d := 1; d <= 9; d++ {
		p := positions[d]
		out[p.Row][p.Col] = Cell{
			Digit:   d,
			Row:     p.Row,
			Col:     p.Col,
			Count:   g.counts[d],
			Display: strings.Repeat(fmt.Sprint(d), g.counts[d]),
		}
	}

	return out
}

// String renders the grid as three space-separated lines of cell displays,
// "-" for empty cells.
func (g Grid) String() string {
	var b strings.Builder
	cells := g.Cells()
	for r := 0; r < Size; r++ {
		for c := 0; c < Size; c++ {
			if c > 0 {
				b.WriteByte(' ')
			}
			s := cells[r][c].Display
			if s == "" {
				s = "-"
			}
			b.WriteString(s)
		}
		if r < Size-1 {
			b.WriteByte('\n')
		}
	}

	return b.String()
}

// ArrowState classifies a against the grid.
func (g Grid) ArrowState(a Arrow) ArrowState {
	if !a.valid() {
		return Mixed
	}
	present := 0
	for _, d := range a.Digits() {
		if g.counts[d] > 0 {
			present++
		}
	}
	switch present {
	case 3:
		return Present
	case 0:
		return Missing
	default:
		return Mixed
	}
}

// PlaneStrength scores p as round(100 × present/3).
func (g Grid) PlaneStrength(p Plane) PlaneStrength {
	if !p.valid() {
		return PlaneStrength{Plane: p}
	}
	present := 0
	for _, d := range p.Digits() {
		if g.counts[d] > 0 {
			present++
		}
	}

	return PlaneStrength{
		Plane:    p,
		Present:  present,
		Strength: (200*present + 3) / 6, // round-half-up of 100*present/3
	}
}
