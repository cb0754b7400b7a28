package loshu

import (
	"github.com/katalvlaran/numerology/reduce"
)

// Analysis is the full, immutable result of Analyze.
type Analysis struct {
	Date      Date
	Digits    []int
	Grid      Grid
	Present   []int        // digits 1..9 with count ≥ 1, ascending
	Missing   []int        // digits 1..9 with count 0, ascending
	Repeating []Repetition // digits with count ≥ 2, ascending by digit
	Arrows    []ArrowFinding
	Planes    []PlaneStrength

	// LifePath reduces the sum of all date digits, masters kept.
	LifePath reduce.Result
	// Driver is the day reduced to a single digit.
	Driver int
}

// Analyze builds the Lo Shu grid for d and evaluates every arrow and plane.
// Only Present and Missing arrows are reported, in declaration order.
// Complexity: O(1).
func Analyze(d Date) (Analysis, error) {
	digits, err := Digits(d)
	if err != nil {
		return Analysis{}, err
	}
	a, err := AnalyzeDigits(digits)
	if err != nil {
		return Analysis{}, err
	}
	a.Date = d
	a.Driver = reduce.MustReduce(d.Day, reduce.WithoutMasters()).Value

	return a, nil
}

// AnalyzeDigits runs the grid analysis on an explicit digit multiset.
// Date and Driver are left zero; LifePath is derived from the digits.
func AnalyzeDigits(digits []int) (Analysis, error) {
	g, err := NewGrid(digits)
	if err != nil {
		return Analysis{}, err
	}

	a := Analysis{
		Digits:    append([]int(nil), digits...),
		Grid:      g,
		Present:   []int{},
		Missing:   []int{},
		Repeating: []Repetition{},
		Arrows:    []ArrowFinding{},
		Planes:    make([]PlaneStrength, 0, 3),
	}

	// 1) Presence sets.
	for dg := 1; dg <= 9; dg++ {
		c := g.counts[dg]
		switch {
		case c == 0:
			a.Missing = append(a.Missing, dg)
		case c >= 2:
			a.Repeating = append(a.Repeating, Repetition{Digit: dg, Count: c})
			fallthrough
		default:
			a.Present = append(a.Present, dg)
		}
	}

	// 2) Arrows, mixed ones dropped.
	for _, arrow := range Arrows() {
		if st := g.ArrowState(arrow); st != Mixed {
			a.Arrows = append(a.Arrows, ArrowFinding{Arrow: arrow, State: st})
		}
	}

	// 3) Planes.
	for _, p := range Planes() {
		a.Planes = append(a.Planes, g.PlaneStrength(p))
	}

	// 4) Life path over the whole multiset.
	sum := 0
	for _, dg := range digits {
		sum += dg
	}
	a.LifePath = reduce.MustReduce(sum)

	return a, nil
}

// PresentArrows returns the arrows reported as Present.
func (a Analysis) PresentArrows() []Arrow {
	return a.arrowsIn(Present)
}

// MissingArrows returns the arrows reported as Missing.
func (a Analysis) MissingArrows() []Arrow {
	return a.arrowsIn(Missing)
}

func (a Analysis) arrowsIn(st ArrowState) []Arrow {
	out := []Arrow{}
	for _, f := range a.Arrows {
		if f.State == st {
			out = append(out, f.Arrow)
		}
	}

	return out
}
