package loshu

import "fmt"

// positions binds each digit 1..9 to its cell. Index 0 is unused.
// This is the only place the layout is declared.
var positions = [10]Position{
	4: {0, 0}, 9: {0, 1}, 2: {0, 2},
	3: {1, 0}, 5: {1, 1}, 7: {1, 2},
	8: {2, 0}, 1: {2, 1}, 6: {2, 2},
}

// PositionOf returns the cell bound to digit d; ok is false for d ∉ 1..9.
func PositionOf(d int) (Position, bool) {
	if d < 1 || d > 9 {
		return Position{}, false
	}

	return positions[d], true
}

// DigitAt returns the digit bound to (row, col); ok is false out of bounds.
// Complexity: O(9).
func DigitAt(row, col int) (int, bool) {
	if !InBounds(row, col) {
		return 0, false
	}
	for d := 1; d <= 9; d++ {
		if positions[d].Row == row && positions[d].Col == col {
			return d, true
		}
	}

	return 0, false
}

// InBounds reports whether (row, col) lies inside the 3×3 grid.
func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}

// Arrow is one of the 8 straight lines of the grid.
type Arrow int

const (
	ArrowIntellect    Arrow = iota + 1 // 4-9-2, top row
	ArrowEmotion                       // 3-5-7, middle row
	ArrowPracticality                  // 8-1-6, bottom row
	ArrowPlanning                      // 4-3-8, left column
	ArrowWillpower                     // 9-5-1, middle column
	ArrowAction                        // 2-7-6, right column
	ArrowProsperity                    // 4-5-6, main diagonal
	ArrowProperty                      // 2-5-8, anti-diagonal
)

type arrowSpec struct {
	name   string
	kind   LineKind
	digits [3]int
}

var arrowSpecs = [...]arrowSpec{
	ArrowIntellect:    {"intellect", Row, [3]int{4, 9, 2}},
	ArrowEmotion:      {"emotion", Row, [3]int{3, 5, 7}},
	ArrowPracticality: {"practicality", Row, [3]int{8, 1, 6}},
	ArrowPlanning:     {"planning", Column, [3]int{4, 3, 8}},
	ArrowWillpower:    {"willpower", Column, [3]int{9, 5, 1}},
	ArrowAction:       {"action", Column, [3]int{2, 7, 6}},
	ArrowProsperity:   {"prosperity", Diagonal, [3]int{4, 5, 6}},
	ArrowProperty:     {"property", Diagonal, [3]int{2, 5, 8}},
}

// Arrows lists all arrows in declaration order.
func Arrows() []Arrow {
	return []Arrow{
		ArrowIntellect, ArrowEmotion, ArrowPracticality,
		ArrowPlanning, ArrowWillpower, ArrowAction,
		ArrowProsperity, ArrowProperty,
	}
}

func (a Arrow) valid() bool {
	return a >= ArrowIntellect && a <= ArrowProperty
}

// Digits returns the three digits of the arrow.
func (a Arrow) Digits() [3]int {
	if !a.valid() {
		return [3]int{}
	}

	return arrowSpecs[a].digits
}

// Kind reports whether the arrow is a row, column or diagonal.
func (a Arrow) Kind() LineKind {
	if !a.valid() {
		return 0
	}

	return arrowSpecs[a].kind
}

// String returns the arrow name.
func (a Arrow) String() string {
	if !a.valid() {
		return fmt.Sprintf("arrow(%d)", int(a))
	}

	return arrowSpecs[a].name
}

// Plane is one of the 3 row groups of the grid.
type Plane int

const (
	PlaneMental    Plane = iota + 1 // 4-9-2
	PlaneEmotional                  // 3-5-7
	PlanePractical                  // 8-1-6
)

var planeSpecs = [...]struct {
	name   string
	digits [3]int
}{
	PlaneMental:    {"mental", [3]int{4, 9, 2}},
	PlaneEmotional: {"emotional", [3]int{3, 5, 7}},
	PlanePractical: {"practical", [3]int{8, 1, 6}},
}

// Planes lists all planes top to bottom.
func Planes() []Plane {
	return []Plane{PlaneMental, PlaneEmotional, PlanePractical}
}

func (p Plane) valid() bool {
	return p >= PlaneMental && p <= PlanePractical
}

// Digits returns the three digits of the plane.
func (p Plane) Digits() [3]int {
	if !p.valid() {
		return [3]int{}
	}

	return planeSpecs[p].digits
}

// String returns the plane name.
func (p Plane) String() string {
	if !p.valid() {
		return fmt.Sprintf("plane(%d)", int(p))
	}

	return planeSpecs[p].name
}
