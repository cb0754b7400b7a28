package scoring

import (
	"fmt"
	"unicode"

	"github.com/katalvlaran/numerology/letters"
	"github.com/katalvlaran/numerology/reduce"
)

// Relation between two digits.
type Relation int

const (
	Neutral Relation = iota
	Friendly
	Hostile
)

// String returns the lower-case relation name.
func (r Relation) String() string {
	switch r {
	case Neutral:
		return "neutral"
	case Friendly:
		return "friendly"
	case Hostile:
		return "hostile"
	default:
		return fmt.Sprintf("relation(%d)", int(r))
	}
}

// friendship[i] describes digit i+1 against digits 1..9:
// '+' friendly, '-' hostile, '0' neutral. Rows are read from the first digit.
var friendship = [9]string{
	"+++0+-0-+", // 1
	"+++-+00--", // 2
	"+++0+-+0+", // 3
	"+-00++++-", // 4
	"+++0++000", // 5
	"-0-+++++0", // 6
	"+0++++0-0", // 7
	"--0+++++0", // 8
	"+-+-0000+", // 9
}

// RelationOf returns the relation of digit a towards digit b. Masters are
// reduced to their single digit first; anything else outside 1..9 is Neutral.
func RelationOf(a, b int) Relation {
	a, b = single(a), single(b)
	if a < 1 || a > 9 || b < 1 || b > 9 {
		return Neutral
	}
	switch friendship[a-1][b-1] {
	case '+':
		return Friendly
	case '-':
		return Hostile
	default:
		return Neutral
	}
}

func single(n int) int {
	if n < 0 {
		return n
	}

	return reduce.MustReduce(n, reduce.WithoutMasters()).Value
}

// PairTable maps every ordered letter pair A..Z × A..Z to a weight.
// It is immutable and bound to the letters.Table it was built from.
type PairTable struct {
	table   letters.Table
	weights [26][26]int
}

type pairConfig struct {
	friendly, neutral, hostile int
	overrides                  map[[2]rune]int
}

// PairOption customises NewPairTable.
type PairOption func(*pairConfig)

// WithRelationWeights replaces the default friendly/neutral/hostile weights.
func WithRelationWeights(friendly, neutral, hostile int) PairOption {
	return func(c *pairConfig) {
		c.friendly, c.neutral, c.hostile = friendly, neutral, hostile
	}
}

// WithPairOverride pins the weight of the ordered pair (a, b), whatever
// their values. Panics unless both are letters A..Z (either case).
func WithPairOverride(a, b rune, weight int) PairOption {
	a, b = unicode.ToUpper(a), unicode.ToUpper(b)
	if a < 'A' || a > 'Z' || b < 'A' || b > 'Z' {
		panic(fmt.Sprintf("scoring: WithPairOverride(%q,%q) outside A..Z", a, b))
	}
	return func(c *pairConfig) {
		if c.overrides == nil {
			c.overrides = map[[2]rune]int{}
		}
		c.overrides[[2]rune{a, b}] = weight
	}
}

// NewPairTable precomputes pair weights for table.
// A pair involving an unmapped letter weighs 0 unless overridden.
// Complexity: O(26²).
func NewPairTable(table letters.Table, opts ...PairOption) PairTable {
	cfg := pairConfig{friendly: WeightFriendly, neutral: WeightNeutral, hostile: WeightHostile}
	for _, opt := range opts {
		opt(&cfg)
	}

	pt := PairTable{table: table}
	for a := 'A'; a <= 'Z'; a++ {
		va, okA := table.Value(a)
		for b := 'A'; b <= 'Z'; b++ {
			vb, okB := table.Value(b)
			w := 0
			if okA && okB {
				switch RelationOf(va, vb) {
				case Friendly:
					w = cfg.friendly
				case Hostile:
					w = cfg.hostile
				default:
					w = cfg.neutral
				}
			}
			if ow, ok := cfg.overrides[[2]rune{a, b}]; ok {
				w = ow
			}
			pt.weights[a-'A'][b-'A'] = w
		}
	}

	return pt
}

// Table returns the letter table the weights were derived from.
func (pt PairTable) Table() letters.Table {
	return pt.table
}

// Score returns the favorability weight of the ordered pair (a, b).
// Letters are case-folded; anything outside A..Z weighs 0.
func (pt PairTable) Score(a, b rune) int {
	a, b = unicode.ToUpper(a), unicode.ToUpper(b)
	if a < 'A' || a > 'Z' || b < 'A' || b > 'Z' {
		return 0
	}

	return pt.weights[a-'A'][b-'A']
}
