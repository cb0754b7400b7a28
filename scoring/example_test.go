package scoring_test

import (
	"fmt"

	"github.com/katalvlaran/numerology/letters"
	"github.com/katalvlaran/numerology/scoring"
)

// ExampleSuggest keeps the candidates that reduce to 2 and ranks them.
func ExampleSuggest() {
	tbl := letters.MustTableFor(letters.Pythagorean)
	pairs := scoring.NewPairTable(tbl)

	got, err := scoring.Suggest([]string{"Orbit", "Lyra", "Aria", "Lumen"}, 2, tbl, pairs)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, s := range got {
		fmt.Printf("%s total=%d\n", s.Candidate, s.Score.Total)
	}

	// Output:
	// Lumen total=9
	// Aria total=6
	// Lyra total=5
}
