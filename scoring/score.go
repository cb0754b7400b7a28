package scoring

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/numerology/letters"
	"github.com/katalvlaran/numerology/name"
	"github.com/katalvlaran/numerology/reduce"
	"go.uber.org/zap"
)

// ScoreName grades raw under table using pairs.
//
// Steps:
//  1. pairs must have been built from table (ErrTableMismatch).
//  2. name.Calculate produces the breakdown and final number.
//  3. Every consecutive pair of cleaned letters adds its weight.
//  4. Every letter adds the relation of its value to the final number
//     (friendly +1, hostile -1); names without letters get no harmony.
//
// Complexity: O(len(raw)).
func ScoreName(raw string, table letters.Table, pairs PairTable, opts ...Option) (Score, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	return scoreName(raw, table, pairs, cfg)
}

func scoreName(raw string, table letters.Table, pairs PairTable, cfg Options) (Score, error) {
	if pairs.Table() != table {
		return Score{}, fmt.Errorf("%w: pairs=%s table=%s", ErrTableMismatch, pairs.Table().System(), table.System())
	}

	res, err := name.Calculate(raw, table, cfg.NameOptions...)
	if err != nil {
		return Score{}, err
	}

	s := Score{Name: res, Pairs: []PairScore{}}
	for i := 1; i < len(res.Breakdown); i++ {
		a, b := res.Breakdown[i-1].Letter, res.Breakdown[i].Letter
		w := pairs.Score(a, b)
		s.Pairs = append(s.Pairs, PairScore{A: a, B: b, Weight: w})
		s.PairTotal += w
	}
	if res.FinalNumber > 0 {
		for _, lv := range res.Breakdown {
			switch RelationOf(lv.Value, res.FinalNumber) {
			case Friendly:
				s.Harmony++
			case Hostile:
				s.Harmony--
			}
		}
	}
	s.Total = s.PairTotal + s.Harmony

	return s, nil
}

// Suggest filters candidates to those whose final number equals target and
// ranks them by Score.Total, highest first. Ties keep pool order. Duplicate
// candidates (same cleaned name) are kept once. Candidates that cannot be
// calculated are skipped and logged at debug level.
// Complexity: O(Σ len(candidate) + k log k) for k matches.
func Suggest(candidates []string, target int, table letters.Table, pairs PairTable, opts ...Option) ([]Suggestion, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if !reduce.IsValidNumber(target) {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTarget, target)
	}
	if pairs.Table() != table {
		return nil, fmt.Errorf("%w: pairs=%s table=%s", ErrTableMismatch, pairs.Table().System(), table.System())
	}

	out := []Suggestion{}
	seen := make(map[string]struct{}, len(candidates))
	for i, c := range candidates {
		s, err := scoreName(c, table, pairs, cfg)
		if err != nil {
			cfg.Logger.Debug("candidate skipped",
				zap.Int("index", i),
				zap.Error(err),
			)
			continue
		}
		if s.Name.FinalNumber != target {
			continue
		}
		if _, dup := seen[s.Name.CleanName]; dup {
			continue
		}
		seen[s.Name.CleanName] = struct{}{}
		out = append(out, Suggestion{Candidate: c, Index: i, Score: s})
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Score.Total > out[j].Score.Total
	})
	if cfg.Limit > 0 && len(out) > cfg.Limit {
		out = out[:cfg.Limit]
	}

	return out, nil
}
