package name

import (
	"fmt"

	"github.com/katalvlaran/numerology/letters"
	"github.com/katalvlaran/numerology/reduce"
	"go.uber.org/zap"
)

// Calculate converts raw into its numerology Result under table.
//
// Steps:
//  1. Reject inputs longer than MaxBytes (ErrNameTooLong).
//  2. Clean the name; an empty projection returns the zero result.
//  3. Look up every letter in order, building the breakdown and the
//     vowel/consonant sums.
//  4. Reduce the total (masters kept).
//
// Calculate is pure: identical (raw, table, options) give identical results.
// Complexity: O(len(raw)).
func Calculate(raw string, table letters.Table, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	// 1) Bound the work before touching the content.
	if len(raw) > cfg.MaxBytes {
		return Result{}, fmt.Errorf("%w: %d bytes > %d", ErrNameTooLong, len(raw), cfg.MaxBytes)
	}

	// 2) Project onto A..Z.
	clean := letters.CleanName(raw)
	if clean == "" {
		return zeroResult(raw, table.System()), nil
	}

	// 3) Per-letter lookup, order preserved.
	breakdown := make([]LetterValue, 0, len(clean))
	total, vowels, consonants := 0, 0, 0
	for i, r := range clean {
		v, ok := table.Value(r)
		if !ok {
			if cfg.Strict {
				return Result{}, fmt.Errorf("%w: %q at %d (%s)", ErrUnmappedLetter, r, i, table.System())
			}
			cfg.Logger.Warn("unmapped letter degraded to zero",
				zap.String("letter", string(r)),
				zap.Int("position", i),
				zap.Stringer("system", table.System()),
			)
			v = 0
		}
		breakdown = append(breakdown, LetterValue{Letter: r, Value: v})
		total += v
		if letters.IsVowel(r) {
			vowels += v
		} else {
			consonants += v
		}
	}

	// 4) Reduce. Sums are non-negative, so Reduce cannot fail here.
	final := reduce.MustReduce(total)

	return Result{
		OriginalName:   raw,
		CleanName:      clean,
		System:         table.System(),
		Breakdown:      breakdown,
		TotalSum:       total,
		ReductionTrace: final.Trace,
		FinalNumber:    final.Value,
		IsMasterNumber: final.IsMaster,
		SoulUrge:       reduce.MustReduce(vowels),
		Personality:    reduce.MustReduce(consonants),
	}, nil
}

// zeroResult is the defined outcome for names without usable letters.
func zeroResult(raw string, sys letters.System) Result {
	return Result{
		OriginalName:   raw,
		CleanName:      "",
		System:         sys,
		Breakdown:      []LetterValue{},
		TotalSum:       0,
		ReductionTrace: []int{0},
		FinalNumber:    0,
		IsMasterNumber: false,
		SoulUrge:       reduce.MustReduce(0),
		Personality:    reduce.MustReduce(0),
	}
}
