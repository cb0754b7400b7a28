package scoring

import (
	"errors"

	"github.com/katalvlaran/numerology/name"
	"go.uber.org/zap"
)

// Sentinel errors for scoring and suggestion.
var (
	// ErrInvalidTarget indicates a target outside 1..9, 11, 22, 33.
	ErrInvalidTarget = errors.New("scoring: invalid target number")
	// ErrTableMismatch indicates a PairTable used with a different letter table.
	ErrTableMismatch = errors.New("scoring: pair table built for a different letter table")
)

// Default relation weights.
const (
	WeightFriendly = 2
	WeightNeutral  = 0
	WeightHostile  = -2
)

// PairScore is the weight of one consecutive letter pair.
type PairScore struct {
	A, B   rune
	Weight int
}

// Score is the aggregate grade of one name.
type Score struct {
	Name      name.Result
	Pairs     []PairScore
	PairTotal int // Σ pair weights
	Harmony   int // Σ relation(letter value, final number)
	Total     int // PairTotal + Harmony
}

// Suggestion is a candidate that reached the target.
type Suggestion struct {
	Candidate string
	Index     int // position in the original pool
	Score     Score
}

// Options configures ScoreName and Suggest.
type Options struct {
	// Limit caps the number of suggestions; 0 means no cap.
	Limit int
	// Logger records skipped candidates. Never nil after defaults.
	Logger *zap.Logger
	// NameOptions are forwarded to name.Calculate.
	NameOptions []name.Option
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns uncapped options with a no-op logger.
func DefaultOptions() Options {
	return Options{Logger: zap.NewNop()}
}

// WithLimit caps the suggestion count. Panics if n < 0.
func WithLimit(n int) Option {
	if n < 0 {
		panic("scoring: WithLimit(n<0)")
	}
	return func(o *Options) {
		o.Limit = n
	}
}

// WithLogger sets the logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

// WithNameOptions forwards options to the name calculator.
func WithNameOptions(opts ...name.Option) Option {
	return func(o *Options) {
		o.NameOptions = append(o.NameOptions, opts...)
	}
}
