package name

import (
	"errors"

	"github.com/katalvlaran/numerology/letters"
	"github.com/katalvlaran/numerology/reduce"
	"go.uber.org/zap"
)

// Sentinel errors returned by Calculate.
var (
	// ErrNameTooLong indicates the raw name exceeds Options.MaxBytes.
	ErrNameTooLong = errors.New("name: input exceeds maximum length")

	// ErrUnmappedLetter indicates a cleaned letter missing from the table
	// while running in strict mode.
	ErrUnmappedLetter = errors.New("name: letter has no value in table")
)

// DefaultMaxBytes bounds the raw input accepted by Calculate.
const DefaultMaxBytes = 1024

// LetterValue is one entry of the per-letter breakdown.
type LetterValue struct {
	Letter rune
	Value  int
}

// Result is the full, immutable outcome of Calculate.
//
// Invariants:
//   - ReductionTrace[0] == TotalSum.
//   - ReductionTrace[len-1] == FinalNumber.
//   - IsMasterNumber implies FinalNumber ∈ {11, 22, 33}.
type Result struct {
	OriginalName   string
	CleanName      string
	System         letters.System
	Breakdown      []LetterValue
	TotalSum       int
	ReductionTrace []int
	FinalNumber    int
	IsMasterNumber bool

	// SoulUrge reduces the vowel values only; Personality the consonants.
	SoulUrge    reduce.Result
	Personality reduce.Result
}

// Options configures Calculate.
type Options struct {
	// Strict turns unmapped letters into ErrUnmappedLetter.
	Strict bool
	// MaxBytes caps the raw input length. Must be > 0.
	MaxBytes int
	// Logger receives warnings for degraded lookups. Never nil after defaults.
	Logger *zap.Logger
}

// Option mutates Options.
type Option func(*Options)

// DefaultOptions returns options with a no-op logger. Lookups are lenient
// unless the binary is built with the numerology_debug tag.
func DefaultOptions() Options {
	return Options{
		Strict:   debugBuild,
		MaxBytes: DefaultMaxBytes,
		Logger:   zap.NewNop(),
	}
}

// WithStrict makes unmapped letters fail loudly.
func WithStrict() Option {
	return func(o *Options) {
		o.Strict = true
	}
}

// WithStrictMode sets strict mode explicitly.
func WithStrictMode(strict bool) Option {
	return func(o *Options) {
		o.Strict = strict
	}
}

// WithMaxBytes overrides the input length cap. Panics if n <= 0.
func WithMaxBytes(n int) Option {
	if n <= 0 {
		panic("name: WithMaxBytes(n<=0)")
	}
	return func(o *Options) {
		o.MaxBytes = n
	}
}

// WithLogger routes warnings to l. A nil logger keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}
