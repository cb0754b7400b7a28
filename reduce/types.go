package reduce

import "errors"

// ErrNegativeInput indicates that Reduce was called with a negative number.
// Negative values have no digit-sum meaning in this domain and are rejected
// rather than coerced.
var ErrNegativeInput = errors.New("reduce: input must be non-negative")

// Master numbers exempt from further reduction.
const (
	Master11 = 11
	Master22 = 22
	Master33 = 33
)

// Result is the outcome of a single Reduce call.
//
// Invariants:
//   - Trace[0] is the input value; Trace[len(Trace)-1] == Value.
//   - IsMaster implies Value ∈ {11, 22, 33}.
//   - !IsMaster implies 0 ≤ Value ≤ 9.
type Result struct {
	Value    int   // final reduced value
	Trace    []int // every intermediate value, input first, Value last
	IsMaster bool  // true when reduction stopped on a master number
}

// Options configures Reduce.
type Options struct {
	// KeepMasters stops the reduction on 11, 22 and 33. Default: true.
	KeepMasters bool
}

// Option mutates Options before a reduction starts.
type Option func(*Options)

// DefaultOptions returns Options with master numbers preserved.
func DefaultOptions() Options {
	return Options{KeepMasters: true}
}

// WithoutMasters disables the master-number short-circuit, so every input
// reduces to a single digit 0..9.
func WithoutMasters() Option {
	return func(o *Options) {
		o.KeepMasters = false
	}
}
