package reduce

import "fmt"

// DigitSum returns the sum of the base-10 digits of n.
// Negative inputs are summed on their absolute value; callers that need
// validation go through Reduce.
// Complexity: O(d) time, O(1) space.
func DigitSum(n int) int {
	if n < 0 {
		n = -n
	}
	sum := 0
	for n > 0 {
		sum += n % 10
		n /= 10
	}

	return sum
}

// IsMaster reports whether n is one of the master numbers 11, 22 or 33.
func IsMaster(n int) bool {
	return n == Master11 || n == Master22 || n == Master33
}

// IsValidNumber reports whether n can be the final value of a default
// reduction of a positive input: 1..9 or a master number.
func IsValidNumber(n int) bool {
	return (n >= 1 && n <= 9) || IsMaster(n)
}

// Reduce reduces n to a single digit, stopping early on master numbers
// unless WithoutMasters is supplied.
//
// Steps:
//  1. Reject n < 0 with ErrNegativeInput.
//  2. While n > 9: if n is a master (and masters are kept) stop; otherwise
//     replace n with DigitSum(n). Every value is appended to the trace.
//
// n == 0 yields {Value: 0, Trace: [0], IsMaster: false}.
// Complexity: O(d) time, O(1) extra space besides the trace.
func Reduce(n int, opts ...Option) (Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	if n < 0 {
		return Result{}, fmt.Errorf("%w: got %d", ErrNegativeInput, n)
	}

	trace := []int{n}
	for n > 9 {
		// Master check must precede the digit sum.
		if cfg.KeepMasters && IsMaster(n) {
			return Result{Value: n, Trace: trace, IsMaster: true}, nil
		}
		n = DigitSum(n)
		trace = append(trace, n)
	}

	return Result{Value: n, Trace: trace, IsMaster: false}, nil
}

// MustReduce is like Reduce but panics on error. It is intended for
// package-level initialisation and tests with constant, known-good input.
func MustReduce(n int, opts ...Option) Result {
	r, err := Reduce(n, opts...)
	if err != nil {
		panic(err)
	}

	return r
}
