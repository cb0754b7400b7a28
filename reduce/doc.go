// Package reduce implements the digit-reduction kernel shared by every
// numerology calculation in this module.
//
// What:
//
//   - DigitSum adds the base-10 digits of a non-negative integer.
//   - Reduce repeatedly applies DigitSum until a single digit remains,
//     recording every intermediate value in a trace.
//   - Master numbers (11, 22, 33) stop the reduction as soon as they appear,
//     including when they arise mid-chain (29 → 11, never 29 → 11 → 2).
//
// The master-number short-circuit deliberately breaks the "always a single
// digit" property. It is checked at the top of the loop, before the digits
// are summed; moving it after the sum silently destroys masters.
//
// Complexity:
//
//   - DigitSum: O(d), d = number of decimal digits.
//   - Reduce:   O(d) overall; the trace holds at most four values for any int64.
//
// Options:
//
//   - WithoutMasters(): plain reduction to 0..9 (masters are summed like any
//     other number).
//
// Errors:
//
//   - ErrNegativeInput: Reduce was called with n < 0.
package reduce
