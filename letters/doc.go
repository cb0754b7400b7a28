// Package letters provides the immutable letter→value tables used to turn a
// name into a number, and the name-cleaning step that prepares raw input for
// those tables.
//
// Systems:
//
//   - Pythagorean: A..I = 1..9, then the cycle repeats (J=1 ... Z=8).
//   - Chaldean:    the traditional 1..8 table (no letter maps to 9).
//   - Custom:      caller-built, possibly partial tables (NewTable).
//
// The two built-in systems disagree on many letters (I is 9 in one and 1 in
// the other, F is 6 vs 8, O is 6 vs 7). The tables are kept exactly as
// defined; a Table value always carries its System so that a calculation can
// never mix them.
//
// Cleaning:
//
//	CleanName("José-María 2nd") == "JOSEMARIAND"
//
// Diacritics are removed after Unicode canonical decomposition, a few
// non-decomposing Latin letters (Đ, Ø, Ł) are folded to their base letter,
// full uppercase mapping is applied (ß → SS), and everything outside A..Z is
// dropped. CleanName is idempotent and an empty result is valid.
//
// Errors:
//
//   - ErrUnknownSystem: TableFor called with a system outside the closed set.
//   - ErrInvalidLetter: NewTable key outside A..Z.
//   - ErrInvalidValue:  NewTable value outside 1..9.
package letters
