// Package name computes the numerology of a personal or brand name under a
// single letter-value table.
//
// Pipeline:
//
//	raw ──CleanName──▶ A..Z ──Table.Value──▶ breakdown ──Σ──▶ total ──Reduce──▶ final
//
// The result keeps every step: the per-letter breakdown in input order, the
// total, and the reduction trace ending at the final number (1..9, or a
// master number 11/22/33). Vowel-only (soul urge) and consonant-only
// (personality) reductions are computed from the same breakdown.
//
// A name with no usable letters is not an error: it produces a zero result
// (TotalSum 0, FinalNumber 0, empty breakdown).
//
// Unmapped letters only happen with partial Custom tables. In strict mode
// they fail with ErrUnmappedLetter; otherwise the letter contributes 0 and a
// warning is logged. Strict mode is the default when built with
// -tags numerology_debug, and can be forced either way with WithStrictMode.
//
// Errors:
//
//   - ErrNameTooLong:    raw input exceeds the configured byte limit.
//   - ErrUnmappedLetter: strict mode hit a letter the table does not map.
package name
