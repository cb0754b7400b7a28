// Package scoring grades names by letter-pair favorability and filters a
// caller-supplied pool of candidate names down to those that reach a target
// number.
//
// Pair weights come from the classic friendship relation between the digits
// 1..9: the values of two consecutive letters are looked up in a fixed
// matrix (friendly, neutral, hostile). Curated overrides for specific
// bigrams can be layered on top with WithPairOverride.
//
// ScoreName combines two signals:
//
//   - the sum of the weights of every consecutive letter pair, and
//   - the harmony of each letter's value with the name's final number.
//
// Suggest does not invent names. It runs every candidate through the name
// calculator, keeps those whose final number equals the target, and ranks
// them by score (stable for ties).
//
// Errors:
//
//   - ErrInvalidTarget: target is not 1..9, 11, 22 or 33.
//   - ErrTableMismatch: the PairTable was built for a different table.
package scoring
