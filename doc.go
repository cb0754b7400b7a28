// Package numerology is a small, deterministic engine that turns names and
// calendar dates into numerology numbers and the structures derived from
// them.
//
// What is inside:
//
//	reduce/   digit sums and reduction to 1..9 with the 11/22/33 master stop
//	letters/  immutable Pythagorean and Chaldean letter tables, name cleaning
//	name/     per-letter breakdown, total, reduction trace, soul urge, personality
//	loshu/    Lo Shu 3×3 grid of a date: present/missing/repeating digits,
//	          8 arrows, 3 planes, life path
//	scoring/  letter-pair favorability and filtering of candidate names
//	meaning/  narrative records keyed by (number, category, locale)
//	engine/   the facade a presentation layer calls
//
// Every calculation is a pure function of its inputs. Static tables are
// read-only, so all packages are safe for concurrent use without locking.
//
// Quick example:
//
//	e, _ := engine.New()
//	res, _ := e.CalculateNameNumerology("Apple", letters.Pythagorean)
//	// res.Breakdown: A=1 P=7 P=7 L=3 E=5, res.ReductionTrace: [23 5]
//
//	go get github.com/katalvlaran/numerology
package numerology
