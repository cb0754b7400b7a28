// Package engine is the call surface a presentation layer uses: it resolves
// the letter-value system, runs the pure calculators and maps their integer
// results to narrative records.
//
// An Engine holds only immutable configuration (logger, catalog, locale,
// precomputed pair tables) and is safe for concurrent use by any number of
// goroutines without locking.
//
//	e, err := engine.New(engine.WithLocale(language.Vietnamese))
//	res, err := e.CalculateNameNumerology("Nguyễn Văn An", letters.Pythagorean)
//	rec, ok := e.GetMeaning(res.FinalNumber, meaning.Core)
//
// Every method returns explicit errors; GetMeaning reports misses with ok.
package engine
