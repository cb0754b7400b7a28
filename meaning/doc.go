// Package meaning owns the narrative side of the engine: short records keyed
// by (number, category, locale) that a presentation layer shows next to a
// calculated number.
//
// The calculation packages never import this package; they only emit
// integers and classifications. Catalogs are plain YAML documents, one per
// locale:
//
//	locale: en
//	records:
//	  - {category: core, number: 7, title: The Seeker, keywords: [analysis], summary: "..."}
//
// Default returns the catalog embedded in the binary (catalog/*.yaml).
// Other content can be supplied with Parse or Load and swapped in freely.
//
// Lookup never fails: a miss is reported as ok == false. Locales are matched
// with golang.org/x/text/language, so "en-GB" finds "en" and an unsupported
// locale falls back to the catalog's default locale (the first one loaded).
//
// Errors (construction only):
//
//   - ErrUnknownCategory: a record names a category outside the closed set.
//   - ErrMissingLocale:   a document has no locale.
//   - ErrDuplicateRecord: the same (locale, category, number) appears twice.
//   - ErrEmptyCatalog:    no records were loaded.
package meaning
