package meaning

import (
	"errors"
	"fmt"
)

// Sentinel errors for catalog construction.
var (
	ErrUnknownCategory = errors.New("meaning: unknown category")
	ErrMissingLocale   = errors.New("meaning: document has no locale")
	ErrDuplicateRecord = errors.New("meaning: duplicate record")
	ErrEmptyCatalog    = errors.New("meaning: catalog has no records")
)

// Category groups records by what the number was computed from.
type Category string

const (
	// Core covers life path, expression, soul urge and personality numbers.
	Core Category = "core"
	// ArrowStrength is keyed by arrow id, used when an arrow is fully present.
	ArrowStrength Category = "arrow-strength"
	// ArrowWeakness is keyed by arrow id, used when an arrow is fully missing.
	ArrowWeakness Category = "arrow-weakness"
	// MissingDigit holds remedies keyed by the absent digit.
	MissingDigit Category = "missing-digit"
	// Plane is keyed by plane id.
	Plane Category = "plane"
)

// Valid reports whether c belongs to the closed category set.
func (c Category) Valid() bool {
	switch c {
	case Core, ArrowStrength, ArrowWeakness, MissingDigit, Plane:
		return true
	}

	return false
}

// Record is one narrative entry.
type Record struct {
	Number   int      `yaml:"number"`
	Category Category `yaml:"category"`
	Locale   string   `yaml:"-"`
	Title    string   `yaml:"title"`
	Keywords []string `yaml:"keywords,omitempty"`
	Summary  string   `yaml:"summary"`
}

// String returns "locale/category/number: title".
func (r Record) String() string {
	return fmt.Sprintf("%s/%s/%d: %s", r.Locale, r.Category, r.Number, r.Title)
}

// document is the on-disk shape of one catalog file.
type document struct {
	Locale  string   `yaml:"locale"`
	Records []Record `yaml:"records"`
}

type key struct {
	locale   string
	category Category
	number   int
}
