package engine

import (
	"fmt"

	"github.com/katalvlaran/numerology/letters"
	"github.com/katalvlaran/numerology/loshu"
	"github.com/katalvlaran/numerology/meaning"
	"github.com/katalvlaran/numerology/name"
	"github.com/katalvlaran/numerology/reduce"
	"github.com/katalvlaran/numerology/scoring"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

// Engine is the immutable facade over the calculators and the catalog.
type Engine struct {
	log      *zap.Logger
	catalog  *meaning.Catalog
	locale   language.Tag
	nameOpts []name.Option
	tables   map[letters.System]letters.Table
	pairs    map[letters.System]scoring.PairTable
}

// New builds an Engine. Without WithCatalog the embedded catalog is parsed.
// Complexity: O(catalog size + 26² per system).
func New(opts ...Option) (*Engine, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.catalog == nil {
		cat, err := meaning.Default()
		if err != nil {
			return nil, fmt.Errorf("engine: load default catalog: %w", err)
		}
		cfg.catalog = cat
	}

	e := &Engine{
		log:     cfg.logger,
		catalog: cfg.catalog,
		locale:  cfg.locale,
		nameOpts: []name.Option{
			name.WithMaxBytes(cfg.maxNameBytes),
			name.WithLogger(cfg.logger),
		},
		tables: map[letters.System]letters.Table{},
		pairs:  map[letters.System]scoring.PairTable{},
	}
	if cfg.strict {
		e.nameOpts = append(e.nameOpts, name.WithStrict())
	}
	for _, sys := range []letters.System{letters.Pythagorean, letters.Chaldean} {
		tbl := letters.MustTableFor(sys)
		e.tables[sys] = tbl
		e.pairs[sys] = scoring.NewPairTable(tbl)
	}

	return e, nil
}

// table returns the precomputed table of a built-in system.
func (e *Engine) table(sys letters.System) (letters.Table, error) {
	tbl, ok := e.tables[sys]
	if !ok {
		return letters.Table{}, fmt.Errorf("%w: %s", letters.ErrUnknownSystem, sys)
	}

	return tbl, nil
}

// CalculateNameNumerology runs the name calculator under system.
func (e *Engine) CalculateNameNumerology(raw string, system letters.System) (name.Result, error) {
	tbl, err := e.table(system)
	if err != nil {
		return name.Result{}, err
	}
	res, err := name.Calculate(raw, tbl, e.nameOpts...)
	if err != nil {
		e.log.Debug("name calculation rejected", zap.Stringer("system", system), zap.Error(err))
		return name.Result{}, err
	}

	return res, nil
}

// CalculateDateGrid analyses the Lo Shu grid of day/month/year.
func (e *Engine) CalculateDateGrid(day, month, year int) (loshu.Analysis, error) {
	a, err := loshu.Analyze(loshu.Date{Day: day, Month: month, Year: year})
	if err != nil {
		e.log.Debug("date rejected",
			zap.Int("day", day), zap.Int("month", month), zap.Int("year", year),
			zap.Error(err),
		)
		return loshu.Analysis{}, err
	}

	return a, nil
}

// ReduceNumber reduces n, keeping master numbers.
func (e *Engine) ReduceNumber(n int) (reduce.Result, error) {
	return reduce.Reduce(n)
}

// ScoreName grades raw with the pair table of system.
func (e *Engine) ScoreName(raw string, system letters.System) (scoring.Score, error) {
	tbl, err := e.table(system)
	if err != nil {
		return scoring.Score{}, err
	}

	return scoring.ScoreName(raw, tbl, e.pairs[system], scoring.WithNameOptions(e.nameOpts...))
}

// SuggestNames filters candidates to those reaching target under system,
// best first. limit <= 0 returns every match.
func (e *Engine) SuggestNames(candidates []string, target int, system letters.System, limit int) ([]scoring.Suggestion, error) {
	tbl, err := e.table(system)
	if err != nil {
		return nil, err
	}
	opts := []scoring.Option{
		scoring.WithLogger(e.log),
		scoring.WithNameOptions(e.nameOpts...),
	}
	if limit > 0 {
		opts = append(opts, scoring.WithLimit(limit))
	}

	return scoring.Suggest(candidates, target, tbl, e.pairs[system], opts...)
}

// GetMeaning looks number up in category using the engine locale.
// A miss is ok == false, never an error.
func (e *Engine) GetMeaning(number int, category meaning.Category) (meaning.Record, bool) {
	return e.catalog.Lookup(number, category, e.locale)
}

// GetMeaningIn is GetMeaning with an explicit locale.
func (e *Engine) GetMeaningIn(number int, category meaning.Category, locale language.Tag) (meaning.Record, bool) {
	return e.catalog.Lookup(number, category, locale)
}

// ArrowMeaning maps a reported arrow to its strength or weakness record.
func (e *Engine) ArrowMeaning(f loshu.ArrowFinding) (meaning.Record, bool) {
	switch f.State {
	case loshu.Present:
		return e.GetMeaning(int(f.Arrow), meaning.ArrowStrength)
	case loshu.Missing:
		return e.GetMeaning(int(f.Arrow), meaning.ArrowWeakness)
	default:
		return meaning.Record{}, false
	}
}

// PlaneMeaning returns the record describing p.
func (e *Engine) PlaneMeaning(p loshu.Plane) (meaning.Record, bool) {
	return e.GetMeaning(int(p), meaning.Plane)
}

// Remedy returns the remedy record for a missing digit.
func (e *Engine) Remedy(digit int) (meaning.Record, bool) {
	return e.GetMeaning(digit, meaning.MissingDigit)
}
