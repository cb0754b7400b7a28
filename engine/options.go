package engine

import (
	"github.com/katalvlaran/numerology/meaning"
	"github.com/katalvlaran/numerology/name"
	"go.uber.org/zap"
	"golang.org/x/text/language"
)

type config struct {
	logger       *zap.Logger
	catalog      *meaning.Catalog
	locale       language.Tag
	strict       bool
	maxNameBytes int
}

// Option customises New.
type Option func(*config)

func defaultConfig() config {
	return config{
		logger:       zap.NewNop(),
		locale:       language.English,
		maxNameBytes: name.DefaultMaxBytes,
	}
}

// WithLogger sets the structured logger; nil keeps the no-op default.
func WithLogger(l *zap.Logger) Option {
	return func(c *config) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithCatalog replaces the embedded narrative catalog.
// Panics on nil.
func WithCatalog(cat *meaning.Catalog) Option {
	if cat == nil {
		panic("engine: WithCatalog(nil)")
	}
	return func(c *config) {
		c.catalog = cat
	}
}

// WithLocale sets the locale used by GetMeaning.
func WithLocale(tag language.Tag) Option {
	return func(c *config) {
		c.locale = tag
	}
}

// WithStrictLetters makes unmapped letters fail instead of counting as 0.
// Use it in tests and debug builds.
func WithStrictLetters() Option {
	return func(c *config) {
		c.strict = true
	}
}

// WithMaxNameBytes caps raw name input. Panics if n <= 0.
func WithMaxNameBytes(n int) Option {
	if n <= 0 {
		panic("engine: WithMaxNameBytes(n<=0)")
	}
	return func(c *config) {
		c.maxNameBytes = n
	}
}
