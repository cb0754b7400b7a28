package meaning

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// embedded holds the default content baked into the binary.
//
//go:embed catalog/*.yaml
var embedded embed.FS

// Catalog is an immutable, concurrency-safe set of records.
type Catalog struct {
	records map[key]Record
	tags    []language.Tag // supported locales, default first
	matcher language.Matcher
}

// Default parses the embedded catalog. English is the default locale.
func Default() (*Catalog, error) {
	return Load(embedded, "catalog")
}

// MustDefault is Default for package initialisation; it panics on error.
func MustDefault() *Catalog {
	c, err := Default()
	if err != nil {
		panic(err)
	}

	return c
}

// Load parses every .yaml/.yml file directly under dir in fsys, in lexical
// order except that an "en" document, if present, becomes the default.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("meaning: read catalog dir: %w", err)
	}
	var docs [][]byte
	for _, e := range entries {
		ext := strings.ToLower(path.Ext(e.Name()))
		if e.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		data, err := fs.ReadFile(fsys, path.Join(dir, e.Name()))
		if err != nil {
			return nil, fmt.Errorf("meaning: read %s: %w", e.Name(), err)
		}
		if strings.TrimSuffix(e.Name(), path.Ext(e.Name())) == "en" {
			docs = append([][]byte{data}, docs...)
			continue
		}
		docs = append(docs, data)
	}

	return Parse(docs...)
}

// Parse builds a catalog from YAML documents. The first document's locale is
// the default used when no requested locale matches.
func Parse(docs ...[]byte) (*Catalog, error) {
	c := &Catalog{records: map[key]Record{}}
	seen := map[string]bool{}

	for i, data := range docs {
		var doc document
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("meaning: document %d: %w", i, err)
		}
		if strings.TrimSpace(doc.Locale) == "" {
			return nil, fmt.Errorf("%w: document %d", ErrMissingLocale, i)
		}
		tag, err := language.Parse(doc.Locale)
		if err != nil {
			return nil, fmt.Errorf("meaning: document %d locale %q: %w", i, doc.Locale, err)
		}
		loc := tag.String()
		if !seen[loc] {
			seen[loc] = true
			c.tags = append(c.tags, tag)
		}

		for _, r := range doc.Records {
			if !r.Category.Valid() {
				return nil, fmt.Errorf("%w: %q in %s", ErrUnknownCategory, r.Category, loc)
			}
			r.Locale = loc
			k := key{locale: loc, category: r.Category, number: r.Number}
			if _, dup := c.records[k]; dup {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateRecord, r)
			}
			c.records[k] = r
		}
	}
	if len(c.records) == 0 {
		return nil, ErrEmptyCatalog
	}
	c.matcher = language.NewMatcher(c.tags)

	return c, nil
}

// Locales returns the supported locales, default first.
func (c *Catalog) Locales() []language.Tag {
	return append([]language.Tag(nil), c.tags...)
}

// Len returns the number of records across all locales.
func (c *Catalog) Len() int {
	return len(c.records)
}

// Lookup finds the record for (number, category) in the best-matching
// locale, falling back to the default locale. ok is false on a miss.
// Complexity: O(1) plus locale matching.
func (c *Catalog) Lookup(number int, category Category, locale language.Tag) (Record, bool) {
	if c == nil || len(c.tags) == 0 {
		return Record{}, false
	}
	_, idx, _ := c.matcher.Match(locale)
	if r, ok := c.records[key{locale: c.tags[idx].String(), category: category, number: number}]; ok {
		return r, true
	}
	r, ok := c.records[key{locale: c.tags[0].String(), category: category, number: number}]

	return r, ok
}

// Numbers lists the numbers that have a record for category in the default
// locale, ascending.
func (c *Catalog) Numbers(category Category) []int {
	out := []int{}
	if c == nil || len(c.tags) == 0 {
		return out
	}
	def := c.tags[0].String()
	for k := range c.records {
		if k.locale == def && k.category == category {
			out = append(out, k.number)
		}
	}
	sort.Ints(out)

	return out
}
