// Package meaning_test contains unit tests for the narrative catalog.
package meaning_test

import (
	"testing"
	"testing/fstest"

	"github.com/katalvlaran/numerology/meaning"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

func TestDefault_Coverage(t *testing.T) {
	c, err := meaning.Default()
	require.NoError(t, err)

	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9, 11, 22, 33}, c.Numbers(meaning.Core))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, c.Numbers(meaning.ArrowStrength))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8}, c.Numbers(meaning.ArrowWeakness))
	require.Equal(t, []int{1, 2, 3, 4, 5, 6, 7, 8, 9}, c.Numbers(meaning.MissingDigit))
	require.Equal(t, []int{1, 2, 3}, c.Numbers(meaning.Plane))

	var locales []string
	for _, tag := range c.Locales() {
		locales = append(locales, tag.String())
	}
	require.Equal(t, []string{"en", "vi"}, locales)
}

func TestLookup(t *testing.T) {
	c := meaning.MustDefault()

	r, ok := c.Lookup(7, meaning.Core, language.English)
	require.True(t, ok)
	require.Equal(t, "The Seeker", r.Title)
	require.Equal(t, "en", r.Locale)
	require.Equal(t, meaning.Core, r.Category)
	require.NotEmpty(t, r.Keywords)
	require.NotEmpty(t, r.Summary)

	r, ok = c.Lookup(11, meaning.Core, language.MustParse("vi-VN"))
	require.True(t, ok)
	require.Equal(t, "vi", r.Locale)

	// Regional variant of a supported locale.
	r, ok = c.Lookup(1, meaning.Core, language.BritishEnglish)
	require.True(t, ok)
	require.Equal(t, "en", r.Locale)
}

func TestLookup_Fallbacks(t *testing.T) {
	c := meaning.MustDefault()

	// Unsupported locale → default locale.
	r, ok := c.Lookup(4, meaning.Core, language.Japanese)
	require.True(t, ok)
	require.Equal(t, "en", r.Locale)

	// Supported locale lacking the category → default locale.
	r, ok = c.Lookup(7, meaning.ArrowWeakness, language.Vietnamese)
	require.True(t, ok)
	require.Equal(t, "en", r.Locale)
	require.Equal(t, "Arrow of Scarcity", r.Title)
}

func TestLookup_Miss(t *testing.T) {
	c := meaning.MustDefault()
	for _, tc := range []struct {
		n   int
		cat meaning.Category
	}{
		{0, meaning.Core},
		{10, meaning.Core},
		{44, meaning.Core},
		{9, meaning.ArrowStrength},
		{1, meaning.Category("nope")},
	} {
		_, ok := c.Lookup(tc.n, tc.cat, language.English)
		require.False(t, ok, "%d/%s", tc.n, tc.cat)
	}

	var nilCatalog *meaning.Catalog
	_, ok := nilCatalog.Lookup(1, meaning.Core, language.English)
	require.False(t, ok)
}

func TestParse_Errors(t *testing.T) {
	cases := []struct {
		name string
		docs []string
		err  error
	}{
		{"NoDocs", nil, meaning.ErrEmptyCatalog},
		{"NoRecords", []string{"locale: en\nrecords: []\n"}, meaning.ErrEmptyCatalog},
		{"NoLocale", []string{"records:\n  - {category: core, number: 1, title: x}\n"}, meaning.ErrMissingLocale},
		{"BadCategory", []string{"locale: en\nrecords:\n  - {category: tarot, number: 1, title: x}\n"}, meaning.ErrUnknownCategory},
		{"Duplicate", []string{
			"locale: en\nrecords:\n  - {category: core, number: 1, title: x}\n",
			"locale: en\nrecords:\n  - {category: core, number: 1, title: y}\n",
		}, meaning.ErrDuplicateRecord},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			docs := make([][]byte, 0, len(tc.docs))
			for _, d := range tc.docs {
				docs = append(docs, []byte(d))
			}
			_, err := meaning.Parse(docs...)
			require.ErrorIs(t, err, tc.err)
		})
	}

	_, err := meaning.Parse([]byte("locale: [unclosed"))
	require.Error(t, err)
	_, err = meaning.Parse([]byte("locale: not_a_locale!!\nrecords: []\n"))
	require.Error(t, err)
}

func TestLoad_CustomFS(t *testing.T) {
	fsys := fstest.MapFS{
		"content/de.yaml":   {Data: []byte("locale: de\nrecords:\n  - {category: core, number: 1, title: Der Anführer}\n")},
		"content/en.yaml":   {Data: []byte("locale: en\nrecords:\n  - {category: core, number: 1, title: Leader}\n")},
		"content/notes.txt": {Data: []byte("ignored")},
	}
	c, err := meaning.Load(fsys, "content")
	require.NoError(t, err)
	require.Equal(t, 2, c.Len())
	require.Equal(t, "en", c.Locales()[0].String())

	r, ok := c.Lookup(1, meaning.Core, language.German)
	require.True(t, ok)
	require.Equal(t, "Der Anführer", r.Title)

	_, err = meaning.Load(fsys, "missing")
	require.Error(t, err)
}
