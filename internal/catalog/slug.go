package catalog

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Slugify lower-cases s, strips diacritics and joins the remaining
// alphanumeric runs with hyphens. "Roma Tomato-Solanum lycopersicum"
// becomes "roma-tomato-solanum-lycopersicum".
func Slugify(s string) string {
	t := transform.Chain(norm.NFKD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	folded, _, err := transform.String(t, s)
	if err != nil {
		folded = s
	}
	folded = cases.Lower(language.Und).String(folded)

	words := strings.FieldsFunc(folded, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.Join(words, SlugSeparator)
}

// DeriveSlug builds the catalog slug of a plant without one
func DeriveSlug(name, scientificName string) string {
	return Slugify(name + SlugSeparator + scientificName)
}

// TitleFromSlug turns "sweet-basil" into "Sweet Basil"
func TitleFromSlug(slug string) string {
	words := strings.ReplaceAll(slug, SlugSeparator, " ")
	return cases.Title(language.English).String(words)
}
