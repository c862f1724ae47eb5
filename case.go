package localeseg

import (
	"github.com/scalecode-solutions/localeseg/internal/casing"
	"github.com/scalecode-solutions/localeseg/internal/locale"
)

// specialCasingLocales are the locales with a casing hook beyond the
// generic table (spec.md §4.8, §6 special_casing_locales).
var specialCasingLocales = []string{"tr", "az", "lt", "nl", "el"}

func knownCasingLocale(candidate string) bool {
	for _, l := range specialCasingLocales {
		if l == candidate {
			return true
		}
	}
	return false
}

func resolveCasingLocale(input any) string {
	loc, _ := locale.Resolve(input, knownCasingLocale, "any", locale.Lenient)
	return loc
}

func isTurkic(loc string) bool { return loc == "tr" || loc == "az" }

// Fold returns the case-folded form of s with no locale-specific rules
// (spec.md §4.8 fold(string)).
func Fold(s string) string { return casing.Fold(s, false) }

// FoldLocale is fold(string, mode_or_language): locale selects the Turkic
// ("T" status) CaseFolding.txt override for U+0049 and U+0130 when it
// resolves to tr or az.
func FoldLocale(s string, localeInput any) string {
	return casing.Fold(s, isTurkic(resolveCasingLocale(localeInput)))
}

// EqualsIgnoringCase implements spec.md §8 P5: fold(a) == fold(b) iff
// equals_ignoring_case(a, b).
func EqualsIgnoringCase(a, b string) bool { return Fold(a) == Fold(b) }

// EqualsIgnoringCaseLocale is EqualsIgnoringCase with a Turkic-aware fold.
func EqualsIgnoringCaseLocale(a, b string, localeInput any) bool {
	return FoldLocale(a, localeInput) == FoldLocale(b, localeInput)
}

// Upcase implements spec.md §4.8 upcase(string, options). Only
// Options.Locale is consulted.
func Upcase(s string, opts Options) string {
	return casing.Upcase(s, resolveCasingLocale(opts.Locale))
}

// Downcase implements spec.md §4.8 downcase(string, options).
func Downcase(s string, opts Options) string {
	return casing.Downcase(s, resolveCasingLocale(opts.Locale))
}

// Titlecase implements spec.md §4.8: "titlecase consumes the word
// segmenter — split, then titlecase the first codepoint of each segment
// and downcase the rest." opts.Break is forced to Word regardless of what
// the caller passed.
func Titlecase(s string, opts Options) (string, error) {
	loc := resolveCasingLocale(opts.Locale)
	words, err := Split(s, Options{Locale: opts.Locale, Break: Word, Trim: false})
	if err != nil {
		return "", err
	}
	var b []byte
	for _, w := range words {
		b = append(b, casing.TitlecaseWord(w, loc)...)
	}
	return string(b), nil
}

// SpecialCasingLocales returns the locales with a dedicated casing hook
// (spec.md §6 special_casing_locales).
func SpecialCasingLocales() []string {
	out := make([]string, len(specialCasingLocales))
	copy(out, specialCasingLocales)
	return out
}
