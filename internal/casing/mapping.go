package casing

import (
	"strings"
	"unicode"

	"golang.org/x/text/unicode/norm"
)

const (
	greekCapitalSigma = 0x03A3
	greekFinalSigma   = 0x03C2
	greekSmallSigma   = 0x03C3
	latinCapitalI     = 0x0049
	latinSmallI       = 0x0069
	latinSmallDotlessI = 0x0131
	latinCapitalIWithDot = 0x0130
)

// Upcase returns the uppercase form of s for the given casing locale
// ("" or "any" means no locale-specific rules), per spec.md §4.8.
func Upcase(s, loc string) string {
	if loc == "el" {
		s = greekStripDiacritics(s)
	}
	turkish := IsTurkicLocale(loc)

	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r <= 0x7E && r != latinCapitalI && r != latinSmallI:
			if r >= 'a' && r <= 'z' {
				r -= 'a' - 'A'
			}
			b.WriteRune(r)
		case turkish && r == latinSmallI:
			b.WriteRune(latinCapitalIWithDot)
		case turkish && r == latinSmallDotlessI:
			b.WriteRune(latinCapitalI)
		default:
			b.WriteRune(unicode.ToUpper(r))
		}
	}
	return b.String()
}

// Downcase returns the lowercase form of s for the given casing locale,
// applying the Turkish/Azeri, Lithuanian, and generic final-sigma hooks
// from spec.md §4.8.
func Downcase(s, loc string) string {
	runes := []rune(s)
	turkish := IsTurkicLocale(loc)
	lithuanian := loc == "lt"

	var b strings.Builder
	b.Grow(len(s))
	for i, r := range runes {
		switch {
		case turkish && r == combiningDotAbove && afterIApplicable(runes, i):
			// The dot has already been folded into the 'i' this combines
			// with; see the latinCapitalI case below.
			continue
		case lithuanian && r == combiningDotAbove && afterSoftDottedApplicable(runes, i):
			// Soft-dotted letters already carry the dot visually.
			continue
		case turkish && r == latinCapitalI:
			if notBeforeDotApplicable(runes, i) {
				b.WriteRune(latinSmallDotlessI)
			} else {
				b.WriteRune(latinSmallI)
			}
			continue
		case turkish && r == latinCapitalIWithDot:
			b.WriteRune(latinSmallI)
			continue
		case r == greekCapitalSigma:
			if finalSigmaContext(runes, i) {
				b.WriteRune(greekFinalSigma)
			} else {
				b.WriteRune(greekSmallSigma)
			}
			continue
		case r <= 0x7E && !(lithuanian && (r == 'I' || r == 'J')):
			if r >= 'A' && r <= 'Z' {
				r += 'a' - 'A'
			}
			b.WriteRune(r)
			continue
		}

		lowered := unicode.ToLower(r)
		b.WriteRune(lowered)

		if lithuanian && isSoftDotted(lowered) && moreAboveApplicable(runes, i) && !hasImmediateDotAbove(runes, i) {
			b.WriteRune(combiningDotAbove)
		}
	}
	return b.String()
}

// hasImmediateDotAbove reports whether the code point right after i is
// already a combining dot above, so the Lithuanian retention hook does not
// double up.
func hasImmediateDotAbove(runes []rune, i int) bool {
	return i+1 < len(runes) && runes[i+1] == combiningDotAbove
}

// TitlecaseWord titlecases a single word: its first code point upcased,
// the rest downcased, with the Dutch "ij"/"IJ" leading digraph hook from
// spec.md §4.8 and §9 ("Dutch (nl): titlecasing a leading ij or IJ digraph
// produces IJ").
func TitlecaseWord(word, loc string) string {
	runes := []rune(word)
	if len(runes) == 0 {
		return word
	}
	if loc == "nl" && len(runes) >= 2 {
		first2 := strings.ToLower(string(runes[:2]))
		if first2 == "ij" {
			return "IJ" + Downcase(string(runes[2:]), loc)
		}
	}
	first := Upcase(string(runes[0]), loc)
	rest := Downcase(string(runes[1:]), loc)
	return first + rest
}

// greekDiacriticLow/High bound the Combining Diacritical Marks block,
// which carries the tonos, dialytika, and iota-subscript (U+0345) marks
// the Greek upcase hook strips.
const (
	greekDiacriticLow  = 0x0300
	greekDiacriticHigh = 0x036F
)

// greekStripDiacritics implements the "Greek upcase" design note
// (spec.md §9): normalize to NFD, drop every Combining Diacritical Mark
// (U+0300–U+036F, which covers the accents above and the iota-subscript)
// that follows a Greek letter, then recompose to NFC, so the subsequent
// general upcase table sees precomposed input. Marks on non-Greek letters
// are kept.
func greekStripDiacritics(s string) string {
	decomposed := norm.NFD.String(s)
	var b strings.Builder
	b.Grow(len(decomposed))
	greekBase := false
	for _, r := range decomposed {
		if r >= greekDiacriticLow && r <= greekDiacriticHigh {
			if greekBase {
				continue
			}
		} else if !unicode.Is(unicode.Mn, r) {
			greekBase = unicode.Is(unicode.Greek, r)
		}
		b.WriteRune(r)
	}
	return norm.NFC.String(b.String())
}
