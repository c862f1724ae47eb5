package casing

import "unicode"

// This file implements the SpecialCasing context predicates from
// spec.md §4.8: final_sigma, not_before_dot, more_above, after_soft_dotted,
// after_i. Each predicate is evaluated against the code points immediately
// preceding or following a position in a []rune buffer, skipping
// case-ignorable code points where the predicate calls for it.

// isCaseIgnorable approximates the Unicode Case_Ignorable property: marks,
// format characters, modifier letters, and modifier symbols do not affect
// casing context even though they are not themselves cased.
func isCaseIgnorable(r rune) bool {
	return unicode.In(r, unicode.Mn, unicode.Me, unicode.Cf, unicode.Lm, unicode.Sk) ||
		r == '\'' || r == ':' || r == '.' || r == '·'
}

// isCased reports whether r has the Unicode Cased property (roughly:
// upper, lower, or title case letters, plus a handful of modifier letters
// with a cased variant — approximated here by the three general
// categories).
func isCased(r rune) bool {
	return unicode.IsUpper(r) || unicode.IsLower(r) || unicode.IsTitle(r)
}

// isCombiningAbove approximates Unicode combining marks that attach above
// the base letter — the set more_above and after_soft_dotted care about.
func isCombiningAbove(r rune) bool {
	return r == combiningDotAbove || (r >= 0x0300 && r <= 0x036F && r != 0x0316 && r != 0x0317 && r != 0x0318 && r != 0x0319)
}

const combiningDotAbove = 0x0307

// softDotted is the Unicode Soft_Dotted set restricted to the letters that
// matter for the Lithuanian casing hooks: Latin and
// Cyrillic letters whose lowercase glyph carries a dot that combining
// marks above would otherwise visually collide with.
var softDotted = map[rune]bool{
	'i': true, 'j': true,
	0x012F: true, // ogonek i
	0x0268: true, // small i with stroke
	0x0456: true, // Cyrillic small i
	0x0458: true, // Cyrillic small je
	0x1E2D: true, // small i with tilde below
	0x1ECB: true, // small i with dot below
}

func isSoftDotted(r rune) bool { return softDotted[unicode.ToLower(r)] }

// precedingCased walks backward from i (exclusive) over case-ignorable
// code points and reports whether the first non-ignorable code point found
// is cased.
func precedingCased(runes []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if isCaseIgnorable(runes[j]) {
			continue
		}
		return isCased(runes[j])
	}
	return false
}

// followingCased walks forward from i (exclusive) over case-ignorable code
// points and reports whether the first non-ignorable code point found is
// cased.
func followingCased(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		if isCaseIgnorable(runes[j]) {
			continue
		}
		return isCased(runes[j])
	}
	return false
}

// finalSigmaContext implements the Greek final-sigma predicate: Σ
// lowercases to ς iff preceded by a cased letter (modulo ignorables) and
// NOT followed by a cased letter (modulo ignorables).
func finalSigmaContext(runes []rune, i int) bool {
	return precedingCased(runes, i) && !followingCased(runes, i)
}

// notBeforeDotApplicable implements not_before_dot: the mapping applies
// unless the following context, after skipping ignorables, starts with a
// combining dot above (U+0307).
func notBeforeDotApplicable(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		if isCaseIgnorable(runes[j]) && runes[j] != combiningDotAbove {
			continue
		}
		return runes[j] != combiningDotAbove
	}
	return true
}

// moreAboveApplicable implements more_above: true iff the following
// context contains a combining mark above before the next non-combining
// code point.
func moreAboveApplicable(runes []rune, i int) bool {
	for j := i + 1; j < len(runes); j++ {
		if isCombiningAbove(runes[j]) {
			return true
		}
		if !unicode.Is(unicode.Mn, runes[j]) && !unicode.Is(unicode.Me, runes[j]) {
			return false
		}
	}
	return false
}

// afterSoftDottedApplicable implements after_soft_dotted: true iff the
// preceding context contains a soft-dotted code point with no intervening
// combining mark above.
func afterSoftDottedApplicable(runes []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if isSoftDotted(runes[j]) {
			return true
		}
		if isCombiningAbove(runes[j]) {
			return false
		}
		if !unicode.Is(unicode.Mn, runes[j]) && !unicode.Is(unicode.Me, runes[j]) {
			return false
		}
	}
	return false
}

// afterIApplicable implements after_i: true iff the preceding context is
// an 'I' (U+0049) with no intervening combining mark above.
func afterIApplicable(runes []rune, i int) bool {
	for j := i - 1; j >= 0; j-- {
		if runes[j] == 'I' {
			return true
		}
		if isCombiningAbove(runes[j]) {
			return false
		}
		if !unicode.Is(unicode.Mn, runes[j]) && !unicode.Is(unicode.Me, runes[j]) {
			return false
		}
	}
	return false
}
