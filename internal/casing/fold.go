package casing

import (
	"strings"
	"unicode"
)

// fullFold holds the CaseFolding.txt "F" (full) status entries that expand
// a single code point to more than one code point. Every other code point
// is folded with unicode.ToLower. That matches CaseFolding.txt's "C"
// (common) mapping for most code points, but not for the few whose C
// target is not their lowercase form: U+00B5 MICRO SIGN, U+017F LONG S,
// U+03C2 FINAL SIGMA, the Greek symbol variants (U+03D0, U+03D1, U+03D5,
// U+03D6, U+03F0, U+03F1, U+03F5) and similar code points are left
// unchanged rather than folded to their C targets.
var fullFold = map[rune]string{
	0x00DF: "ss",   // LATIN SMALL LETTER SHARP S
	0x0130: "i̇", // LATIN CAPITAL LETTER I WITH DOT ABOVE (non-Turkic)
	0x0149: "ʼn", // LATIN SMALL LETTER N PRECEDED BY APOSTROPHE
	0x01F0: "ǰ", // LATIN SMALL LETTER J WITH CARON
	0x0390: "ΐ",
	0x03B0: "ΰ",
	0x0587: "եւ", // ARMENIAN SMALL LIGATURE ECH YIWN
	0x1E96: "ẖ",
	0x1E97: "ẗ",
	0x1E98: "ẘ",
	0x1E99: "ẙ",
	0x1E9A: "aʾ",
	0xFB00: "ff",
	0xFB01: "fi",
	0xFB02: "fl",
	0xFB03: "ffi",
	0xFB04: "ffl",
	0xFB05: "st",
	0xFB06: "st",
	0xFB13: "մն", // ARMENIAN SMALL LIGATURE MEN NOW
	0xFB14: "մե", // ARMENIAN SMALL LIGATURE MEN ECH
	0xFB15: "մի", // ARMENIAN SMALL LIGATURE MEN INI
	0xFB16: "վն", // ARMENIAN SMALL LIGATURE VEW NOW
	0xFB17: "մխ", // ARMENIAN SMALL LIGATURE MEN XEH
}

// turkicFold holds the "T" (Turkic) status entries, which substitute for
// the C/F entries above only when the caller requests Turkic mode.
var turkicFold = map[rune]string{
	0x0049: "ı", // LATIN CAPITAL LETTER I -> DOTLESS I
	0x0130: "i",      // LATIN CAPITAL LETTER I WITH DOT ABOVE -> LATIN SMALL LETTER I
}

// Fold returns the case-folded form of s: a deterministic mapping driven
// by the Unicode CaseFolding table (spec.md §4.8). turkic selects the "T"
// status overrides for U+0049 and U+0130.
func Fold(s string, turkic bool) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if turkic {
			if repl, ok := turkicFold[r]; ok {
				b.WriteString(repl)
				continue
			}
		}
		if repl, ok := fullFold[r]; ok {
			b.WriteString(repl)
			continue
		}
		b.WriteRune(unicode.ToLower(r))
	}
	return b.String()
}

// EqualsIgnoringCase reports whether a and b fold to the same string
// (spec.md §8 P5: fold(a) == fold(b) <=> equals_ignoring_case(a, b)).
func EqualsIgnoringCase(a, b string, turkic bool) bool {
	return Fold(a, turkic) == Fold(b, turkic)
}

// IsTurkicLocale reports whether loc names a Turkic-folding language.
func IsTurkicLocale(loc string) bool {
	return loc == "tr" || loc == "az"
}
