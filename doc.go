/*
Package localeseg implements locale-aware Unicode text segmentation and
case transformation.

This package is modeled on the following, with simplified rule sets:
  - Unicode Standard Annex #29 (https://unicode.org/reports/tr29/) for text segmentation
    (the packaged rules omit the Hangul and emoji-sequence grapheme rules)
  - Unicode Standard Annex #14 (https://unicode.org/reports/tr14/) for line breaking
    (the packaged rules offer a break opportunity only after spaces)
  - The Unicode CaseFolding and SpecialCasing data files
  - CLDR locale-specific segmentation and casing overrides, with documented deviations

Unlike a fixed state-machine implementation, segmentation here is
data-driven: every rule the package evaluates is loaded from a per-locale
data file (internal/segdata), compiled into an executable regular
expression pair (internal/rules), and merged with its locale's ancestors
up to root before use. Casing is a simpler table-driven transducer
(internal/casing) with the handful of context predicates the Unicode
SpecialCasing table requires.

# Getting Started

For simple use cases:
  - [Split] - split a string into segments under a given break kind
  - [GraphemeClusterCount] - count user-perceived characters

For iteration:
  - [NewSplitter] - a restartable cursor over all four break kinds
  - [NewGraphemes] - a grapheme-cluster-only convenience cursor
  - [Stream] - a lazy, closure-based pull sequence

For a single boundary:
  - [Break] / [BreakBefore]

# Word, Sentence, and Line Boundaries

	localeseg.Split("This is a sentence. And another.", localeseg.Options{Break: localeseg.Word})
	localeseg.Split("This is a sentence. And another.", localeseg.Options{Break: localeseg.Sentence})
	localeseg.Split("This is a sentence. And another.", localeseg.Options{Break: localeseg.Line})

Sentence segmentation consults a locale's abbreviation list (e.g. "Mr.",
"Ph.D.") before treating a period as a sentence end; pass
Options{Suppressions: localeseg.BoolPtr(false)} to disable that.

# Locales Without Interword Spacing

Chinese, Japanese, Thai, Lao, Khmer, and Burmese word segmentation
dispatches to a dictionary-backed longest-match breaker instead of the
regex rules:

	localeseg.Split("布鲁赫", localeseg.Options{Break: localeseg.Word, Locale: "zh"})

# Case Folding and Mapping

	localeseg.EqualsIgnoringCase("beißen", "beissen")       // true
	localeseg.Upcase("Diyarbakır", localeseg.Options{Locale: "tr"})   // "DİYARBAKIR"
	localeseg.Downcase("ὈΔΥΣΣΕΎΣ", localeseg.Options{Locale: "el"})   // "ὀδυσσεύς"

Titlecase consumes the word segmenter: it splits on word boundaries, then
titlecases the first codepoint of each segment and downcases the rest,
applying the Dutch "ij"/"IJ" leading-digraph hook where applicable.

# Errors

All fallible operations return a *[Error] with a [Kind] drawn from a small
fixed set: unknown_locale, unknown_segment_type, invalid_break_kind,
variable_not_found, invalid_rule, regex_compile_error, and
dictionary_unavailable, plus internal for errors that fit none of them.
variable_not_found, invalid_rule, and regex_compile_error are data bugs in
the packaged locale data and surface at first use of the affected
(locale, kind) pair.
*/
package localeseg
