package localeseg

import "github.com/scalecode-solutions/localeseg/internal/segdata"

// BreakKind selects which of the four segmentations an operation uses.
type BreakKind string

const (
	Grapheme BreakKind = "grapheme"
	Word     BreakKind = "word"
	Sentence BreakKind = "sentence"
	Line     BreakKind = "line"
)

func (k BreakKind) segdataKind() segdata.Kind {
	switch k {
	case Grapheme:
		return segdata.GraphemeClusterBreak
	case Sentence:
		return segdata.SentenceBreak
	case Line:
		return segdata.LineBreak
	default:
		return segdata.WordBreak
	}
}

func (k BreakKind) valid() bool {
	switch k {
	case Grapheme, Word, Sentence, Line, "":
		return true
	default:
		return false
	}
}

// Options configures a segmentation or casing call, per spec.md §6.
//
// Locale accepts a string ("en-US"), an underscore-style symbolic name
// ("en_US"), a golang.org/x/text/language.Tag, or an internal/locale.Tag.
// Suppressions is a pointer so its default (true) can be distinguished
// from an explicit false; leave it nil to take the default.
type Options struct {
	Locale       any
	Break        BreakKind
	Suppressions *bool
	Trim         bool
	StrictLocale bool
}

type normalizedOptions struct {
	rawLocale    any
	break_       BreakKind
	suppressions bool
	trim         bool
	strict       bool
}

func normalize(o Options) (normalizedOptions, error) {
	if !o.Break.valid() {
		return normalizedOptions{}, ErrInvalidBreakKind
	}
	b := o.Break
	if b == "" {
		b = Word
	}
	suppress := true
	if o.Suppressions != nil {
		suppress = *o.Suppressions
	}
	return normalizedOptions{
		rawLocale:    o.Locale,
		break_:       b,
		suppressions: suppress,
		trim:         o.Trim,
		strict:       o.StrictLocale,
	}, nil
}

// BoolPtr is a small helper for populating Options.Suppressions, since Go
// has no address-of-literal syntax for bool constants.
func BoolPtr(b bool) *bool { return &b }
