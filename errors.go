package localeseg

import (
	"errors"
	"fmt"

	"github.com/scalecode-solutions/localeseg/internal/dictionary"
	"github.com/scalecode-solutions/localeseg/internal/locale"
	"github.com/scalecode-solutions/localeseg/internal/rules"
	"github.com/scalecode-solutions/localeseg/internal/segdata"
)

// Kind classifies an Error, per spec.md §7.
type Kind string

const (
	KindUnknownLocale         Kind = "unknown_locale"
	KindUnknownSegmentType    Kind = "unknown_segment_type"
	KindInvalidBreakKind      Kind = "invalid_break_kind"
	KindVariableNotFound      Kind = "variable_not_found"
	KindInvalidRule           Kind = "invalid_rule"
	KindRegexCompileError     Kind = "regex_compile_error"
	KindDictionaryUnavailable Kind = "dictionary_unavailable"
	// KindInternal covers errors that don't match any recognized internal
	// error type — a genuine bug rather than a classifiable runtime or
	// data condition, so it must never be conflated with unknown_locale.
	KindInternal Kind = "internal"
)

// Error is the structured result every fallible public operation returns,
// per spec.md §7: data-bug kinds (variable_not_found, invalid_rule,
// regex_compile_error) halt construction of the affected rule set at
// first use; runtime kinds (unknown_locale, invalid_break_kind,
// dictionary_unavailable) are returned per call.
type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Kind)
	}
	return fmt.Sprintf("%s: %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error { return e.Err }

// wrapErr classifies an internal package error into a public *Error,
// preserving the original as the wrapped cause.
func wrapErr(err error) error {
	if err == nil {
		return nil
	}
	var (
		unknownLocale   *locale.ErrUnknownLocale
		segUnknownLoc   *segdata.ErrUnknownLocale
		segUnknownKind  *segdata.ErrUnknownSegmentType
		varNotFound     *rules.ErrVariableNotFound
		invalidRule     *rules.ErrInvalidRule
		regexErr        *rules.ErrRegexCompile
		dictUnavailable *dictionary.ErrUnavailable
	)
	switch {
	case errors.As(err, &unknownLocale):
		return &Error{Kind: KindUnknownLocale, Err: err}
	case errors.As(err, &segUnknownLoc):
		return &Error{Kind: KindUnknownLocale, Err: err}
	case errors.As(err, &segUnknownKind):
		return &Error{Kind: KindUnknownSegmentType, Err: err}
	case errors.As(err, &varNotFound):
		return &Error{Kind: KindVariableNotFound, Err: err}
	case errors.As(err, &invalidRule):
		return &Error{Kind: KindInvalidRule, Err: err}
	case errors.As(err, &regexErr):
		return &Error{Kind: KindRegexCompileError, Err: err}
	case errors.As(err, &dictUnavailable):
		return &Error{Kind: KindDictionaryUnavailable, Err: err}
	default:
		return &Error{Kind: KindInternal, Err: err}
	}
}

// ErrInvalidBreakKind is returned when Options.Break names a value outside
// {Grapheme, Word, Sentence, Line}.
var ErrInvalidBreakKind = &Error{Kind: KindInvalidBreakKind, Err: errors.New("break kind must be one of grapheme, word, sentence, line")}
