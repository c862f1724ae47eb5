// Package locale implements the Locale Resolver (spec.md §4.6): it maps an
// input locale identifier — string, symbol-style underscored name, or
// structured language tag — to the best available segmentation or casing
// locale through a fixed fallback chain.
package locale

import (
	"fmt"
	"strings"

	"golang.org/x/text/language"
)

// Policy selects what a resolver does when no candidate is known.
type Policy int

const (
	// Lenient silently falls back to the caller-supplied default.
	Lenient Policy = iota
	// Strict returns ErrUnknownLocale instead of falling back.
	Strict
)

// ErrUnknownLocale is returned under Strict policy when no candidate in
// the fallback chain is present in the known set.
type ErrUnknownLocale struct{ Requested string }

func (e *ErrUnknownLocale) Error() string {
	return fmt.Sprintf("unknown_locale: %q", e.Requested)
}

// Tag is the structured-language-tag input form spec.md §4.6 describes:
// "a structured language tag exposing (canonical_name, cldr_name, language)".
type Tag interface {
	CanonicalName() string
	CLDRName() string
	Language() string
}

// Canonicalize normalizes a raw locale identifier: language lowercased,
// script titlecased, region uppercased, hyphen-joined, underscores folded
// to hyphens (spec.md §4.6 step 1, and §9's filename-convention note).
func Canonicalize(raw string) string {
	raw = strings.ReplaceAll(strings.TrimSpace(raw), "_", "-")
	if raw == "" {
		return ""
	}
	parts := strings.Split(raw, "-")
	for i, p := range parts {
		switch {
		case i == 0:
			parts[i] = strings.ToLower(p)
		case len(p) == 4 && isAlpha(p):
			parts[i] = strings.ToUpper(p[:1]) + strings.ToLower(p[1:])
		case len(p) == 2 && isAlpha(p):
			parts[i] = strings.ToUpper(p)
		case len(p) == 3 && isDigit(p):
			parts[i] = p // numeric UN M.49 region code, left as-is
		default:
			parts[i] = p
		}
	}
	return strings.Join(parts, "-")
}

func isAlpha(s string) bool {
	for _, r := range s {
		if (r < 'a' || r > 'z') && (r < 'A' || r > 'Z') {
			return false
		}
	}
	return true
}

func isDigit(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// candidates builds the "lang-Script-Region -> lang-Region -> lang-Script
// -> lang" fallback chain from a canonical identifier (spec.md §4.6 step 2).
func candidates(canonical string) []string {
	if canonical == "" {
		return nil
	}
	lang, script, region := splitTag(canonical)
	var out []string
	add := func(s string) {
		if s == "" {
			return
		}
		for _, existing := range out {
			if existing == s {
				return
			}
		}
		out = append(out, s)
	}
	if script != "" && region != "" {
		add(lang + "-" + script + "-" + region)
	}
	if region != "" {
		add(lang + "-" + region)
	}
	if script != "" {
		add(lang + "-" + script)
	}
	add(lang)
	return out
}

func splitTag(canonical string) (lang, script, region string) {
	parts := strings.Split(canonical, "-")
	lang = parts[0]
	for _, p := range parts[1:] {
		switch {
		case len(p) == 4:
			script = p
		case len(p) == 2 || len(p) == 3:
			region = p
		}
	}
	return
}

// FromInput normalizes any of the three accepted input forms (spec.md §4.6)
// into a canonical locale identifier string.
func FromInput(input any) string {
	switch v := input.(type) {
	case nil:
		return ""
	case string:
		return Canonicalize(v)
	case Tag:
		if v == nil {
			return ""
		}
		if name := v.CanonicalName(); name != "" {
			return Canonicalize(name)
		}
		if name := v.CLDRName(); name != "" {
			return Canonicalize(name)
		}
		return Canonicalize(v.Language())
	case language.Tag:
		return Canonicalize(v.String())
	case fmt.Stringer:
		return Canonicalize(v.String())
	default:
		return ""
	}
}

// Known reports membership; callers pass e.g. Catalog.Has or a dictionary
// cache's locale set.
type Known func(candidate string) bool

// Resolve walks FromInput(input)'s fallback chain and returns the first
// candidate known reports as present. If nothing matches: under Strict,
// returns ErrUnknownLocale only when input was explicitly supplied
// (non-empty); under Lenient, or when input was empty/unspecified, returns
// fallback with no error (spec.md §7: "the policy is determined by whether
// the caller passed a locale option at all").
func Resolve(input any, known Known, fallback string, policy Policy) (string, error) {
	canonical := FromInput(input)
	if canonical == "" {
		return fallback, nil
	}
	for _, cand := range candidates(canonical) {
		if known(cand) {
			return cand, nil
		}
	}
	if policy == Strict {
		return "", &ErrUnknownLocale{Requested: canonical}
	}
	return fallback, nil
}
