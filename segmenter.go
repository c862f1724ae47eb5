package localeseg

import (
	"unicode"
	"unicode/utf8"

	"github.com/scalecode-solutions/localeseg/internal/dictionary"
	"github.com/scalecode-solutions/localeseg/internal/locale"
	"github.com/scalecode-solutions/localeseg/internal/rules"
)

// Decision is the public form of the Rule Evaluator's result (spec.md
// §4.3): (operator, (before, (consumed, remainder))).
type Decision struct {
	Op        rules.Operator
	Before    string
	Consumed  string
	Remainder string
}

func segmentationPolicy(strict bool) locale.Policy {
	if strict {
		return locale.Strict
	}
	return locale.Lenient
}

func resolveSegmentationLocale(c *catalog, o normalizedOptions) (string, error) {
	return locale.Resolve(o.rawLocale, c.segs.Has, "root", segmentationPolicy(o.strict))
}

// Break exposes the raw evaluator decision for one boundary, per spec.md
// §4.7 break(before, after, options).
func Break(before, after string, opts Options) (Decision, error) {
	no, err := normalize(opts)
	if err != nil {
		return Decision{}, err
	}
	c, err := defaultCatalog()
	if err != nil {
		return Decision{}, wrapErr(err)
	}
	loc, err := resolveSegmentationLocale(c, no)
	if err != nil {
		return Decision{}, wrapErr(err)
	}
	rs, err := c.ruleSetFor(loc, no.break_.segdataKind(), no.suppressions)
	if err != nil {
		return Decision{}, wrapErr(err)
	}
	d := rules.Evaluate(before, after, rs)
	return Decision{Op: d.Op, Before: d.Before, Consumed: d.Consumed, Remainder: d.Remainder}, nil
}

// BreakBefore implements spec.md §4.7 break?(before, after, options): true
// iff the boundary between before and after is a break. Per spec.md §7,
// "break? raises (the boolean return cannot encode an error)": a resolver
// or compile-time error panics rather than silently reporting false.
func BreakBefore(before, after string, opts Options) bool {
	d, err := Break(before, after, opts)
	if err != nil {
		panic(err)
	}
	return d.Op == rules.Break
}

// dictionaryLocale reports the canonical dictionary locale for opts, if
// the word-break mode should dispatch to the Dictionary Word-Breaker
// instead of the regex rules (spec.md §9 "dictionary vs regex modes").
func dictionaryLocale(no normalizedOptions) (string, bool) {
	if no.break_ != Word {
		return "", false
	}
	raw := locale.FromInput(no.rawLocale)
	if raw == "" {
		return "", false
	}
	return dictionary.CanonicalLocale(raw)
}

// Next produces one segment, per spec.md §4.7 next(string, options).
// ok is false when s is exhausted ("none" in the spec's notation).
func Next(s string, opts Options) (segment, rest string, ok bool, err error) {
	if s == "" {
		return "", "", false, nil
	}
	no, err := normalize(opts)
	if err != nil {
		return "", "", false, err
	}
	c, err := defaultCatalog()
	if err != nil {
		return "", "", false, wrapErr(err)
	}

	if dictLoc, isDict := dictionaryLocale(no); isDict {
		trie, derr := c.dictionaryFor(dictLoc)
		if derr == nil {
			seg, rst := dictionary.NewBreaker(trie).Next(s)
			return finishNext(seg, rst, no)
		}
		// Dictionary unavailable: fall back to rule-based word breaking
		// (spec.md §4.5 "the driver may fall back to root rule-based word
		// breaking or surface the error"); the Warn-level log already
		// happened inside dictionaryFor.
	}

	loc, err := resolveSegmentationLocale(c, no)
	if err != nil {
		return "", "", false, wrapErr(err)
	}
	rs, err := c.ruleSetFor(loc, no.break_.segdataKind(), no.suppressions)
	if err != nil {
		return "", "", false, wrapErr(err)
	}

	_, size := utf8.DecodeRuneInString(s)
	before := s[:size]
	after := s[size:]
	for {
		d := rules.Evaluate(before, after, rs)
		if d.Op == rules.Break {
			return finishNext(before, after, no)
		}
		before += d.Consumed
		after = d.Remainder
		if after == "" {
			return finishNext(before, after, no)
		}
	}
}

// finishNext applies the trim predicate (spec.md §4.7): a whitespace-only
// segment is skipped by recursing into the rest of the string.
func finishNext(segment, rest string, no normalizedOptions) (string, string, bool, error) {
	if no.trim && isWhitespaceOnly(segment) {
		if rest == "" {
			return "", "", false, nil
		}
		return nextWithNormalized(rest, no)
	}
	return segment, rest, true, nil
}

// nextWithNormalized re-enters Next's trim-recursion path without
// re-validating already-normalized options.
func nextWithNormalized(s string, no normalizedOptions) (string, string, bool, error) {
	opts := Options{
		Locale:       no.rawLocale,
		Break:        no.break_,
		Suppressions: &no.suppressions,
		Trim:         no.trim,
		StrictLocale: no.strict,
	}
	return Next(s, opts)
}

func isWhitespaceOnly(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return true
}

// Split implements spec.md §4.7 split(string, options): iterate Next to
// exhaustion, returning every segment in left-to-right order.
func Split(s string, opts Options) ([]string, error) {
	var out []string
	for {
		seg, rest, ok, err := Next(s, opts)
		if err != nil {
			return nil, err
		}
		if !ok {
			return out, nil
		}
		out = append(out, seg)
		s = rest
	}
}

// Splitter is a restartable, stateful cursor over one string, mirroring
// the teacher package's Graphemes-style iterator class (spec.md §4.7
// splitter(string, options)).
type Splitter struct {
	rest string
	opts Options
	seg  string
	err  error
	done bool
}

// NewSplitter returns a Splitter positioned before s's first segment.
func NewSplitter(s string, opts Options) *Splitter {
	return &Splitter{rest: s, opts: opts}
}

// Next advances to the next segment, returning false once exhausted or on
// error (check Err afterward).
func (sp *Splitter) Next() bool {
	if sp.done || sp.err != nil {
		return false
	}
	seg, rest, ok, err := Next(sp.rest, sp.opts)
	if err != nil {
		sp.err = err
		return false
	}
	if !ok {
		sp.done = true
		return false
	}
	sp.seg, sp.rest = seg, rest
	return true
}

// Segment returns the segment found by the most recent successful Next.
func (sp *Splitter) Segment() string { return sp.seg }

// Err returns the first error encountered, if any.
func (sp *Splitter) Err() error { return sp.err }

// Stream implements spec.md §4.7 stream(string, options): a lazy,
// restartable sequence. Each call to Stream returns a fresh pull function
// closing over its own cursor; callers cancel by dropping it (spec.md §5
// "cancellation is instantaneous and leak-free").
func Stream(s string, opts Options) func() (segment string, ok bool, err error) {
	rest := s
	return func() (string, bool, error) {
		seg, next, ok, err := Next(rest, opts)
		if err != nil || !ok {
			return "", false, err
		}
		rest = next
		return seg, true, nil
	}
}

// KnownSegmentationLocales returns every locale identifier the packaged
// segment data files carry (spec.md §6 known_segmentation_locales).
func KnownSegmentationLocales() ([]string, error) {
	c, err := defaultCatalog()
	if err != nil {
		return nil, wrapErr(err)
	}
	return c.knownSegmentationLocales(), nil
}

// KnownDictionaryLocales returns the fixed set of locales the Dictionary
// Word-Breaker recognizes (spec.md §4.5, §6 known_dictionary_locales).
func KnownDictionaryLocales() []string {
	return []string{"zh", "yue", "ja", "th", "lo", "km", "my"}
}
