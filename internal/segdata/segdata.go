// Package segdata loads the locale segmentation data files — the raw
// variables, rules, and suppressions that internal/rules compiles into
// executable rule sets.
package segdata

import (
	"encoding/xml"
	"fmt"
	"io/fs"
	"sort"
	"strings"
)

// Kind is one of the four segment kinds a locale data file may describe.
type Kind string

const (
	GraphemeClusterBreak Kind = "grapheme_cluster_break"
	WordBreak            Kind = "word_break"
	SentenceBreak        Kind = "sentence_break"
	LineBreak            Kind = "line_break"
)

var allKinds = []Kind{GraphemeClusterBreak, WordBreak, SentenceBreak, LineBreak}

// normalizeKind maps the handful of spellings the data files use for a
// segmentation type onto the canonical snake_case Kind.
func normalizeKind(raw string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "grapheme_cluster_break", "grapheme", "graphemeclusterbreak":
		return GraphemeClusterBreak, true
	case "word_break", "word", "wordbreak":
		return WordBreak, true
	case "sentence_break", "sentence", "sentencebreak":
		return SentenceBreak, true
	case "line_break", "line", "linebreak":
		return LineBreak, true
	default:
		return "", false
	}
}

// Variable is a single `$name -> pattern` declaration from a data file.
// Declaration order matters: later variables may reference earlier ones.
type Variable struct {
	Name    string
	Pattern string
}

// RawRule is one unparsed rule line, e.g. "$ALetter × $ALetter".
type RawRule struct {
	ID   string // decimal sequence number, e.g. "5" or "10.5"
	Text string
}

// Segment holds one segment kind's raw data for a single locale (not yet
// merged with its ancestors).
type Segment struct {
	Kind         Kind
	Variables    []Variable
	Rules        []RawRule
	Suppressions []string
}

// xmlFile mirrors the <segments> data file schema from spec.md §6.
type xmlFile struct {
	XMLName       xml.Name        `xml:"segments"`
	Locale        string          `xml:"locale,attr"`
	Segmentations []xmlSegmentation `xml:"segmentation"`
}

type xmlSegmentation struct {
	Type         string          `xml:"type,attr"`
	Variables    []xmlVariable   `xml:"variables>variable"`
	Rules        []xmlRule       `xml:"rules>rule"`
	Suppressions []string        `xml:"suppressions>suppression"`
}

type xmlVariable struct {
	ID    string `xml:"id,attr"`
	Value string `xml:",chardata"`
}

type xmlRule struct {
	ID   string `xml:"id,attr"`
	Text string `xml:",chardata"`
}

// Error kinds surfaced by the loader, per spec.md §7.
type ErrUnknownLocale struct{ Locale string }

func (e *ErrUnknownLocale) Error() string { return fmt.Sprintf("unknown_locale: %q", e.Locale) }

type ErrUnknownSegmentType struct {
	Locale string
	Kind   Kind
}

func (e *ErrUnknownSegmentType) Error() string {
	return fmt.Sprintf("unknown_segment_type: %q has no %q data", e.Locale, e.Kind)
}

// Catalog is the process-wide, read-only (after Load) map of
// locale -> kind -> raw segment data.
type Catalog struct {
	locales map[string]map[Kind]*Segment
	order   []string
}

// Load parses every "<dir>/*.xml" file reachable under fsys and returns the
// assembled catalog. File names use underscores in place of hyphens
// (per spec.md §9's open question); both are normalized to hyphenated
// locale identifiers on ingest.
func Load(fsys fs.FS, dir string) (*Catalog, error) {
	entries, err := fs.ReadDir(fsys, dir)
	if err != nil {
		return nil, fmt.Errorf("segdata: read %s: %w", dir, err)
	}

	cat := &Catalog{locales: make(map[string]map[Kind]*Segment)}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xml") {
			continue
		}
		path := dir + "/" + entry.Name()
		raw, err := fs.ReadFile(fsys, path)
		if err != nil {
			return nil, fmt.Errorf("segdata: read %s: %w", path, err)
		}
		var file xmlFile
		if err := xml.Unmarshal(raw, &file); err != nil {
			return nil, fmt.Errorf("segdata: parse %s: %w", path, err)
		}
		locale := file.Locale
		if locale == "" {
			locale = canonicalFromFilename(entry.Name())
		}
		locale = NormalizeLocaleID(locale)

		kinds := make(map[Kind]*Segment, len(file.Segmentations))
		for _, seg := range file.Segmentations {
			kind, ok := normalizeKind(seg.Type)
			if !ok {
				return nil, fmt.Errorf("segdata: %s: unrecognized segmentation type %q", path, seg.Type)
			}
			s := &Segment{Kind: kind}
			for _, v := range seg.Variables {
				s.Variables = append(s.Variables, Variable{Name: strings.TrimSpace(v.ID), Pattern: strings.TrimSpace(v.Value)})
			}
			for _, r := range seg.Rules {
				s.Rules = append(s.Rules, RawRule{ID: strings.TrimSpace(r.ID), Text: strings.TrimSpace(r.Text)})
			}
			for _, sup := range seg.Suppressions {
				s.Suppressions = append(s.Suppressions, strings.TrimSpace(sup))
			}
			kinds[kind] = s
		}
		if _, exists := cat.locales[locale]; !exists {
			cat.order = append(cat.order, locale)
		}
		cat.locales[locale] = kinds
	}
	sort.Strings(cat.order)
	return cat, nil
}

// canonicalFromFilename derives a locale id from "en_US.xml" when the file
// itself carries no locale attribute.
func canonicalFromFilename(name string) string {
	name = strings.TrimSuffix(name, ".xml")
	return name
}

// NormalizeLocaleID converts underscore-joined file-name-style identifiers
// to the canonical hyphen-joined form, lowercasing the language subtag.
func NormalizeLocaleID(id string) string {
	id = strings.ReplaceAll(id, "_", "-")
	parts := strings.Split(id, "-")
	if len(parts) > 0 {
		parts[0] = strings.ToLower(parts[0])
	}
	return strings.Join(parts, "-")
}

// KnownLocales returns every locale identifier present in the catalog.
func (c *Catalog) KnownLocales() []string {
	out := make([]string, len(c.order))
	copy(out, c.order)
	return out
}

// Has reports whether locale has any data loaded.
func (c *Catalog) Has(locale string) bool {
	_, ok := c.locales[NormalizeLocaleID(locale)]
	return ok
}

// Segments returns every segment kind recorded for locale.
func (c *Catalog) Segments(locale string) (map[Kind]*Segment, error) {
	locale = NormalizeLocaleID(locale)
	kinds, ok := c.locales[locale]
	if !ok {
		return nil, &ErrUnknownLocale{Locale: locale}
	}
	return kinds, nil
}

// Segment returns the single (locale, kind) raw record.
func (c *Catalog) Segment(locale string, kind Kind) (*Segment, error) {
	kinds, err := c.Segments(locale)
	if err != nil {
		return nil, err
	}
	s, ok := kinds[kind]
	if !ok {
		return nil, &ErrUnknownSegmentType{Locale: locale, Kind: kind}
	}
	return s, nil
}

// AncestorChain returns the locale-inheritance chain for locale, root
// contributing first and the most specific locale last — per spec.md §4.1
// ("For input locale = a-b-c, the ancestor chain is [a-b-c, a-b, a, root]"),
// this returns it pre-reversed for merge order: [root, a, a-b, a-b-c].
func AncestorChain(locale string) []string {
	locale = NormalizeLocaleID(locale)
	if locale == "" || locale == "root" {
		return []string{"root"}
	}
	parts := strings.Split(locale, "-")
	chain := make([]string, 0, len(parts)+1)
	for i := len(parts); i >= 1; i-- {
		chain = append(chain, strings.Join(parts[:i], "-"))
	}
	chain = append(chain, "root")
	// reverse to root-first order
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// Effective merges locale's own data for kind with all of its ancestors'
// data up to root, per invariant I5: variables concatenate (later entries
// shadow earlier ones of the same name at substitution time), rule lists
// concatenate (sorted by id downstream, in the compiler), suppressions
// concatenate.
func (c *Catalog) Effective(locale string, kind Kind) (*Segment, error) {
	chain := AncestorChain(locale)
	merged := &Segment{Kind: kind}
	found := false
	var lastErr error
	for _, anc := range chain {
		seg, err := c.Segment(anc, kind)
		if err != nil {
			lastErr = err
			continue
		}
		found = true
		merged.Variables = append(merged.Variables, seg.Variables...)
		merged.Rules = append(merged.Rules, seg.Rules...)
		merged.Suppressions = append(merged.Suppressions, seg.Suppressions...)
	}
	if !found {
		return nil, lastErr
	}
	return merged, nil
}
