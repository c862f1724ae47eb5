package rules

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/scalecode-solutions/localeseg/internal/segdata"
)

// DefaultSuppressionID is the id the synthesized suppression rule is given
// when the caller does not need it to interleave with a specific pair of
// standard rules. spec.md §4.4 calls out 10.5 as an id that "sits between
// two standard numbered rules"; the shipped sentence_break data leaves the
// id between its rules 10 and 11 free for exactly this purpose (see
// data/segments/root.xml).
const DefaultSuppressionID = 10.5

// requiredSuppressionVars are the variable names the synthesized rule's
// left side references; the sentence_break data for any locale that wants
// suppression support must define them (spec.md §4.4's rule text:
// "$SpacesBefore? $Suppressions $Close* $Sp* $ParaSep?").
var requiredSuppressionVars = []string{"$SpacesBefore", "$Close", "$Sp", "$ParaSep"}

// WithSuppressions returns a copy of data with a synthesized $Suppressions
// variable and a high-priority no-break rule appended, built from data's
// own Suppressions list. If data carries no suppressions, data is returned
// unchanged (no rule is synthesized; nothing to suppress).
func WithSuppressions(data *segdata.Segment, id float64) *segdata.Segment {
	if len(data.Suppressions) == 0 {
		return data
	}

	alt := suppressionAlternation(data.Suppressions)

	out := &segdata.Segment{
		Kind:         data.Kind,
		Variables:    append(append([]segdata.Variable{}, data.Variables...), segdata.Variable{Name: "$Suppressions", Pattern: alt}),
		Rules:        append([]segdata.RawRule{}, data.Rules...),
		Suppressions: data.Suppressions,
	}
	out.Rules = append(out.Rules, segdata.RawRule{
		ID:   strconv.FormatFloat(id, 'f', -1, 64),
		Text: "$SpacesBefore? $Suppressions $Close* $Sp* $ParaSep? ×",
	})
	return out
}

// suppressionAlternation builds the regex alternation of all suppression
// strings with literal dots escaped, matched case-insensitively (spec.md
// §4.4). Each literal is regex-escaped in full (not just its dots) since
// abbreviations may contain other regex metacharacters incidentally.
func suppressionAlternation(suppressions []string) string {
	escaped := make([]string, len(suppressions))
	for i, s := range suppressions {
		escaped[i] = regexp.QuoteMeta(s)
	}
	return "(?i:" + strings.Join(escaped, "|") + ")"
}

// HasRequiredSuppressionVars reports whether data defines every variable
// the synthesized suppression rule's left side needs.
func HasRequiredSuppressionVars(data *segdata.Segment) bool {
	have := make(map[string]bool, len(data.Variables))
	for _, v := range data.Variables {
		have[v.Name] = true
	}
	for _, need := range requiredSuppressionVars {
		if !have[need] {
			return false
		}
	}
	return true
}
