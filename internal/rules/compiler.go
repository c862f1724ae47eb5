// Package rules implements the Rule Compiler and Rule Evaluator: it turns
// the raw variables/rules/suppressions segdata.Load produces into an
// executable RuleSet, and walks that RuleSet to find the first rule that
// fires at a given boundary.
package rules

import (
	"regexp"
	"strings"

	"github.com/dlclark/regexp2"

	"github.com/scalecode-solutions/localeseg/internal/segdata"
)

// Operator is the break/no-break decision a fired rule encodes.
type Operator int

const (
	NoBreak Operator = iota
	Break
)

// side is a compiled half of a rule. A nil side is ANY: it matches the
// empty string unconditionally (spec.md §3, Rule.left/right: CompiledRegex | ANY).
type side struct {
	re *regexp2.Regexp
}

func (s *side) isAny() bool { return s == nil }

// Rule is one compiled, anchored rule ready for evaluation.
type Rule struct {
	ID    float64
	Op    Operator
	Left  *side // anchored at end of "before"
	Right *side // anchored at start of "after"
}

// RuleSet is an ordered, compiled rule list for one (locale, kind).
type RuleSet struct {
	Rules []Rule
}

var varNamePattern = regexp.MustCompile(`\$[A-Za-z][A-Za-z0-9_]*`)

// expandVariables builds a name -> fully-expanded-pattern map by walking
// vars in declaration order, substituting references to earlier variables
// as it goes (spec.md §4.2 step 1; §9 "fixed point over the
// declaration-ordered variable list").
func expandVariables(vars []segdata.Variable) (map[string]string, error) {
	expanded := make(map[string]string, len(vars))
	for _, v := range vars {
		pattern, err := substitute(v.Pattern, expanded)
		if err != nil {
			return nil, err
		}
		expanded[v.Name] = pattern
	}
	return expanded, nil
}

// substitute textually replaces every $name reference in text with its
// expansion from known, recursively, until no references remain or an
// unresolved reference is found.
func substitute(text string, known map[string]string) (string, error) {
	const maxPasses = 64 // guards against accidental cycles in malformed data
	for pass := 0; pass < maxPasses; pass++ {
		var unresolved string
		replaced := varNamePattern.ReplaceAllStringFunc(text, func(name string) string {
			if val, ok := known[name]; ok {
				return "(?:" + val + ")"
			}
			unresolved = name
			return name
		})
		if unresolved != "" && replaced == text {
			return "", &ErrVariableNotFound{Name: unresolved}
		}
		if replaced == text {
			return replaced, nil
		}
		text = replaced
	}
	return text, nil
}

// opRunes are the two operators a rule's text may contain, per spec.md §3
// (Rule.operator) and §6 ("OP is the literal Unicode code point ÷ or ×").
const (
	opBreak   = '÷'
	opNoBreak = '×'
)

// splitRule splits a rule's (already variable-substituted) text on its
// single ÷ or × operator. Exactly one operator occurrence is required
// (invariant I2); anything else is invalid_rule.
func splitRule(id, text string) (left string, op Operator, right string, err error) {
	breakIdx := strings.IndexRune(text, opBreak)
	noBreakIdx := strings.IndexRune(text, opNoBreak)
	switch {
	case breakIdx >= 0 && noBreakIdx < 0:
		left, right = text[:breakIdx], text[breakIdx+len(string(opBreak)):]
		op = Break
	case noBreakIdx >= 0 && breakIdx < 0:
		left, right = text[:noBreakIdx], text[noBreakIdx+len(string(opNoBreak)):]
		op = NoBreak
	default:
		return "", 0, "", &ErrInvalidRule{ID: id, Text: text}
	}
	if strings.ContainsRune(left, opBreak) || strings.ContainsRune(left, opNoBreak) ||
		strings.ContainsRune(right, opBreak) || strings.ContainsRune(right, opNoBreak) {
		return "", 0, "", &ErrInvalidRule{ID: id, Text: text}
	}
	return strings.TrimSpace(left), op, strings.TrimSpace(right), nil
}

// regexOptions implements spec.md §4.2 step 2's flag list: Unicode mode
// (regexp2 is Unicode-aware by default), extended/ignore-pattern-whitespace,
// Unicode character properties (native), and dot-matches-newline
// (regexp2.Singleline — the name is a .NET-ism for what other engines call
// "dotall"). "Dollar matches end only" is realized by never emitting a bare
// $ or ^ anchor below: anchors are always the explicit \A / \z end markers,
// which match only the true start/end of the string regardless of any
// trailing line terminator, making an options flag for it unnecessary.
const regexOptions = regexp2.IgnorePatternWhitespace | regexp2.Singleline

func compileSide(id, fragment string, atEnd bool) (*side, error) {
	fragment = strings.TrimSpace(fragment)
	if fragment == "" {
		return nil, nil // ANY
	}
	anchored := fragment
	if atEnd {
		anchored = "(?:" + fragment + ")\\z"
	} else {
		anchored = "\\A(?:" + fragment + ")"
	}
	re, err := regexp2.Compile(anchored, regexOptions)
	if err != nil {
		return nil, &ErrRegexCompile{ID: id, Fragment: fragment, Cause: err}
	}
	return &side{re: re}, nil
}

// Compile turns a locale's effective (ancestor-merged) raw segment data
// into an executable RuleSet, per spec.md §4.2.
func Compile(data *segdata.Segment) (*RuleSet, error) {
	varMap, err := expandVariables(data.Variables)
	if err != nil {
		return nil, err
	}

	rs := &RuleSet{Rules: make([]Rule, 0, len(data.Rules))}
	for _, raw := range data.Rules {
		text, err := substitute(raw.Text, varMap)
		if err != nil {
			return nil, err
		}
		leftText, op, rightText, err := splitRule(raw.ID, text)
		if err != nil {
			return nil, err
		}
		left, err := compileSide(raw.ID, leftText, true)
		if err != nil {
			return nil, err
		}
		right, err := compileSide(raw.ID, rightText, false)
		if err != nil {
			return nil, err
		}
		id, err := parseRationalID(raw.ID)
		if err != nil {
			return nil, err
		}
		rs.Rules = append(rs.Rules, Rule{ID: id, Op: op, Left: left, Right: right})
	}
	sortRules(rs.Rules)
	return rs, nil
}

func sortRules(rs []Rule) {
	// Rules within a rule set are totally ordered by id (invariant I3).
	// Insertion sort: rule counts are small (hundreds at most) and this
	// keeps equal ids in file declaration order, which matters for
	// suppression rules sharing a fractional id with no sibling.
	for i := 1; i < len(rs); i++ {
		for j := i; j > 0 && rs[j].ID < rs[j-1].ID; j-- {
			rs[j], rs[j-1] = rs[j-1], rs[j]
		}
	}
}
