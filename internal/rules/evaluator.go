package rules

import "unicode/utf8"

// Decision is the result of evaluating a rule set at one boundary, per
// spec.md §4.3: Decision = {operator, (before, (consumed, remainder))}.
type Decision struct {
	Op        Operator
	Before    string
	Consumed  string
	Remainder string
}

// Evaluate walks rs in id order and returns the decision produced by the
// first rule whose left regex matches the tail of before and whose right
// regex matches the head of after. If after is empty, the decision is
// always Break with nothing consumed (end-of-text). If no rule fires while
// after is nonempty, the default rule applies: split off after's first
// code point and return Break.
func Evaluate(before, after string, rs *RuleSet) Decision {
	if after == "" {
		return Decision{Op: Break, Before: before}
	}

	for _, rule := range rs.Rules {
		if rule.Left.isAny() && rule.Right.isAny() {
			continue // degenerate: both sides ANY never distinguishes a boundary
		}
		if !matchesEnd(rule.Left, before) {
			continue
		}
		consumed, ok := matchHead(rule.Right, after)
		if !ok {
			continue
		}
		return Decision{
			Op:        rule.Op,
			Before:    before,
			Consumed:  consumed,
			Remainder: after[len(consumed):],
		}
	}

	_, size := utf8.DecodeRuneInString(after)
	return Decision{Op: Break, Before: before, Consumed: after[:size], Remainder: after[size:]}
}

// matchesEnd reports whether s's left side matches. ANY always matches
// (it represents the empty pattern).
func matchesEnd(s *side, text string) bool {
	if s.isAny() {
		return true
	}
	m, err := s.re.FindStringMatch(text)
	return err == nil && m != nil
}

// matchHead reports whether s's right side matches at the start of text,
// returning the consumed substring. For ANY, the consumed substring is the
// text's first code point (spec.md §4.3: "When R is ANY, consumed is the
// first codepoint of after").
func matchHead(s *side, text string) (string, bool) {
	if s.isAny() {
		_, size := utf8.DecodeRuneInString(text)
		return text[:size], true
	}
	m, err := s.re.FindStringMatch(text)
	if err != nil || m == nil {
		return "", false
	}
	return m.String(), true
}
