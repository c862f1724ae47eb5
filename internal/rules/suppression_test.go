package rules_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalecode-solutions/localeseg/internal/rules"
	"github.com/scalecode-solutions/localeseg/internal/segdata"
)

func sentenceSeg(suppressions []string) *segdata.Segment {
	return &segdata.Segment{
		Kind: segdata.SentenceBreak,
		Variables: []segdata.Variable{
			{Name: "$SpacesBefore", Pattern: `[ ]*`},
			{Name: "$Close", Pattern: `[)\]]`},
			{Name: "$Sp", Pattern: `[ ]`},
			{Name: "$ParaSep", Pattern: "\n"},
			{Name: "$Upper", Pattern: `[A-Z]`},
		},
		Rules: []segdata.RawRule{
			{ID: "11", Text: `. $Sp* ÷ $Upper`},
		},
		Suppressions: suppressions,
	}
}

func TestWithSuppressionsNoopWhenEmpty(t *testing.T) {
	data := sentenceSeg(nil)
	out := rules.WithSuppressions(data, rules.DefaultSuppressionID)
	assert.Same(t, data, out)
}

func TestWithSuppressionsSynthesizesNoBreakRule(t *testing.T) {
	data := sentenceSeg([]string{"Mr.", "Ph."})
	out := rules.WithSuppressions(data, rules.DefaultSuppressionID)
	require.Len(t, out.Rules, 2)
	assert.Equal(t, "10.5", out.Rules[1].ID)

	rs, err := rules.Compile(out)
	require.NoError(t, err)

	// "Ph." followed by an uppercase "D" must not break.
	d := rules.Evaluate("Ph.", "D. but", rs)
	assert.Equal(t, rules.NoBreak, d.Op)
}

func TestHasRequiredSuppressionVars(t *testing.T) {
	complete := sentenceSeg(nil)
	assert.True(t, rules.HasRequiredSuppressionVars(complete))

	incomplete := &segdata.Segment{Kind: segdata.SentenceBreak}
	assert.False(t, rules.HasRequiredSuppressionVars(incomplete))
}
