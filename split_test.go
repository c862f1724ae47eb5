package localeseg_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalecode-solutions/localeseg"
	"github.com/scalecode-solutions/localeseg/internal/rules"
)

func TestScenario1WordSplit(t *testing.T) {
	got, err := localeseg.Split("This is a sentence. And another.", localeseg.Options{Break: localeseg.Word})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"This", " ", "is", " ", "a", " ", "sentence", ".", " ", "And", " ", "another", ".",
	}, got)
}

func TestWordSplitKeepsApostropheContraction(t *testing.T) {
	got, err := localeseg.Split("don't", localeseg.Options{Break: localeseg.Word})
	require.NoError(t, err)
	assert.Equal(t, []string{"don't"}, got)
}

func TestScenario2SentenceSplit(t *testing.T) {
	got, err := localeseg.Split("This is a sentence. And another.", localeseg.Options{Break: localeseg.Sentence})
	require.NoError(t, err)
	assert.Equal(t, []string{"This is a sentence. ", "And another."}, got)
}

func TestScenario3SuppressedAbbreviationDoesNotBreak(t *testing.T) {
	s := "No, I don't have a Ph.D. but I don't think it matters."
	got, err := localeseg.Split(s, localeseg.Options{Break: localeseg.Sentence, Trim: true})
	require.NoError(t, err)
	assert.Equal(t, []string{s}, got)
}

func TestScenario4LineSplit(t *testing.T) {
	got, err := localeseg.Split("This is a sentence. And another.", localeseg.Options{Break: localeseg.Line})
	require.NoError(t, err)
	assert.Equal(t, []string{"This ", "is ", "a ", "sentence. ", "And ", "another."}, got)
}

func TestScenario5DictionaryWordBreaking(t *testing.T) {
	got, err := localeseg.Split("布鲁赫", localeseg.Options{Break: localeseg.Word, Locale: "zh"})
	require.NoError(t, err)
	assert.Equal(t, []string{"布", "鲁", "赫"}, got)

	got, err = localeseg.Split("明德", localeseg.Options{Break: localeseg.Word, Locale: "zh-Hant"})
	require.NoError(t, err)
	assert.Equal(t, []string{"明德"}, got)
}

func TestPropertyP1ConcatenationRoundTrips(t *testing.T) {
	for _, s := range []string{
		"This is a sentence. And another.",
		"No, I don't have a Ph.D. but I don't think it matters.",
		"布鲁赫",
	} {
		for _, b := range []localeseg.BreakKind{localeseg.Grapheme, localeseg.Word, localeseg.Sentence, localeseg.Line} {
			got, err := localeseg.Split(s, localeseg.Options{Break: b})
			require.NoError(t, err)
			assert.Equal(t, s, strings.Join(got, ""), "break=%s s=%q", b, s)
		}
	}
}

func TestPropertyP7SuppressionToggle(t *testing.T) {
	s := "Mr. Smith is here."
	withSuppression, err := localeseg.Split(s, localeseg.Options{Break: localeseg.Sentence})
	require.NoError(t, err)
	assert.Len(t, withSuppression, 1)

	without, err := localeseg.Split(s, localeseg.Options{Break: localeseg.Sentence, Suppressions: localeseg.BoolPtr(false)})
	require.NoError(t, err)
	assert.Greater(t, len(without), 1)
}

func TestPropertyP8LocaleFallback(t *testing.T) {
	hk, err := localeseg.Split("明德", localeseg.Options{Break: localeseg.Word, Locale: "zh-Hant-HK"})
	require.NoError(t, err)
	hant, err := localeseg.Split("明德", localeseg.Options{Break: localeseg.Word, Locale: "zh-Hant"})
	require.NoError(t, err)
	assert.Equal(t, hant, hk)
}

func TestTrimDropsWhitespaceOnlySegments(t *testing.T) {
	got, err := localeseg.Split("a  b", localeseg.Options{Break: localeseg.Word, Trim: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, got)
}

func TestInvalidBreakKindErrors(t *testing.T) {
	_, err := localeseg.Split("x", localeseg.Options{Break: localeseg.BreakKind("paragraph")})
	require.Error(t, err)
	var want *localeseg.Error
	require.ErrorAs(t, err, &want)
	assert.Equal(t, localeseg.KindInvalidBreakKind, want.Kind)
}

func TestStrictUnknownLocaleErrors(t *testing.T) {
	_, err := localeseg.Split("x", localeseg.Options{Break: localeseg.Word, Locale: "xx-Yyyy-ZZ", StrictLocale: true})
	require.Error(t, err)
	var want *localeseg.Error
	require.ErrorAs(t, err, &want)
	assert.Equal(t, localeseg.KindUnknownLocale, want.Kind)
}

func TestBreakReturnsDecisionAtWordBoundary(t *testing.T) {
	d, err := localeseg.Break("cat", " dog", localeseg.Options{Break: localeseg.Word})
	require.NoError(t, err)
	assert.Equal(t, rules.Break, d.Op)
}

func TestBreakBeforeMatchesBreak(t *testing.T) {
	assert.True(t, localeseg.BreakBefore("cat", " dog", localeseg.Options{Break: localeseg.Word}))
	assert.False(t, localeseg.BreakBefore("a", "b", localeseg.Options{Break: localeseg.Word}))
}

func TestBreakBeforePanicsOnInvalidOptions(t *testing.T) {
	assert.Panics(t, func() {
		localeseg.BreakBefore("a", "b", localeseg.Options{Break: localeseg.BreakKind("nonsense")})
	})
}

func TestSplitterIteratesAllSegments(t *testing.T) {
	sp := localeseg.NewSplitter("one two three", localeseg.Options{Break: localeseg.Word})
	var got []string
	for sp.Next() {
		got = append(got, sp.Segment())
	}
	require.NoError(t, sp.Err())
	assert.Equal(t, []string{"one", " ", "two", " ", "three"}, got)
}

func TestSplitterSurfacesError(t *testing.T) {
	sp := localeseg.NewSplitter("x", localeseg.Options{Break: localeseg.BreakKind("nonsense")})
	assert.False(t, sp.Next())
	require.Error(t, sp.Err())
}

func TestStreamProducesSameSegmentsAsSplit(t *testing.T) {
	s := "one two three"
	want, err := localeseg.Split(s, localeseg.Options{Break: localeseg.Word})
	require.NoError(t, err)

	pull := localeseg.Stream(s, localeseg.Options{Break: localeseg.Word})
	var got []string
	for {
		seg, ok, err := pull()
		require.NoError(t, err)
		if !ok {
			break
		}
		got = append(got, seg)
	}
	assert.Equal(t, want, got)
}

func TestStreamIsRestartable(t *testing.T) {
	s := "a b"
	first := localeseg.Stream(s, localeseg.Options{Break: localeseg.Word})
	second := localeseg.Stream(s, localeseg.Options{Break: localeseg.Word})

	seg1, ok, err := first()
	require.NoError(t, err)
	require.True(t, ok)
	seg2, ok, err := second()
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, seg1, seg2)
}

func TestKnownSegmentationLocalesIncludesRootAndChinese(t *testing.T) {
	got, err := localeseg.KnownSegmentationLocales()
	require.NoError(t, err)
	assert.Contains(t, got, "root")
	assert.Contains(t, got, "zh")
}

func TestKnownDictionaryLocales(t *testing.T) {
	got := localeseg.KnownDictionaryLocales()
	assert.ElementsMatch(t, []string{"zh", "yue", "ja", "th", "lo", "km", "my"}, got)
}

func TestFoldAndEqualsIgnoringCase(t *testing.T) {
	assert.Equal(t, "hello", localeseg.Fold("HELLO"))
	assert.True(t, localeseg.EqualsIgnoringCase("Straße", "STRASSE"))
	assert.False(t, localeseg.EqualsIgnoringCase("cat", "dog"))
}

func TestFoldLocaleTurkicOverride(t *testing.T) {
	assert.NotEqual(t, localeseg.Fold("I"), localeseg.FoldLocale("I", "tr"))
	assert.True(t, localeseg.EqualsIgnoringCaseLocale("DİYARBAKIR", "diyarbakır", "tr"))
}

func TestUpcaseDowncaseRoundTripViaOptions(t *testing.T) {
	up := localeseg.Upcase("Diyarbakır", localeseg.Options{Locale: "tr"})
	assert.Equal(t, "DİYARBAKIR", up)
	down := localeseg.Downcase(up, localeseg.Options{Locale: "tr"})
	assert.Equal(t, "diyarbakır", down)
}

func TestTitlecaseAppliesPerWord(t *testing.T) {
	got, err := localeseg.Titlecase("the quick fox", localeseg.Options{})
	require.NoError(t, err)
	assert.Equal(t, "The Quick Fox", got)
}

func TestTitlecaseDutchDigraph(t *testing.T) {
	got, err := localeseg.Titlecase("ijsselmeer", localeseg.Options{Locale: "nl"})
	require.NoError(t, err)
	assert.Equal(t, "IJsselmeer", got)
}

func TestSpecialCasingLocales(t *testing.T) {
	got := localeseg.SpecialCasingLocales()
	assert.ElementsMatch(t, []string{"tr", "az", "lt", "nl", "el"}, got)
}

func TestGraphemeClusterCount(t *testing.T) {
	n, err := localeseg.GraphemeClusterCount("hello")
	require.NoError(t, err)
	assert.Equal(t, 5, n)
}

func TestGraphemesIteratesClusters(t *testing.T) {
	g := localeseg.NewGraphemes("abc", localeseg.Options{})
	var got []string
	for g.Next() {
		got = append(got, g.Str())
	}
	require.NoError(t, g.Err())
	assert.Equal(t, []string{"a", "b", "c"}, got)
}
