package locale_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalecode-solutions/localeseg/internal/locale"
)

func TestCanonicalize(t *testing.T) {
	cases := map[string]string{
		"en_US":        "en-US",
		"zh-hant-hk":   "zh-Hant-HK",
		"ZH-HANT":      "zh-Hant",
		"root":         "root",
		"":             "",
		"en":           "en",
	}
	for in, want := range cases {
		assert.Equal(t, want, locale.Canonicalize(in), "input %q", in)
	}
}

func TestFromInputString(t *testing.T) {
	assert.Equal(t, "en-US", locale.FromInput("en_US"))
	assert.Equal(t, "", locale.FromInput(nil))
}

type fakeTag struct {
	canonical, cldr, lang string
}

func (f fakeTag) CanonicalName() string { return f.canonical }
func (f fakeTag) CLDRName() string      { return f.cldr }
func (f fakeTag) Language() string      { return f.lang }

func TestFromInputStructuredTag(t *testing.T) {
	assert.Equal(t, "zh-Hant", locale.FromInput(fakeTag{canonical: "zh-Hant"}))
	assert.Equal(t, "zh-Hant", locale.FromInput(fakeTag{cldr: "zh-Hant"}))
	assert.Equal(t, "tr", locale.FromInput(fakeTag{lang: "tr"}))
}

func known(set ...string) locale.Known {
	m := make(map[string]bool, len(set))
	for _, s := range set {
		m[s] = true
	}
	return func(c string) bool { return m[c] }
}

func TestResolveFallbackChain(t *testing.T) {
	k := known("root", "zh", "zh-Hant")
	got, err := locale.Resolve("zh-Hant-HK", k, "root", locale.Lenient)
	require.NoError(t, err)
	assert.Equal(t, "zh-Hant", got)
}

func TestResolveUnspecifiedReturnsFallback(t *testing.T) {
	k := known("root")
	got, err := locale.Resolve(nil, k, "root", locale.Strict)
	require.NoError(t, err)
	assert.Equal(t, "root", got)
}

func TestResolveStrictUnknownErrors(t *testing.T) {
	k := known("root")
	_, err := locale.Resolve("xx-Yyyy-ZZ", k, "root", locale.Strict)
	var want *locale.ErrUnknownLocale
	require.ErrorAs(t, err, &want)
}

func TestResolveLenientUnknownFallsBack(t *testing.T) {
	k := known("root")
	got, err := locale.Resolve("xx-Yyyy-ZZ", k, "root", locale.Lenient)
	require.NoError(t, err)
	assert.Equal(t, "root", got)
}

func TestResolveDictionaryYueFoldsToZh(t *testing.T) {
	k := known("root", "zh")
	got, err := locale.Resolve("yue-Hant", k, "zh", locale.Lenient)
	require.NoError(t, err)
	// yue-Hant has no zh candidate of its own shape in the known set, so
	// it falls back to the caller-supplied default ("zh"), matching how
	// the dictionary breaker folds Cantonese onto the Chinese wordlist.
	assert.Equal(t, "zh", got)
}
