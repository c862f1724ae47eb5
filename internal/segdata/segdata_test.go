package segdata_test

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/scalecode-solutions/localeseg/internal/segdata"
)

const rootXML = `<?xml version="1.0"?>
<segments locale="root">
  <segmentation type="word_break">
    <variables>
      <variable id="$A">a</variable>
    </variables>
    <rules>
      <rule id="1">$A × $A</rule>
    </rules>
  </segmentation>
</segments>`

const enXML = `<?xml version="1.0"?>
<segments locale="en">
  <segmentation type="word_break">
    <rules>
      <rule id="2">× b</rule>
    </rules>
  </segmentation>
</segments>`

func fs() fstest.MapFS {
	return fstest.MapFS{
		"segments/root.xml": {Data: []byte(rootXML)},
		"segments/en.xml":   {Data: []byte(enXML)},
	}
}

func TestLoadKnownLocales(t *testing.T) {
	cat, err := segdata.Load(fs(), "segments")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{"root", "en"}, cat.KnownLocales())
	assert.True(t, cat.Has("en"))
	assert.False(t, cat.Has("fr"))
}

func TestSegmentUnknownLocale(t *testing.T) {
	cat, err := segdata.Load(fs(), "segments")
	require.NoError(t, err)
	_, err = cat.Segments("fr")
	var want *segdata.ErrUnknownLocale
	require.ErrorAs(t, err, &want)
}

func TestSegmentUnknownKind(t *testing.T) {
	cat, err := segdata.Load(fs(), "segments")
	require.NoError(t, err)
	_, err = cat.Segment("root", segdata.SentenceBreak)
	var want *segdata.ErrUnknownSegmentType
	require.ErrorAs(t, err, &want)
}

func TestAncestorChainRootFirst(t *testing.T) {
	assert.Equal(t, []string{"root"}, segdata.AncestorChain("root"))
	assert.Equal(t, []string{"root", "zh"}, segdata.AncestorChain("zh"))
	assert.Equal(t, []string{"root", "zh", "zh-Hant", "zh-Hant-HK"}, segdata.AncestorChain("zh-Hant-HK"))
}

func TestEffectiveMergesAncestors(t *testing.T) {
	cat, err := segdata.Load(fs(), "segments")
	require.NoError(t, err)

	merged, err := cat.Effective("en", segdata.WordBreak)
	require.NoError(t, err)
	require.Len(t, merged.Variables, 1)
	require.Len(t, merged.Rules, 2)
	assert.Equal(t, "1", merged.Rules[0].ID)
	assert.Equal(t, "2", merged.Rules[1].ID)
}

func TestEffectiveFallsBackToRootWhenLocaleFileAbsent(t *testing.T) {
	cat, err := segdata.Load(fs(), "segments")
	require.NoError(t, err)

	merged, err := cat.Effective("en-US", segdata.WordBreak)
	require.NoError(t, err)
	assert.Len(t, merged.Rules, 2)
}

func TestNormalizeLocaleID(t *testing.T) {
	assert.Equal(t, "zh-Hant", segdata.NormalizeLocaleID("zh_Hant"))
	assert.Equal(t, "en-us", segdata.NormalizeLocaleID("EN_us"))
}
