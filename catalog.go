package localeseg

import (
	"embed"
	"os"
	"sync"

	"github.com/rs/zerolog"

	"github.com/scalecode-solutions/localeseg/internal/dictionary"
	"github.com/scalecode-solutions/localeseg/internal/rules"
	"github.com/scalecode-solutions/localeseg/internal/segdata"
)

//go:embed data/segments/*.xml
var segmentsFS embed.FS

//go:embed data/dictionaries/*.txt
var dictionariesFS embed.FS

// log is the package-scoped structured logger, in the style
// rudder-server's packages hold one: a context-tagged zerolog.Logger, not
// a globally swappable singleton. Construction events (first load of a
// locale's rules, first load of a dictionary) log at Debug; a dictionary
// fallback logs at Warn. The hot evaluation path never logs.
var log = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, NoColor: true}).
	With().Timestamp().Str("pkg", "localeseg").Logger()

// catalog is the process-wide state described in spec.md §5: an immutable
// segdata catalog built once, a compiled-rule-set cache built lazily under
// a single lock, and a dictionary trie cache built lazily under its own
// lock (internal/dictionary.Cache already implements that pattern).
type catalog struct {
	segs *segdata.Catalog

	ruleMu   sync.Mutex
	ruleSets map[ruleKey]*rules.RuleSet

	dicts *dictionary.Cache
}

type ruleKey struct {
	locale       string
	kind         segdata.Kind
	suppressions bool
}

var (
	globalCatalog     *catalog
	globalCatalogOnce sync.Once
	globalCatalogErr  error
)

// defaultCatalog builds (on first call) and returns the process-wide
// catalog, guarded by a one-time initializer per spec.md §5's "concurrent
// first-use initialization must be guarded by a one-time initializer".
func defaultCatalog() (*catalog, error) {
	globalCatalogOnce.Do(func() {
		segs, err := segdata.Load(segmentsFS, "data/segments")
		if err != nil {
			globalCatalogErr = err
			return
		}
		log.Debug().Strs("locales", segs.KnownLocales()).Msg("segment data loaded")
		globalCatalog = &catalog{
			segs:     segs,
			ruleSets: make(map[ruleKey]*rules.RuleSet),
			dicts:    dictionary.NewCache(),
		}
	})
	return globalCatalog, globalCatalogErr
}

// ruleSetFor returns the compiled, ancestor-merged rule set for
// (locale, kind), applying the suppression subsystem when requested and
// when the locale's sentence data carries an abbreviation list. Results
// are cached for the lifetime of the process (spec.md §5, rule catalog
// "constructed once ... thereafter read-only").
func (c *catalog) ruleSetFor(locale string, kind segdata.Kind, suppressions bool) (*rules.RuleSet, error) {
	key := ruleKey{locale: locale, kind: kind, suppressions: suppressions}

	c.ruleMu.Lock()
	defer c.ruleMu.Unlock()
	if rs, ok := c.ruleSets[key]; ok {
		return rs, nil
	}

	data, err := c.segs.Effective(locale, kind)
	if err != nil {
		return nil, err
	}
	if suppressions && kind == segdata.SentenceBreak && rules.HasRequiredSuppressionVars(data) {
		data = rules.WithSuppressions(data, rules.DefaultSuppressionID)
	}
	rs, err := rules.Compile(data)
	if err != nil {
		return nil, err
	}
	log.Debug().Str("locale", locale).Str("kind", string(kind)).Int("rules", len(rs.Rules)).Msg("rule set compiled")
	c.ruleSets[key] = rs
	return rs, nil
}

// dictionaryFor returns the cached trie for a dictionary locale, loading
// it from the packaged data on first use.
func (c *catalog) dictionaryFor(canonical string) (*dictionary.Trie, error) {
	trie, err := c.dicts.Get(canonical, func() (*dictionary.Trie, error) {
		t, err := dictionary.Load(dictionariesFS, "data/dictionaries", canonical)
		if err != nil {
			return nil, err
		}
		log.Debug().Str("locale", canonical).Int("words", t.Len()).Msg("dictionary loaded")
		return t, nil
	})
	if err != nil {
		log.Warn().Str("locale", canonical).Err(err).Msg("dictionary unavailable, falling back to rule-based word breaking")
		return nil, err
	}
	return trie, nil
}

func (c *catalog) knownSegmentationLocales() []string {
	return c.segs.KnownLocales()
}
