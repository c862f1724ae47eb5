package localeseg

// GraphemeClusterCount returns the number of user-perceived characters in
// s (spec.md's supplemental convenience wrapper over
// Split(s, Options{Break: Grapheme})).
func GraphemeClusterCount(s string) (int, error) {
	segs, err := Split(s, Options{Break: Grapheme})
	if err != nil {
		return 0, err
	}
	return len(segs), nil
}

// Graphemes is a grapheme-cluster cursor mirroring the teacher package's
// iterator class, rebuilt here to call the Segmenter Driver instead of a
// hand-rolled state machine, so callers migrating from that API have a
// matching type to reach for.
type Graphemes struct {
	sp *Splitter
}

// NewGraphemes returns a Graphemes cursor over s, honoring locale and
// trim from opts; opts.Break is forced to Grapheme.
func NewGraphemes(s string, opts Options) *Graphemes {
	opts.Break = Grapheme
	return &Graphemes{sp: NewSplitter(s, opts)}
}

// Next advances to the next grapheme cluster.
func (g *Graphemes) Next() bool { return g.sp.Next() }

// Str returns the current grapheme cluster.
func (g *Graphemes) Str() string { return g.sp.Segment() }

// Err returns the first error encountered, if any.
func (g *Graphemes) Err() error { return g.sp.Err() }
