package dictionary

import (
	"bufio"
	"fmt"
	"io/fs"
	"strconv"
	"strings"
	"sync"
)

// ErrUnavailable is returned when a dictionary locale is requested but its
// word list is not installed in the packaged data directory.
type ErrUnavailable struct{ Locale string }

func (e *ErrUnavailable) Error() string {
	return fmt.Sprintf("dictionary_unavailable: %s", e.Locale)
}

// CanonicalLocale folds a requested locale onto the dictionary it actually
// shares, per spec.md §4.5 step 1: Cantonese/Hong-Kong script variants and
// Japanese fold onto the Chinese dictionary; everything else dictionary-
// eligible uses its own file.
func CanonicalLocale(locale string) (string, bool) {
	l := strings.ToLower(locale)
	switch {
	case strings.HasPrefix(l, "zh"), strings.HasPrefix(l, "yue"), strings.HasPrefix(l, "ja"):
		return "zh", true
	case strings.HasPrefix(l, "th"):
		return "th", true
	case strings.HasPrefix(l, "lo"):
		return "lo", true
	case strings.HasPrefix(l, "km"):
		return "km", true
	case strings.HasPrefix(l, "my"):
		return "my", true
	default:
		return "", false
	}
}

// Load reads "<dir>/<locale>.txt" — one word per line, optional tab-
// separated integer weight, '#'-prefixed and blank lines ignored — into a
// fresh Trie.
func Load(fsys fs.FS, dir, locale string) (*Trie, error) {
	path := dir + "/" + locale + ".txt"
	f, err := fsys.Open(path)
	if err != nil {
		return nil, &ErrUnavailable{Locale: locale}
	}
	defer f.Close()

	trie := NewTrie()
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(strings.TrimPrefix(scanner.Text(), "\uFEFF"))
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		word := line
		weight := 0
		if tab := strings.IndexByte(line, '\t'); tab >= 0 {
			word = line[:tab]
			if w, err := strconv.Atoi(strings.TrimSpace(line[tab+1:])); err == nil {
				weight = w
			}
		}
		if word == "" {
			continue
		}
		trie.Insert(word, weight)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("dictionary: read %s: %w", path, err)
	}
	return trie, nil
}

// Cache is the process-wide dictionary trie cache described in spec.md §5.
// A single mutex guards it: every Get and Loaded call takes the lock, hits
// included, so there is no lock-free read path, and a miss loads the trie
// while holding the lock. Entries are never mutated or evicted once set.
type Cache struct {
	mu    sync.Mutex
	tries map[string]*Trie
}

// NewCache returns an empty cache.
func NewCache() *Cache { return &Cache{tries: make(map[string]*Trie)} }

// Get returns the cached trie for the canonical dictionary locale, loading
// it via loadFn on first use.
func (c *Cache) Get(locale string, loadFn func() (*Trie, error)) (*Trie, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if t, ok := c.tries[locale]; ok {
		return t, nil
	}
	t, err := loadFn()
	if err != nil {
		return nil, err
	}
	c.tries[locale] = t
	return t, nil
}

// Loaded reports whether locale's dictionary has already been loaded,
// without triggering a load (spec.md §3: "the dictionary catalog ... is
// observable (loaded / not loaded)").
func (c *Cache) Loaded(locale string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	_, ok := c.tries[locale]
	return ok
}
