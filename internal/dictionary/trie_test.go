package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scalecode-solutions/localeseg/internal/dictionary"
)

func TestTrieLookupVerdicts(t *testing.T) {
	trie := dictionary.NewTrie()
	trie.Insert("明德", 100)
	trie.Insert("明", 50)

	v, w := trie.Lookup("明德")
	assert.Equal(t, dictionary.Word, v)
	assert.Equal(t, 100, w)

	v, _ = trie.Lookup("明")
	assert.Equal(t, dictionary.Word, v)

	v, _ = trie.Lookup("布")
	assert.Equal(t, dictionary.Absent, v)

	trie2 := dictionary.NewTrie()
	trie2.Insert("abc", 1)
	v, _ = trie2.Lookup("ab")
	assert.Equal(t, dictionary.Prefix, v)
}

func TestTrieLen(t *testing.T) {
	trie := dictionary.NewTrie()
	assert.Equal(t, 0, trie.Len())
	trie.Insert("a", 1)
	trie.Insert("a", 2) // re-inserting the same word must not double-count
	trie.Insert("b", 1)
	assert.Equal(t, 2, trie.Len())
}

// TestPrefixConsistency checks invariant I6: any strict prefix of a Word
// is itself at least a Prefix.
func TestPrefixConsistency(t *testing.T) {
	trie := dictionary.NewTrie()
	trie.Insert("中华人民共和国", 1)
	for _, prefix := range []string{"中", "中华", "中华人", "中华人民"} {
		v, _ := trie.Lookup(prefix)
		assert.NotEqual(t, dictionary.Absent, v, "prefix %q", prefix)
	}
}
