package dictionary_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/scalecode-solutions/localeseg/internal/dictionary"
)

func buildTrie(words ...string) *dictionary.Trie {
	trie := dictionary.NewTrie()
	for _, w := range words {
		trie.Insert(w, 1)
	}
	return trie
}

func TestBreakerLongestMatchWins(t *testing.T) {
	trie := buildTrie("中", "中华", "中华人民共和国")
	b := dictionary.NewBreaker(trie)
	seg, rest := b.Next("中华人民共和国很大")
	assert.Equal(t, "中华人民共和国", seg)
	assert.Equal(t, "很大", rest)
}

func TestBreakerFallsBackToSingleCodepoint(t *testing.T) {
	trie := buildTrie("明德")
	b := dictionary.NewBreaker(trie)
	seg, rest := b.Next("布鲁赫")
	assert.Equal(t, "布", seg)
	assert.Equal(t, "鲁赫", rest)
}

func TestSplitScenarioFive(t *testing.T) {
	trie := buildTrie("明德")
	b := dictionary.NewBreaker(trie)

	assert.Equal(t, []string{"布", "鲁", "赫"}, b.Split("布鲁赫"))
	assert.Equal(t, []string{"明德"}, b.Split("明德"))
}

func TestBreakerPrefixWithoutWordFallsBack(t *testing.T) {
	trie := buildTrie("中华人民共和国") // "中" alone is a prefix, not a word
	b := dictionary.NewBreaker(trie)
	seg, rest := b.Next("中国")
	assert.Equal(t, "中", seg)
	assert.Equal(t, "国", rest)
}
