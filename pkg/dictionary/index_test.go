package dictionary

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddWordAndExists(t *testing.T) {
	idx := NewIndexFromWords([]string{"apple", "Banana", "app"})

	testCases := []struct {
		word   string
		exists bool
	}{
		{"apple", true},
		{"APPLE", true},
		{"ApPlE", true},
		{"banana", true},
		{"app", true},
		{"ap", false},
		{"appl", false},
		{"apples", false},
		{"cherry", false},
		{"", false},
	}

	for _, tc := range testCases {
		t.Run(fmt.Sprintf("%q", tc.word), func(t *testing.T) {
			assert.Equal(t, tc.exists, idx.WordExists(tc.word))
		})
	}
}

func TestPrefixOfStoredWordIsNotAWord(t *testing.T) {
	idx := NewIndex()
	idx.AddWord("apple")

	assert.False(t, idx.WordExists("ap"))
	assert.False(t, idx.WordExists("a"))
	assert.True(t, idx.WordExists("apple"))
}

func TestAddWordDeduplicates(t *testing.T) {
	idx := NewIndex()

	assert.True(t, idx.AddWord("hello"))
	assert.False(t, idx.AddWord("hello"))
	assert.False(t, idx.AddWord("HELLO"))

	assert.True(t, idx.WordExists("hello"))
	assert.Equal(t, 1, idx.Len())
	assert.Equal(t, []string{"hello"}, idx.Words())
}

func TestAddWordEmptyIgnored(t *testing.T) {
	idx := NewIndex()

	assert.False(t, idx.AddWord(""))
	assert.Equal(t, 0, idx.Len())
	assert.False(t, idx.WordExists(""))
	assert.Empty(t, idx.FindSuggestions(""))
}

func TestAddWordKeepsNonLetters(t *testing.T) {
	idx := NewIndex()
	idx.AddWord("Word2Vec")
	idx.AddWord("  spaced ")

	assert.True(t, idx.WordExists("word2vec"))
	assert.True(t, idx.WordExists("  SPACED "))
	assert.False(t, idx.WordExists("spaced"))
}

func TestWordsLowercasedInInsertionOrder(t *testing.T) {
	idx := NewIndexFromWords([]string{"Zebra", "apple", "Mango", "apple"})

	assert.Equal(t, []string{"zebra", "apple", "mango"}, idx.Words())

	// the returned slice is a copy
	words := idx.Words()
	words[0] = "changed"
	assert.Equal(t, "zebra", idx.Words()[0])
}

func TestFindSuggestionsOrder(t *testing.T) {
	idx := NewIndexFromWords([]string{"apple", "app", "apply", "ape", "application", "banana"})

	testCases := []struct {
		prefix   string
		expected []string
	}{
		{"ap", []string{"app", "apple", "apply", "application", "ape"}},
		{"APP", []string{"app", "apple", "apply", "application"}},
		{"appl", []string{"apple", "apply", "application"}},
		{"apple", []string{"apple"}},
		{"b", []string{"banana"}},
		{"", []string{"app", "apple", "apply", "application", "ape", "banana"}},
	}

	for _, tc := range testCases {
		t.Run(tc.prefix, func(t *testing.T) {
			assert.Equal(t, tc.expected, idx.FindSuggestions(tc.prefix))
		})
	}
}

func TestFindSuggestionsExactMatchFirst(t *testing.T) {
	idx := NewIndexFromWords([]string{"there", "their", "the", "then"})

	got := idx.FindSuggestions("the")
	require.NotEmpty(t, got)
	assert.Equal(t, "the", got[0])
	assert.ElementsMatch(t, []string{"the", "there", "their", "then"}, got)
}

func TestFindSuggestionsNoMatch(t *testing.T) {
	idx := NewIndexFromWords([]string{"apple", "banana"})

	got := idx.FindSuggestions("xyz")
	assert.NotNil(t, got)
	assert.Empty(t, got)

	assert.Empty(t, idx.FindSuggestions("applesauce"))
}

func TestFindSuggestionsLimit(t *testing.T) {
	idx := NewIndex()
	idx.AddWord("w")
	for c := 'a'; c <= 'o'; c++ {
		idx.AddWord("w" + string(c))
	}

	got := idx.FindSuggestions("w")
	require.Len(t, got, MaxSuggestions)
	assert.Equal(t, []string{"w", "wa", "wb", "wc", "wd", "we", "wf", "wg", "wh", "wi"}, got)
}

func TestFindSuggestionsIncludesEveryCompletion(t *testing.T) {
	words := DefaultWords()
	idx := NewIndexFromWords(words)

	for _, w := range idx.Words() {
		for i := 1; i <= len(w); i++ {
			prefix := w[:i]
			got := idx.FindSuggestions(prefix)

			qualifying := 0
			for _, other := range idx.Words() {
				if strings.HasPrefix(other, prefix) {
					qualifying++
				}
			}
			if qualifying <= MaxSuggestions {
				assert.Contains(t, got, w, "prefix %q", prefix)
				assert.Len(t, got, qualifying, "prefix %q", prefix)
			}
			for _, s := range got {
				assert.True(t, strings.HasPrefix(s, prefix))
			}
		}
	}
}

func TestTreeAndListAgree(t *testing.T) {
	idx := NewIndexFromWords(DefaultWords())

	assert.Equal(t, len(DefaultWords())-1, idx.Len())

	for _, w := range idx.Words() {
		assert.True(t, idx.WordExists(w), w)
	}

	var walked []string
	var visit func(n *node, word string)
	visit = func(n *node, word string) {
		if n.terminal {
			walked = append(walked, word)
		}
		for _, letter := range n.order {
			visit(n.children[letter], word+string(letter))
		}
	}
	visit(idx.root, "")
	assert.ElementsMatch(t, idx.Words(), walked)
}
