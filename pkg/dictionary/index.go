/*
Package dictionary holds the known-word index used by the spell checker.

The Index keeps two views of the same word set: a letter-by-letter prefix tree
used for membership tests and prefix completion, and a flat list in insertion
order used by the fuzzy matcher as its candidate set. Both are updated together
by AddWord and never diverge.

Words are normalized to lowercase on every call. Nothing else is validated
here; callers decide what "looks like a word" before adding or querying.

An Index is not safe for concurrent use. Wrap it (see pkg/spell) when more
than one goroutine needs access.
*/
package dictionary

import "strings"

// MaxSuggestions caps the result of FindSuggestions.
const MaxSuggestions = 10

// node is one position in the prefix tree.
// order records child letters in insertion order and drives traversal.
type node struct {
	children map[rune]*node
	order    []rune
	terminal bool
}

func newNode() *node {
	return &node{children: make(map[rune]*node)}
}

// Index is a trie over lowercase words plus the flat list of those words.
type Index struct {
	root  *node
	words []string
}

// NewIndex returns an empty index.
func NewIndex() *Index {
	return &Index{root: newNode()}
}

// NewIndexFromWords returns an index populated with words, in order.
func NewIndexFromWords(words []string) *Index {
	idx := NewIndex()
	for _, w := range words {
		idx.AddWord(w)
	}
	return idx
}

// AddWord lowercases word and stores it. It reports whether the word was new.
// Empty words are ignored and re-adding a known word leaves the flat list as is.
func (idx *Index) AddWord(word string) bool {
	word = strings.ToLower(word)
	if word == "" {
		return false
	}

	n := idx.root
	for _, letter := range word {
		child, ok := n.children[letter]
		if !ok {
			child = newNode()
			n.children[letter] = child
			n.order = append(n.order, letter)
		}
		n = child
	}

	if n.terminal {
		return false
	}
	n.terminal = true
	idx.words = append(idx.words, word)
	return true
}

// WordExists reports whether word, lowercased, was added.
func (idx *Index) WordExists(word string) bool {
	n := idx.walk(strings.ToLower(word))
	return n != nil && n.terminal
}

// FindSuggestions returns up to MaxSuggestions stored words starting with
// prefix. Words are listed in pre-order: a word comes before its extensions,
// and siblings follow the order their letters were first inserted. The prefix
// itself, when stored, is always first.
func (idx *Index) FindSuggestions(prefix string) []string {
	prefix = strings.ToLower(prefix)
	start := idx.walk(prefix)
	if start == nil {
		return []string{}
	}

	type frame struct {
		n    *node
		word string
	}

	suggestions := make([]string, 0, MaxSuggestions)
	stack := []frame{{start, prefix}}
	for len(stack) > 0 && len(suggestions) < MaxSuggestions {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.n.terminal {
			suggestions = append(suggestions, top.word)
		}

		// push in reverse so the first-inserted child is popped first
		for i := len(top.n.order) - 1; i >= 0; i-- {
			letter := top.n.order[i]
			stack = append(stack, frame{top.n.children[letter], top.word + string(letter)})
		}
	}
	return suggestions
}

// Words returns a copy of the flat word list in insertion order.
func (idx *Index) Words() []string {
	out := make([]string, len(idx.words))
	copy(out, idx.words)
	return out
}

// Len returns the number of stored words.
func (idx *Index) Len() int {
	return len(idx.words)
}

// walk follows word from the root and returns nil if a letter is missing.
func (idx *Index) walk(word string) *node {
	n := idx.root
	for _, letter := range word {
		child, ok := n.children[letter]
		if !ok {
			return nil
		}
		n = child
	}
	return n
}
