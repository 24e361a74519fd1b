/*
Package spell ties the dictionary index, the fuzzy matcher and the user
dictionary together behind one Checker.

A Checker is what front ends talk to. It validates input the way a text
editor would (letters, with apostrophes only inside a word), serializes
access to the index and keeps simple counters about the session.

	checker := spell.NewChecker(spell.DefaultOptions())
	checker.LoadWords(dictionary.DefaultWords())
	res, err := checker.Check("aple")
	// res.Known == false, res.Corrections[0].Word == "ape"
*/
package spell

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/fuzzy"
	"github.com/bastiangx/wordcheck/pkg/userdict"
	"github.com/charmbracelet/log"
)

// ErrInvalidWord is returned for input that is not a run of ASCII letters,
// optionally joined by inner apostrophes.
var ErrInvalidWord = errors.New("word must contain only letters")

// Options tune matching and result sizes.
type Options struct {
	MaxDistance     int
	MaxResults      int
	TextSuggestions int
	MinWordLen      int
}

// DefaultOptions returns the standard thresholds.
func DefaultOptions() Options {
	return Options{
		MaxDistance:     fuzzy.DefaultMaxDistance,
		MaxResults:      fuzzy.DefaultMaxResults,
		TextSuggestions: 6,
		MinWordLen:      2,
	}
}

// Result is the outcome of checking one word.
type Result struct {
	Word        string
	Known       bool
	Corrections []fuzzy.Match
}

// Stats holds dictionary sizes and session counters.
type Stats struct {
	Words       int
	UserWords   int
	Checks      int
	Corrections int
}

// Checker is a spell checker safe for concurrent use.
type Checker struct {
	opts        Options
	index       *dictionary.Index
	user        *userdict.Store
	checks      int
	corrections int
	mu          sync.RWMutex
}

// NewChecker returns a checker with an empty dictionary and no user store.
func NewChecker(opts Options) *Checker {
	return &Checker{
		opts:  opts,
		index: dictionary.NewIndex(),
	}
}

// LoadWords adds words to the dictionary and returns how many were new.
func (c *Checker) LoadWords(words []string) int {
	c.mu.Lock()
	defer c.mu.Unlock()
	added := dictionary.LoadInto(c.index, words)
	log.Debugf("Loaded %d new words (%d total)", added, c.index.Len())
	return added
}

// AttachUserDict makes c persist learned words to store and adds the words
// already in store to the dictionary.
func (c *Checker) AttachUserDict(store *userdict.Store) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.user = store
	added := dictionary.LoadInto(c.index, store.Words())
	log.Debugf("Attached user dictionary %q with %d words (%d new)", store.Path(), store.Len(), added)
}

// Known reports whether word is in the dictionary, case-insensitively.
func (c *Checker) Known(word string) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index.WordExists(word)
}

// Complete returns up to dictionary.MaxSuggestions completions of prefix.
func (c *Checker) Complete(prefix string) []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.index.FindSuggestions(prefix)
}

// Similar ranks dictionary words by edit distance to word.
func (c *Checker) Similar(word string, maxDistance, maxResults int) []fuzzy.Match {
	c.mu.RLock()
	words := c.index.Words()
	c.mu.RUnlock()
	return fuzzy.FindSimilar(word, words, maxDistance, maxResults)
}

// Check validates word and looks it up. Unknown words come back with
// corrections using the configured thresholds.
func (c *Checker) Check(word string) (Result, error) {
	word = strings.TrimSpace(word)
	if !utils.IsWord(word) {
		return Result{Word: word}, fmt.Errorf("%q: %w", word, ErrInvalidWord)
	}

	c.mu.Lock()
	c.checks++
	known := c.index.WordExists(word)
	if !known {
		c.corrections++
	}
	c.mu.Unlock()

	res := Result{Word: word, Known: known}
	if !known {
		res.Corrections = c.Similar(word, c.opts.MaxDistance, c.opts.MaxResults)
		log.Debug("Unknown word", "word", word, "corrections", len(res.Corrections))
	}
	return res, nil
}

// Learn adds word to the dictionary and, when attached, the user dictionary.
// It reports whether the word was new to the dictionary.
// Key mashes such as "aaaa" are refused.
func (c *Checker) Learn(word string) (bool, error) {
	word = strings.TrimSpace(word)
	if !utils.IsWord(word) || utils.IsRepetitive(strings.ToLower(word)) {
		return false, fmt.Errorf("%q: %w", word, ErrInvalidWord)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.user != nil {
		if _, err := c.user.Add(word); err != nil {
			return false, fmt.Errorf("failed to save learned word: %w", err)
		}
	}
	added := c.index.AddWord(word)
	if added {
		log.Debugf("Learned %q", strings.ToLower(word))
	}
	return added, nil
}

// Stats returns the current dictionary sizes and counters.
func (c *Checker) Stats() Stats {
	c.mu.RLock()
	defer c.mu.RUnlock()

	stats := Stats{
		Words:       c.index.Len(),
		Checks:      c.checks,
		Corrections: c.corrections,
	}
	if c.user != nil {
		stats.UserWords = c.user.Len()
	}
	return stats
}

// Options returns the thresholds c was built with.
func (c *Checker) Options() Options {
	return c.opts
}
