package spell

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/bastiangx/wordcheck/pkg/dictionary"
	"github.com/bastiangx/wordcheck/pkg/fuzzy"
	"github.com/bastiangx/wordcheck/pkg/userdict"
	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	log.SetLevel(log.ErrorLevel)
}

func newTestChecker(words ...string) *Checker {
	c := NewChecker(DefaultOptions())
	c.LoadWords(words)
	return c
}

func TestCheckKnownAndUnknown(t *testing.T) {
	c := newTestChecker("apple", "apply", "ape", "banana")

	res, err := c.Check("Apple")
	require.NoError(t, err)
	assert.True(t, res.Known)
	assert.Empty(t, res.Corrections)

	res, err = c.Check("  aple ")
	require.NoError(t, err)
	assert.False(t, res.Known)
	assert.Equal(t, "aple", res.Word)
	assert.Equal(t, []fuzzy.Match{
		{Word: "ape", Distance: 1},
		{Word: "apple", Distance: 1},
		{Word: "apply", Distance: 2},
	}, res.Corrections)

	res, err = c.Check("zzzzzzzz")
	require.NoError(t, err)
	assert.False(t, res.Known)
	assert.Empty(t, res.Corrections)

	stats := c.Stats()
	assert.Equal(t, 4, stats.Words)
	assert.Equal(t, 3, stats.Checks)
	assert.Equal(t, 2, stats.Corrections)
}

func TestCheckRejectsNonWords(t *testing.T) {
	c := newTestChecker("apple")

	for _, input := range []string{"", "   ", "ap3", "two words", "'apple", "apple'"} {
		t.Run(fmt.Sprintf("%q", input), func(t *testing.T) {
			_, err := c.Check(input)
			assert.ErrorIs(t, err, ErrInvalidWord)
		})
	}
	assert.Equal(t, 0, c.Stats().Checks)
}

func TestCompleteAndSimilar(t *testing.T) {
	c := newTestChecker("apple", "apply", "ape", "banana")

	assert.Equal(t, []string{"apple", "apply", "ape"}, c.Complete("ap"))
	assert.Empty(t, c.Complete("x"))

	got := c.Similar("APLE", 1, 0)
	assert.Equal(t, []string{"ape", "apple"}, fuzzy.Words(got))
}

func TestLearn(t *testing.T) {
	c := newTestChecker("apple")

	added, err := c.Learn("Gopher")
	require.NoError(t, err)
	assert.True(t, added)
	assert.True(t, c.Known("gopher"))

	added, err = c.Learn("gopher")
	require.NoError(t, err)
	assert.False(t, added)

	_, err = c.Learn("go-pher")
	assert.ErrorIs(t, err, ErrInvalidWord)

	_, err = c.Learn("Zzzz")
	assert.ErrorIs(t, err, ErrInvalidWord)
	assert.Equal(t, 2, c.Stats().Words)
}

func TestLearnPersistsToUserDict(t *testing.T) {
	path := filepath.Join(t.TempDir(), "user_words.txt")

	store, err := userdict.Load(path)
	require.NoError(t, err)

	c := newTestChecker(dictionary.DefaultWords()...)
	c.AttachUserDict(store)

	_, err = c.Learn("Kubernetes")
	require.NoError(t, err)
	assert.Equal(t, 1, c.Stats().UserWords)

	reloaded, err := userdict.Load(path)
	require.NoError(t, err)
	assert.True(t, reloaded.Has("kubernetes"))

	fresh := newTestChecker("apple")
	assert.False(t, fresh.Known("kubernetes"))
	fresh.AttachUserDict(reloaded)
	assert.True(t, fresh.Known("kubernetes"))
	assert.Equal(t, 2, fresh.Stats().Words)
}

func TestLearnWriteFailureLeavesDictionaryUnchanged(t *testing.T) {
	blocker := filepath.Join(t.TempDir(), "file")
	require.NoError(t, os.WriteFile(blocker, []byte("x"), 0644))

	store, err := userdict.Load(filepath.Join(blocker, "user_words.txt"))
	require.NoError(t, err)

	c := newTestChecker("apple")
	c.AttachUserDict(store)

	for i := 0; i < 2; i++ {
		added, err := c.Learn("gopher")
		require.Error(t, err)
		assert.NotErrorIs(t, err, ErrInvalidWord)
		assert.False(t, added)
		assert.False(t, c.Known("gopher"))
		assert.False(t, store.Has("gopher"))
	}
	assert.Equal(t, 1, c.Stats().Words)
	assert.Equal(t, 0, c.Stats().UserWords)
}

func TestLearnFlaggedContraction(t *testing.T) {
	c := newTestChecker("this", "is", "fine")

	got := c.CheckText("this isn't fine")
	require.Len(t, got, 1)
	assert.Equal(t, "isn't", got[0].Text)

	added, err := c.Learn(got[0].Text)
	require.NoError(t, err)
	assert.True(t, added)

	res, err := c.Check("Isn't")
	require.NoError(t, err)
	assert.True(t, res.Known)
	assert.Empty(t, c.CheckText("this isn't fine"))
}

func TestCheckerConcurrentAccess(t *testing.T) {
	c := newTestChecker(dictionary.DefaultWords()...)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func(worker int) {
			defer wg.Done()
			for j := 0; j < 50; j++ {
				word := fmt.Sprintf("word%c%c", 'a'+rune(worker), 'a'+rune(j%26))
				_, err := c.Learn(word)
				assert.NoError(t, err)
				_, err = c.Check("wrld")
				assert.NoError(t, err)
				c.Complete("wor")
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 400, c.Stats().Checks)
	assert.True(t, c.Known("wordaa"))
}
