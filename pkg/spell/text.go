package spell

import (
	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/fuzzy"
)

// Token is a word found in text, with byte offsets [Start, End).
type Token struct {
	Text  string
	Start int
	End   int
}

// Misspelling is an unknown token and its ranked replacements.
type Misspelling struct {
	Token
	Suggestions []string
}

// Tokenize splits text into runs of ASCII letters. An apostrophe between two
// letters stays inside the token ("don't"); every other byte separates words.
func Tokenize(text string) []Token {
	var tokens []Token
	start := -1
	for i := 0; i < len(text); i++ {
		b := text[i]
		switch {
		case utils.IsASCIILetter(b):
			if start < 0 {
				start = i
			}
		case b == '\'' && start >= 0 && i+1 < len(text) && utils.IsASCIILetter(text[i+1]):
			// inner apostrophe
		default:
			if start >= 0 {
				tokens = append(tokens, Token{Text: text[start:i], Start: start, End: i})
				start = -1
			}
		}
	}
	if start >= 0 {
		tokens = append(tokens, Token{Text: text[start:], Start: start, End: len(text)})
	}
	return tokens
}

// CheckText reports every unknown word in text, in order of appearance.
// Words shorter than Options.MinWordLen are skipped.
func (c *Checker) CheckText(text string) []Misspelling {
	c.mu.RLock()
	var unknown []Token
	for _, tok := range Tokenize(text) {
		if len(tok.Text) < c.opts.MinWordLen {
			continue
		}
		if !c.index.WordExists(tok.Text) {
			unknown = append(unknown, tok)
		}
	}
	words := c.index.Words()
	c.mu.RUnlock()

	misspellings := make([]Misspelling, 0, len(unknown))
	for _, tok := range unknown {
		var suggestions []string
		if c.opts.TextSuggestions > 0 {
			matches := fuzzy.FindSimilar(tok.Text, words, c.opts.MaxDistance, c.opts.TextSuggestions)
			suggestions = fuzzy.Words(matches)
		}
		misspellings = append(misspellings, Misspelling{Token: tok, Suggestions: suggestions})
	}
	return misspellings
}

// Replace returns text with the byte range of tok replaced by word.
func Replace(text string, tok Token, word string) string {
	return text[:tok.Start] + word + text[tok.End:]
}
