// Package cli handles cmd line input for checking words and debugging the checker in real-time
package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/charmbracelet/log"
)

const (
	completePrefix = "?"
	learnPrefix    = "+"
	statsCommand   = "!stats"
)

// InputHandler reads lines and runs them against a spell.Checker.
//
// A single word is checked and, if unknown, corrections are listed.
// "?pre" lists completions, "+word" learns a word, "!stats" prints counters
// and any line with spaces is checked as running text.
type InputHandler struct {
	checker      *spell.Checker
	logger       *log.Logger
	showDistance bool
	requestCount int
}

// NewInputHandler handles initialization of the InputHandler with basic parameters
func NewInputHandler(checker *spell.Checker, logger *log.Logger, showDistance bool) *InputHandler {
	return &InputHandler{
		checker:      checker,
		logger:       logger,
		showDistance: showDistance,
	}
}

// Start begins the interface loop on r.
// It ends without error when r is exhausted.
func (h *InputHandler) Start(r io.Reader) error {
	h.logger.Print("WordCheck CLI")
	h.logger.Print("type a word and press Enter (?prefix completes, +word learns, !stats, Ctrl+C to exit):")

	scanner := bufio.NewScanner(r)
	for {
		h.logger.Print("> ")
		if !scanner.Scan() {
			return scanner.Err()
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		h.handleInput(line)
	}
}

// handleInput dispatches one trimmed line.
func (h *InputHandler) handleInput(line string) {
	h.requestCount++
	start := time.Now()

	switch {
	case line == statsCommand:
		h.printStats()
	case strings.HasPrefix(line, completePrefix):
		h.complete(strings.TrimPrefix(line, completePrefix))
	case strings.HasPrefix(line, learnPrefix):
		h.learn(strings.TrimPrefix(line, learnPrefix))
	case strings.ContainsAny(line, " \t"):
		h.checkText(line)
	default:
		h.check(line)
	}

	log.Debugf("Took [ %v ] for input '%s'", time.Since(start), line)
}

func (h *InputHandler) check(word string) {
	res, err := h.checker.Check(word)
	if err != nil {
		h.logger.Errorf("Invalid input: %v", err)
		return
	}
	if res.Known {
		h.logger.Printf("✓ '%s' is spelled right", word)
		return
	}

	h.logger.Warnf("✗ '%s' not found", word)
	if len(res.Corrections) == 0 {
		h.logger.Print("No similar words found")
		return
	}
	h.logger.Print("Did you mean:")
	for i, m := range res.Corrections {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", m.Word)
		if h.showDistance {
			h.logger.Printf("%2d. %-30s (changes: %d)", i+1, clWord, m.Distance)
		} else {
			h.logger.Printf("%2d. %s", i+1, clWord)
		}
	}
}

func (h *InputHandler) complete(prefix string) {
	prefix = strings.TrimSpace(prefix)
	if prefix == "" {
		h.logger.Error("Missing prefix after '?'")
		return
	}

	words := h.checker.Complete(prefix)
	if len(words) == 0 {
		h.logger.Warnf("No suggestions found for prefix: '%s'", prefix)
		return
	}
	h.logger.Printf("Found %d suggestions for prefix '%s':", len(words), prefix)
	for i, w := range words {
		h.logger.Printf("%2d. %s", i+1, w)
	}
}

func (h *InputHandler) learn(word string) {
	added, err := h.checker.Learn(word)
	if err != nil {
		h.logger.Errorf("Could not learn word: %v", err)
		return
	}
	if !added {
		h.logger.Printf("'%s' is already in the dictionary", strings.TrimSpace(word))
		return
	}
	h.logger.Printf("Added '%s' to the dictionary", strings.TrimSpace(word))
}

func (h *InputHandler) checkText(text string) {
	misspellings := h.checker.CheckText(text)
	if len(misspellings) == 0 {
		h.logger.Print("No spelling errors found")
		return
	}
	h.logger.Printf("Found %d possible errors:", len(misspellings))
	for _, m := range misspellings {
		h.logger.Printf("  %-20s at %d: %s", m.Text, m.Start, strings.Join(m.Suggestions, ", "))
	}
}

func (h *InputHandler) printStats() {
	stats := h.checker.Stats()
	h.logger.Print("stats",
		"words", utils.FormatWithCommas(stats.Words),
		"user_words", stats.UserWords,
		"checks", stats.Checks,
		"corrections", stats.Corrections,
		"requests", h.requestCount)
}
