package dictionary

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
)

// LoadWordList reads one word per line from r.
// Blank lines and lines starting with '#' are skipped; surrounding whitespace is trimmed.
func LoadWordList(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		words = append(words, line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read word list: %w", err)
	}
	return words, nil
}

// LoadWordFile reads a plain text word list from filename.
func LoadWordFile(filename string) ([]string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open word file %s: %w", filename, err)
	}
	defer file.Close()

	words, err := LoadWordList(file)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filename, err)
	}
	log.Debugf("Loaded %d words from %s", len(words), filename)
	return words, nil
}

// LoadInto adds words to idx and returns how many were new.
func LoadInto(idx *Index, words []string) int {
	added := 0
	for _, w := range words {
		if idx.AddWord(w) {
			added++
		}
	}
	return added
}
