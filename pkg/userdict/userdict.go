/*
Package userdict keeps the words a user taught the checker.

Learned words live in a patricia trie in memory and in a plain text file on
disk, one word per line. New words are appended to the file as they are
learned, so an interrupted session never loses earlier words.
*/
package userdict

import (
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/charmbracelet/log"
	"github.com/tchap/go-patricia/v2/patricia"
)

// Store is a set of learned words, optionally backed by a file.
type Store struct {
	path  string
	trie  *patricia.Trie
	count int
	mu    sync.RWMutex
}

// New returns an empty store. An empty path keeps words in memory only.
func New(path string) *Store {
	return &Store{
		path: path,
		trie: patricia.NewTrie(),
	}
}

// Load reads the word file at path into a new store.
// A missing file yields an empty store; the file is created on the first Add.
func Load(path string) (*Store, error) {
	s := New(path)
	if path == "" {
		return s, nil
	}

	file, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		log.Debugf("No user dictionary at %s yet", path)
		return s, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to open user dictionary %s: %w", path, err)
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		s.insert(scanner.Text())
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read user dictionary %s: %w", path, err)
	}

	log.Debugf("Loaded %d user words from %s", s.count, path)
	return s, nil
}

// Add learns word. It reports whether the word was new and persists it when
// the store has a path. Blank words are ignored.
// A word that cannot be written is not kept, so a later Add retries the write.
func (s *Store) Add(word string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	w := normalize(word)
	if w == "" || s.trie.Get(patricia.Prefix(w)) != nil {
		return false, nil
	}
	if s.path != "" {
		if err := appendLine(s.path, w); err != nil {
			return false, fmt.Errorf("failed to persist %q: %w", w, err)
		}
	}
	s.insert(w)
	return true, nil
}

// Has reports whether word was learned, case-insensitively.
func (s *Store) Has(word string) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.trie.Get(patricia.Prefix(normalize(word))) != nil
}

// Words returns all learned words in lexical order.
func (s *Store) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	words := make([]string, 0, s.count)
	err := s.trie.Visit(func(p patricia.Prefix, item patricia.Item) error {
		words = append(words, string(p))
		return nil
	})
	if err != nil {
		log.Errorf("Error visiting user dictionary: %v", err)
	}
	sort.Strings(words)
	return words
}

// Len returns the number of learned words.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.count
}

// Path returns the backing file, or "" for an in-memory store.
func (s *Store) Path() string {
	return s.path
}

// insert adds word to the trie without persisting it.
func (s *Store) insert(word string) (string, bool) {
	w := normalize(word)
	if w == "" {
		return "", false
	}
	if !s.trie.Insert(patricia.Prefix(w), struct{}{}) {
		return w, false
	}
	s.count++
	return w, true
}

func normalize(word string) string {
	return strings.ToLower(strings.TrimSpace(word))
}

func appendLine(path, word string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	file, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
	if err != nil {
		return err
	}
	if _, err := file.WriteString(word + "\n"); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
