// Package fuzzy ranks known words by Levenshtein distance to a query.
package fuzzy

import (
	"sort"
	"strings"
)

const (
	DefaultMaxDistance = 3
	DefaultMaxResults  = 8
)

// Match is a candidate word and its edit distance to the query.
type Match struct {
	Word     string
	Distance int
}

// EditDistance returns the minimum number of single-character insertions,
// deletions or substitutions turning a into b. Comparison is per rune and
// case-sensitive; callers lowercase both sides first.
func EditDistance(a, b string) int {
	ra, rb := []rune(a), []rune(b)

	table := make([][]int, len(ra)+1)
	for i := range table {
		table[i] = make([]int, len(rb)+1)
		table[i][0] = i
	}
	for j := range table[0] {
		table[0][j] = j
	}

	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				table[i][j] = table[i-1][j-1]
				continue
			}
			table[i][j] = 1 + min(
				table[i-1][j],   // delete
				table[i][j-1],   // insert
				table[i-1][j-1], // substitute
			)
		}
	}
	return table[len(ra)][len(rb)]
}

// FindSimilar scores every word against the lowercased query and returns those
// within maxDistance, ordered by distance and then by word, truncated to
// maxResults. A maxResults of zero or less means no truncation.
// An empty result is returned when nothing is close enough.
func FindSimilar(query string, words []string, maxDistance, maxResults int) []Match {
	query = strings.ToLower(query)

	matches := []Match{}
	for _, word := range words {
		distance := EditDistance(query, word)
		if distance <= maxDistance {
			matches = append(matches, Match{Word: word, Distance: distance})
		}
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].Distance != matches[j].Distance {
			return matches[i].Distance < matches[j].Distance
		}
		return matches[i].Word < matches[j].Word
	})

	if maxResults > 0 && len(matches) > maxResults {
		matches = matches[:maxResults]
	}
	return matches
}

// Words extracts the words of matches, keeping their order.
func Words(matches []Match) []string {
	out := make([]string, len(matches))
	for i, m := range matches {
		out[i] = m.Word
	}
	return out
}
