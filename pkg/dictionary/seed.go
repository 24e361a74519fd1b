package dictionary

// defaultWords is the starter vocabulary used when no word file is configured.
// "program" appears twice on purpose; the index keeps one copy.
var defaultWords = []string{
	// programming
	"algorithm", "application", "binary", "code", "computer", "data",
	"database", "debug", "function", "hardware", "internet", "java",
	"language", "memory", "network", "program", "python", "software",
	"system", "technology", "tree", "trie", "variable", "web",

	// common
	"about", "after", "again", "all", "also", "always", "and",
	"answer", "any", "apple", "are", "around", "ask", "back",
	"because", "before", "being", "between", "both", "but", "call",
	"came", "can", "change", "come", "could", "create", "day",
	"did", "different", "do", "does", "down", "each", "even",
	"every", "find", "first", "follow", "for", "from", "get",
	"give", "good", "great", "had", "has", "have", "help",
	"here", "high", "home", "how", "important", "into", "is",
	"it", "just", "know", "large", "last", "like", "little",
	"long", "look", "made", "make", "many", "may", "more",
	"most", "move", "much", "name", "need", "new", "next",
	"not", "now", "number", "of", "old", "on", "one",
	"only", "or", "other", "our", "out", "over", "part",
	"people", "place", "program", "put", "said", "same", "say",
	"school", "see", "she", "should", "show", "small", "some",
	"take", "tell", "than", "that", "the", "their", "them",
	"then", "there", "these", "they", "thing", "think", "this",
	"time", "to", "too", "two", "under", "up", "use",
	"very", "want", "was", "water", "way", "we", "well",
	"were", "what", "when", "where", "which", "who", "will",
	"with", "word", "work", "world", "would", "write", "year",
	"you", "your",
}

// DefaultWords returns a copy of the built-in starter vocabulary.
func DefaultWords() []string {
	out := make([]string, len(defaultWords))
	copy(out, defaultWords)
	return out
}
