package utils

// IsASCIILetter reports whether b is in a-z or A-Z.
func IsASCIILetter(b byte) bool {
	return ('a' <= b && b <= 'z') || ('A' <= b && b <= 'Z')
}

// IsWord checks if s is a non-empty run of ASCII letters. An apostrophe
// between two letters is allowed, so "don't" passes while "'tis" and
// "dogs'" do not. Anything else (digits, spaces, non-ASCII) is rejected.
func IsWord(s string) bool {
	if len(s) == 0 {
		return false
	}
	for i := 0; i < len(s); i++ {
		if IsASCIILetter(s[i]) {
			continue
		}
		if s[i] == '\'' && i > 0 && i+1 < len(s) && IsASCIILetter(s[i-1]) && IsASCIILetter(s[i+1]) {
			continue
		}
		return false
	}
	return true
}

// IsRepetitive checks if a string consists of one character repeated 3+ times
// e.g. "aaa", "zzzz"
func IsRepetitive(s string) bool {
	if len(s) <= 2 {
		return false
	}
	firstChar := s[0]
	for i := 1; i < len(s); i++ {
		if s[i] != firstChar {
			return false
		}
	}
	return true
}
