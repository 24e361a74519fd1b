/*
Package server implements msgpack IPC for spell checking services.

The server reads msgpack-encoded requests from stdin and writes one
msgpack-encoded response per request to stdout. Requests are processed
synchronously, in order, with timing info included in responses.

# IPC

Every request carries an ID and an action. Word checks look like:

	{"id": "req_001", "a": "check", "w": "aple"}

The server answers with whether the word is known and, when it is not, the
closest dictionary words ranked by edit distance:

	{"id": "req_001", "k": false, "s": [{"w": "ape", "d": 1, "r": 1}, {"w": "apple", "d": 1, "r": 2}], "c": 2, "t": 85}

Prefix completion and explicit ranking requests:

	{"id": "req_002", "a": "complete", "w": "ap", "l": 5}
	{"id": "req_003", "a": "similar", "w": "wrod", "d": 2, "l": 4}

Learning a word adds it to the dictionary and to the user dictionary file:

	{"id": "req_004", "a": "learn", "w": "gopher"}

Failed requests get an ErrorResponse with a short message and an HTTP-like
code: 400 for bad input, 500 when the server could not complete the action.
*/
package server

// Supported request actions.
const (
	ActionCheck    = "check"
	ActionComplete = "complete"
	ActionSimilar  = "similar"
	ActionLearn    = "learn"
	ActionStats    = "stats"
)

// Request is the single request envelope for every action.
type Request struct {
	ID          string `msgpack:"id"`
	Action      string `msgpack:"a"`
	Word        string `msgpack:"w,omitempty"`
	Limit       int    `msgpack:"l,omitempty"`
	MaxDistance *int   `msgpack:"d,omitempty"`
}

// Correction is one ranked replacement for an unknown word.
type Correction struct {
	Word     string `msgpack:"w"`
	Distance int    `msgpack:"d"`
	Rank     uint16 `msgpack:"r"`
}

// CheckResponse answers check and similar requests.
type CheckResponse struct {
	ID          string       `msgpack:"id"`
	Known       bool         `msgpack:"k"`
	Corrections []Correction `msgpack:"s"`
	Count       int          `msgpack:"c"`
	TimeTaken   int64        `msgpack:"t"`
}

// CompletionSuggestion - minimal suggestion response
type CompletionSuggestion struct {
	Word string `msgpack:"w"`
	Rank uint16 `msgpack:"r"`
}

// CompletionResponse - completion response
type CompletionResponse struct {
	ID          string                 `msgpack:"id"`
	Suggestions []CompletionSuggestion `msgpack:"s"`
	Count       int                    `msgpack:"c"`
	TimeTaken   int64                  `msgpack:"t"`
}

// LearnResponse reports the outcome of a learn request.
type LearnResponse struct {
	ID     string `msgpack:"id"`
	Status string `msgpack:"status"`
	Added  bool   `msgpack:"added"`
}

// StatsResponse carries dictionary sizes and session counters.
type StatsResponse struct {
	ID          string `msgpack:"id"`
	Words       int    `msgpack:"words"`
	UserWords   int    `msgpack:"user_words"`
	Checks      int    `msgpack:"checks"`
	Corrections int    `msgpack:"corrections"`
}

// StatusResponse is sent once when the server is ready.
type StatusResponse struct {
	Status string `msgpack:"status"`
}

// ErrorResponse holds basic error information for failed requests
type ErrorResponse struct {
	ID    string `msgpack:"id"`
	Error string `msgpack:"e"`
	Code  int    `msgpack:"c"`
}
