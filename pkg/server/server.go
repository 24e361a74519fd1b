package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/wordcheck/internal/utils"
	"github.com/bastiangx/wordcheck/pkg/config"
	"github.com/bastiangx/wordcheck/pkg/fuzzy"
	"github.com/bastiangx/wordcheck/pkg/spell"
	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// MaxWordLen is the longest word or prefix the server accepts.
const MaxWordLen = 60

// Server handles the IPC for spell checking
type Server struct {
	checker      *spell.Checker
	config       *config.Config
	reader       io.Reader
	writer       *bufio.Writer
	requestCount int
}

// NewServer creates a new server using stdin/stdout for IPC
func NewServer(checker *spell.Checker, cfg *config.Config) *Server {
	return NewServerWithIO(checker, cfg, os.Stdin, os.Stdout)
}

// NewServerWithIO creates a server reading requests from r and writing responses to w.
func NewServerWithIO(checker *spell.Checker, cfg *config.Config, r io.Reader, w io.Writer) *Server {
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	return &Server{
		checker: checker,
		config:  cfg,
		reader:  bufio.NewReader(r),
		writer:  bufio.NewWriter(w),
	}
}

// Start announces readiness and then serves requests until the input ends.
func (s *Server) Start() error {
	log.Debug("Starting Server.")

	decoder := msgpack.NewDecoder(s.reader)
	encoder := msgpack.NewEncoder(s.writer)

	if err := s.send(encoder, StatusResponse{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := decoder.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				log.Debugf("Input closed after %d requests", s.requestCount)
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			return fmt.Errorf("failed to decode request: %w", err)
		}

		s.requestCount++
		if err := s.send(encoder, s.handleRequest(req)); err != nil {
			return err
		}
	}
}

// send encodes one response and flushes it so the client sees it immediately.
func (s *Server) send(encoder *msgpack.Encoder, response any) error {
	if err := encoder.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}

// handleRequest dispatches on the request action and returns the response to send.
func (s *Server) handleRequest(req Request) any {
	switch req.Action {
	case ActionCheck:
		return s.handleCheck(req)
	case ActionComplete:
		return s.handleComplete(req)
	case ActionSimilar:
		return s.handleSimilar(req)
	case ActionLearn:
		return s.handleLearn(req)
	case ActionStats:
		stats := s.checker.Stats()
		return StatsResponse{
			ID:          req.ID,
			Words:       stats.Words,
			UserWords:   stats.UserWords,
			Checks:      stats.Checks,
			Corrections: stats.Corrections,
		}
	default:
		log.Debugf("Unknown action %q in request %s", req.Action, req.ID)
		return errorResponse(req.ID, fmt.Sprintf("unknown action: %q", req.Action), 400)
	}
}

func (s *Server) handleCheck(req Request) any {
	if msg := validateWord(req.Word); msg != "" {
		return errorResponse(req.ID, msg, 400)
	}

	start := time.Now()
	res, err := s.checker.Check(req.Word)
	if err != nil {
		return errorResponse(req.ID, err.Error(), 400)
	}
	elapsed := time.Since(start)

	corrections := toCorrections(res.Corrections)
	return CheckResponse{
		ID:          req.ID,
		Known:       res.Known,
		Corrections: corrections,
		Count:       len(corrections),
		TimeTaken:   elapsed.Microseconds(),
	}
}

func (s *Server) handleSimilar(req Request) any {
	if msg := validateWord(req.Word); msg != "" {
		return errorResponse(req.ID, msg, 400)
	}

	maxDistance := s.config.Spell.MaxDistance
	if req.MaxDistance != nil {
		if *req.MaxDistance < 0 {
			return errorResponse(req.ID, "max distance must not be negative", 400)
		}
		maxDistance = *req.MaxDistance
	}
	maxResults := s.config.Spell.MaxResults
	if req.Limit > 0 {
		maxResults = req.Limit
	}

	start := time.Now()
	known := s.checker.Known(req.Word)
	matches := s.checker.Similar(req.Word, maxDistance, maxResults)
	elapsed := time.Since(start)

	corrections := toCorrections(matches)
	return CheckResponse{
		ID:          req.ID,
		Known:       known,
		Corrections: corrections,
		Count:       len(corrections),
		TimeTaken:   elapsed.Microseconds(),
	}
}

func (s *Server) handleComplete(req Request) any {
	if msg := validateWord(req.Word); msg != "" {
		return errorResponse(req.ID, msg, 400)
	}

	limit := s.config.Spell.SuggestLimit
	if req.Limit > 0 {
		limit = req.Limit
	}

	start := time.Now()
	words := s.checker.Complete(req.Word)
	elapsed := time.Since(start)

	if len(words) > limit {
		words = words[:limit]
	}
	ranks := utils.CreateRankList(len(words))
	suggestions := make([]CompletionSuggestion, len(words))
	for i, w := range words {
		suggestions[i] = CompletionSuggestion{Word: w, Rank: ranks[i]}
	}

	return CompletionResponse{
		ID:          req.ID,
		Suggestions: suggestions,
		Count:       len(suggestions),
		TimeTaken:   elapsed.Microseconds(),
	}
}

func (s *Server) handleLearn(req Request) any {
	added, err := s.checker.Learn(req.Word)
	if errors.Is(err, spell.ErrInvalidWord) {
		return errorResponse(req.ID, err.Error(), 400)
	}
	if err != nil {
		log.Errorf("Learning %q: %v", req.Word, err)
		return errorResponse(req.ID, err.Error(), 500)
	}

	status := "added"
	if !added {
		status = "exists"
	}
	return LearnResponse{ID: req.ID, Status: status, Added: added}
}

// validateWord returns an error message for unusable words, or "".
func validateWord(word string) string {
	if word == "" {
		return "missing 'w' parameter"
	}
	if len(word) > MaxWordLen {
		return fmt.Sprintf("word exceeds maximum length of %d characters", MaxWordLen)
	}
	return ""
}

func toCorrections(matches []fuzzy.Match) []Correction {
	ranks := utils.CreateRankList(len(matches))
	corrections := make([]Correction, len(matches))
	for i, m := range matches {
		corrections[i] = Correction{Word: m.Word, Distance: m.Distance, Rank: ranks[i]}
	}
	return corrections
}

func errorResponse(id, message string, code int) ErrorResponse {
	return ErrorResponse{ID: id, Error: message, Code: code}
}
