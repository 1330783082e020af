package scanner

import (
	"context"
	"errors"
	"sync"

	"github.com/gradeskim/gradeskim/pkg/analyzer"
	"github.com/gradeskim/gradeskim/pkg/extractor"

	"github.com/google/uuid"
)

type State string

const (
	StateIdle      State = "idle"
	StateScanning  State = "scanning"
	StateAnalyzing State = "analyzing"
	StateComplete  State = "complete"
)

// Input is one analysis request: either pasted text or an image, never both.
type Input struct {
	Text string

	File *extractor.File
}

type Result struct {
	ExtractedText string `json:"extractedText"`

	Score  int    `json:"aiPercentage"`
	Reason string `json:"reasoning"`

	Segments []analyzer.Segment `json:"segments"`
}

var ErrInvalidInput = errors.New("provide either text or an image")

// Scanner composes the extraction cascade and the analyzer into one
// pipeline. The pipeline itself is a pure function of its input; the state
// machine is layered on top and only moves on pipeline events. A newer scan
// implicitly abandons an in-flight one: the stale run still finishes, but its
// result and transitions are never published.
type Scanner struct {
	extractor extractor.Provider
	analyzer  *analyzer.Analyzer

	progress func(int)

	mu     sync.Mutex
	state  State
	run    uuid.UUID
	result *Result
}

func New(provider extractor.Provider, a *analyzer.Analyzer, options ...Option) (*Scanner, error) {
	if provider == nil || a == nil {
		return nil, errors.New("missing extractor or analyzer")
	}

	s := &Scanner{
		extractor: provider,
		analyzer:  a,

		state: StateIdle,
	}

	for _, option := range options {
		option(s)
	}

	return s, nil
}

func (s *Scanner) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.state
}

// Result returns the last published result, if any.
func (s *Scanner) Result() *Result {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.result
}

func (s *Scanner) Scan(ctx context.Context, input Input) (*Result, error) {
	if (input.Text == "") == (input.File == nil) {
		return nil, ErrInvalidInput
	}

	run := uuid.New()

	s.begin(run)

	text := input.Text

	if input.File != nil {
		document, err := s.extractor.Extract(ctx, extractor.Input{File: input.File}, nil)

		if err != nil {
			s.reset(run)
			return nil, err
		}

		text = document.Text
	}

	s.transition(run, StateAnalyzing)

	analysis, err := s.analyzer.Analyze(ctx, text)

	if err != nil {
		s.reset(run)
		return nil, err
	}

	result := &Result{
		ExtractedText: text,

		Score:  analysis.Score,
		Reason: analysis.Reason,

		Segments: analysis.Segments,
	}

	if s.publish(run, result) && s.progress != nil {
		s.progress(100)
	}

	return result, nil
}

func (s *Scanner) begin(run uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.run = run
	s.state = StateScanning

	if s.progress != nil {
		s.progress(10)
	}
}

func (s *Scanner) transition(run uuid.UUID, state State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != run {
		return
	}

	s.state = state
}

func (s *Scanner) reset(run uuid.UUID) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != run {
		return
	}

	s.state = StateIdle
}

func (s *Scanner) publish(run uuid.UUID, result *Result) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.run != run {
		return false
	}

	s.state = StateComplete
	s.result = result

	return true
}

// SuggestedGrade maps the AI percentage to the first-pass grade band shown to
// the educator.
func SuggestedGrade(score int) string {
	switch {
	case score < 20:
		return "A"
	case score < 40:
		return "B"
	case score < 60:
		return "C"
	case score < 80:
		return "D"
	default:
		return "F"
	}
}
