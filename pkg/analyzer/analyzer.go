package analyzer

import (
	"context"
	"errors"
	"strings"

	"github.com/gradeskim/gradeskim/pkg/detector"
	"github.com/gradeskim/gradeskim/pkg/text"
)

// Analyzer runs the detector ensemble over extracted text and resolves the
// verdicts into one result. Resolution is accuser-wins, not averaged: the
// first detector confident enough in priority order takes the whole result.
type Analyzer struct {
	pattern     detector.Detector
	statistical detector.Detector
	ensemble    detector.Detector

	sentenceSegments bool
}

type Analysis struct {
	Score  int    `json:"score"` // 0..100, clamped
	Reason string `json:"reason"`

	Segments []Segment `json:"segments"`
}

type Segment struct {
	Text string `json:"text"`
	AI   bool   `json:"ai"`
}

const (
	// floor: nothing is 0% AI
	floorTrigger = 10
	floorValue   = 15

	// ceiling: nothing is certain either
	ceiling = 99

	// a verdict above this marks the document (and wins for the pattern
	// detector outright)
	decisionThreshold = 50
)

func New(pattern, statistical detector.Detector, options ...Option) (*Analyzer, error) {
	if pattern == nil || statistical == nil {
		return nil, errors.New("missing detector")
	}

	a := &Analyzer{
		pattern:     pattern,
		statistical: statistical,
	}

	for _, option := range options {
		option(a)
	}

	return a, nil
}

func (a *Analyzer) Analyze(ctx context.Context, input string) (*Analysis, error) {
	if strings.TrimSpace(input) == "" {
		return nil, errors.New("empty text")
	}

	patternVerdict := a.detect(ctx, a.pattern, input)
	statisticalVerdict := a.detect(ctx, a.statistical, input)
	ensembleVerdict := a.detect(ctx, a.ensemble, input)

	if statisticalVerdict == nil {
		// the statistical detector never abstains; keep the pipeline
		// alive anyway
		statisticalVerdict = &detector.Verdict{
			Score:  floorValue,
			Reason: "analysis incomplete",
		}
	}

	resolved := statisticalVerdict

	switch {
	case patternVerdict != nil && patternVerdict.Score > decisionThreshold:
		resolved = patternVerdict

	case ensembleVerdict != nil && ensembleVerdict.Score > statisticalVerdict.Score:
		resolved = ensembleVerdict
	}

	score := resolved.Score

	if score < floorTrigger {
		score = floorValue
	}

	if score > ceiling {
		score = ceiling
	}

	return &Analysis{
		Score:  score,
		Reason: resolved.Reason,

		Segments: a.segments(input, score),
	}, nil
}

// detect swallows detector errors: a failing signal abstains, it never breaks
// the run.
func (a *Analyzer) detect(ctx context.Context, d detector.Detector, input string) *detector.Verdict {
	if d == nil {
		return nil
	}

	verdict, err := d.Detect(ctx, input)

	if err != nil {
		return nil
	}

	return verdict
}

func (a *Analyzer) segments(input string, score int) []Segment {
	if !a.sentenceSegments {
		return []Segment{
			{
				Text: input,
				AI:   score > decisionThreshold,
			},
		}
	}

	var segments []Segment

	for _, sentence := range text.Sentences(input) {
		segments = append(segments, Segment{
			Text: sentence,
			AI:   sentenceLooksAI(sentence),
		})
	}

	return segments
}

// sentenceLooksAI is the legacy per-sentence display heuristic: long,
// long-worded sentences read as machine output. It deliberately avoids the
// remote ensemble so one scan issues a fixed number of external calls.
func sentenceLooksAI(sentence string) bool {
	words := text.Words(sentence)

	if len(words) < 12 {
		return false
	}

	return text.AverageWordLength([]string{sentence}) > 4.5
}
