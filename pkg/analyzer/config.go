package analyzer

import (
	"github.com/gradeskim/gradeskim/pkg/detector"
)

type Option func(*Analyzer)

func WithEnsemble(d detector.Detector) Option {
	return func(a *Analyzer) {
		a.ensemble = d
	}
}

// WithSentenceSegments switches segment output from one whole-document
// segment to one segment per sentence, each tagged by a local heuristic.
func WithSentenceSegments() Option {
	return func(a *Analyzer) {
		a.sentenceSegments = true
	}
}
