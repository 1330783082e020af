package pattern

import (
	"context"
	"strings"

	"github.com/gradeskim/gradeskim/pkg/detector"
)

var _ detector.Detector = (*Detector)(nil)

// Phrases are connectors and stock formulations that large language models
// overuse in essay-style answers. Matching is case-insensitive substring.
var Phrases = []string{
	"in conclusion",
	"furthermore",
	"moreover",
	"additionally",
	"consequently",
	"in summary",
	"in essence",
	"it is important to note",
	"it is worth noting",
	"delve into",
	"a testament to",
	"plays a crucial role",
	"as an ai language model",
	"firstly",
	"secondly",
	"thirdly",
	"on the other hand",
	"in today's world",
	"rich tapestry",
	"ever-evolving",
}

const (
	scoreSingle   = 65
	scoreMultiple = 98
)

// Detector flags AI-telltale vocabulary. It is precision-biased: it abstains
// on zero matches and escalates hard once phrases appear.
type Detector struct {
	phrases []string
}

func New(options ...Option) (*Detector, error) {
	d := &Detector{
		phrases: Phrases,
	}

	for _, option := range options {
		option(d)
	}

	return d, nil
}

func (d *Detector) Detect(ctx context.Context, text string) (*detector.Verdict, error) {
	lower := strings.ToLower(text)

	var matches []string

	for _, phrase := range d.phrases {
		if strings.Contains(lower, phrase) {
			matches = append(matches, phrase)
		}
	}

	if len(matches) == 0 {
		return nil, nil
	}

	score := scoreSingle

	if len(matches) > 1 {
		score = scoreMultiple
	}

	listed := matches

	if len(listed) > 3 {
		listed = listed[:3]
	}

	return &detector.Verdict{
		Score:  score,
		Reason: "contains AI-typical phrasing: " + strings.Join(listed, ", "),
	}, nil
}
