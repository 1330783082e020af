package detector

import (
	"context"
)

// Detector inspects text and either returns a verdict or abstains by
// returning a nil verdict. Returning an error is reserved for misuse; signal
// problems (network, parsing) are expected to degrade into abstention.
type Detector interface {
	Detect(ctx context.Context, text string) (*Verdict, error)
}

// Verdict is one detector's likelihood estimate that the text is
// AI-generated, with a human-readable justification.
type Verdict struct {
	Score  int    `json:"score"` // 0..100
	Reason string `json:"reason"`
}
