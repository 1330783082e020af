package ensemble

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"math"
	"net/http"
	"strings"
	"sync"

	"github.com/gradeskim/gradeskim/pkg/detector"
)

var _ detector.Detector = (*Detector)(nil)

// MaxInputLength is the upstream request-size budget; longer text is
// truncated before submission.
const MaxInputLength = 510

// Detector delegates to two hosted text classifiers, one general
// AI-vs-human model and one ChatGPT-specific model, and keeps the higher
// confidence. Any failure on either endpoint degrades into abstention.
type Detector struct {
	endpoints []Endpoint

	token  string
	client *http.Client
}

type Endpoint struct {
	Name string
	URL  string

	// Labels whose probability mass counts as "AI"
	Labels []string
}

func New(endpoints []Endpoint, options ...Option) (*Detector, error) {
	if len(endpoints) == 0 {
		return nil, errors.New("no endpoints")
	}

	d := &Detector{
		endpoints: endpoints,

		client: http.DefaultClient,
	}

	for _, option := range options {
		option(d)
	}

	return d, nil
}

func (d *Detector) Detect(ctx context.Context, text string) (*detector.Verdict, error) {
	input := truncate(text, MaxInputLength)

	type outcome struct {
		name  string
		score float64
	}

	outcomes := make([]outcome, len(d.endpoints))

	var wg sync.WaitGroup

	for i, endpoint := range d.endpoints {
		i, endpoint := i, endpoint
		wg.Add(1)

		go func() {
			defer wg.Done()

			score, err := d.classify(ctx, endpoint, input)

			if err != nil {
				return
			}

			outcomes[i] = outcome{
				name:  endpoint.Name,
				score: score,
			}
		}()
	}

	wg.Wait()

	var best outcome

	for _, o := range outcomes {
		if o.score > best.score {
			best = o
		}
	}

	if best.score <= 0.5 {
		return nil, nil
	}

	return &detector.Verdict{
		Score:  int(math.Round(best.score * 100)),
		Reason: "deep learning analysis (" + best.name + ") rates this text as AI-generated",
	}, nil
}

func (d *Detector) classify(ctx context.Context, endpoint Endpoint, input string) (float64, error) {
	body, _ := json.Marshal(map[string]string{
		"inputs": input,
	})

	req, _ := http.NewRequestWithContext(ctx, "POST", endpoint.URL, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	if d.token != "" {
		req.Header.Set("Authorization", "Bearer "+d.token)
	}

	resp, err := d.client.Do(req)

	if err != nil {
		return 0, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return 0, errors.New(resp.Status)
	}

	var raw json.RawMessage

	if err := json.NewDecoder(resp.Body).Decode(&raw); err != nil {
		return 0, err
	}

	labels, err := decodeLabels(raw)

	if err != nil {
		return 0, err
	}

	var best float64

	for _, label := range labels {
		for _, wanted := range endpoint.Labels {
			if strings.EqualFold(label.Label, wanted) && label.Score > best {
				best = label.Score
			}
		}
	}

	return best, nil
}

type Label struct {
	Label string  `json:"label"`
	Score float64 `json:"score"`
}

// decodeLabels accepts both response shapes the inference API produces:
// a flat label list, or a list nested per input.
func decodeLabels(raw json.RawMessage) ([]Label, error) {
	var flat []Label

	if err := json.Unmarshal(raw, &flat); err == nil {
		return flat, nil
	}

	var nested [][]Label

	if err := json.Unmarshal(raw, &nested); err == nil {
		if len(nested) == 0 {
			return nil, errors.New("empty result")
		}

		return nested[0], nil
	}

	return nil, errors.New("unexpected result shape")
}

func truncate(s string, max int) string {
	runes := []rune(s)

	if len(runes) <= max {
		return s
	}

	return string(runes[:max])
}
