package cascade

import (
	"context"
	"errors"

	"github.com/gradeskim/gradeskim/pkg/extractor"
)

var _ extractor.Provider = (*Provider)(nil)

// ErrNoText is the terminal failure after every strategy has been exhausted
// without producing usable text.
var ErrNoText = errors.New("could not extract text")

// Provider tries an ordered list of extraction strategies and returns the
// first usable result. Individual strategy errors never abort the cascade.
type Provider struct {
	strategies []extractor.Provider

	progress func(int)
}

func New(strategies []extractor.Provider, options ...Option) (*Provider, error) {
	if len(strategies) == 0 {
		return nil, errors.New("no strategies")
	}

	p := &Provider{
		strategies: strategies,
	}

	for _, option := range options {
		option(p)
	}

	return p, nil
}

func (p *Provider) Extract(ctx context.Context, input extractor.Input, options *extractor.ExtractOptions) (*extractor.Document, error) {
	p.report(10)

	for i, strategy := range p.strategies {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		document, err := strategy.Extract(ctx, input, options)

		p.report(milestone(i+1, len(p.strategies)))

		if err != nil {
			continue
		}

		if document == nil || !extractor.Usable(document.Text) {
			continue
		}

		return document, nil
	}

	return nil, ErrNoText
}

func (p *Provider) report(percent int) {
	if p.progress != nil {
		p.progress(percent)
	}
}

// milestone maps "n of total strategies done" into the 10..90 band.
func milestone(n, total int) int {
	return 10 + (80*n)/total
}
