package cascade_test

import (
	"context"
	"errors"
	"testing"

	"github.com/gradeskim/gradeskim/pkg/extractor"
	"github.com/gradeskim/gradeskim/pkg/extractor/cascade"

	"github.com/stretchr/testify/require"
)

type fake struct {
	text string
	err  error

	calls int
}

func (f *fake) Extract(ctx context.Context, input extractor.Input, options *extractor.ExtractOptions) (*extractor.Document, error) {
	f.calls++

	if f.err != nil {
		return nil, f.err
	}

	return &extractor.Document{Text: f.text}, nil
}

func input() extractor.Input {
	return extractor.Input{
		File: &extractor.File{
			Name:        "scan.png",
			Content:     []byte{0x89, 0x50, 0x4e, 0x47},
			ContentType: "image/png",
		},
	}
}

func TestExtractShortCircuits(t *testing.T) {
	first := &fake{text: "abcdef"}
	second := &fake{text: "unused"}
	third := &fake{text: "unused"}

	p, err := cascade.New([]extractor.Provider{first, second, third})
	require.NoError(t, err)

	document, err := p.Extract(context.Background(), input(), nil)
	require.NoError(t, err)
	require.Equal(t, "abcdef", document.Text)

	require.Equal(t, 1, first.calls)
	require.Zero(t, second.calls)
	require.Zero(t, third.calls)
}

func TestExtractFallsBackOnError(t *testing.T) {
	first := &fake{err: errors.New("network down")}
	second := &fake{text: "recovered text"}

	p, err := cascade.New([]extractor.Provider{first, second})
	require.NoError(t, err)

	document, err := p.Extract(context.Background(), input(), nil)
	require.NoError(t, err)
	require.Equal(t, "recovered text", document.Text)
}

func TestExtractFallsBackOnShortText(t *testing.T) {
	first := &fake{text: "ab"}
	second := &fake{text: "   \n "}
	third := &fake{text: "long enough"}

	p, err := cascade.New([]extractor.Provider{first, second, third})
	require.NoError(t, err)

	document, err := p.Extract(context.Background(), input(), nil)
	require.NoError(t, err)
	require.Equal(t, "long enough", document.Text)

	require.Equal(t, 1, first.calls)
	require.Equal(t, 1, second.calls)
	require.Equal(t, 1, third.calls)
}

func TestExtractExhaustion(t *testing.T) {
	p, err := cascade.New([]extractor.Provider{
		&fake{err: errors.New("boom")},
		&fake{text: "hi"},
		&fake{text: ""},
	})
	require.NoError(t, err)

	_, err = p.Extract(context.Background(), input(), nil)
	require.ErrorIs(t, err, cascade.ErrNoText)
}

func TestExtractReportsProgress(t *testing.T) {
	var milestones []int

	p, err := cascade.New(
		[]extractor.Provider{
			&fake{err: errors.New("boom")},
			&fake{text: "usable result"},
		},
		cascade.WithProgress(func(percent int) {
			milestones = append(milestones, percent)
		}),
	)
	require.NoError(t, err)

	_, err = p.Extract(context.Background(), input(), nil)
	require.NoError(t, err)

	require.Equal(t, []int{10, 50, 90}, milestones)
}

func TestNewRequiresStrategies(t *testing.T) {
	_, err := cascade.New(nil)
	require.Error(t, err)
}
