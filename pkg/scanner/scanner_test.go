package scanner_test

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/gradeskim/gradeskim/pkg/analyzer"
	"github.com/gradeskim/gradeskim/pkg/detector/pattern"
	"github.com/gradeskim/gradeskim/pkg/detector/statistical"
	"github.com/gradeskim/gradeskim/pkg/extractor"
	"github.com/gradeskim/gradeskim/pkg/extractor/cascade"
	"github.com/gradeskim/gradeskim/pkg/scanner"

	"github.com/stretchr/testify/require"
)

type fakeExtractor struct {
	text string

	block chan struct{}
}

func (f *fakeExtractor) Extract(ctx context.Context, input extractor.Input, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if f.block != nil {
		<-f.block
	}

	if f.text == "" {
		return nil, cascade.ErrNoText
	}

	return &extractor.Document{Text: f.text}, nil
}

func newScanner(t *testing.T, provider extractor.Provider, options ...scanner.Option) *scanner.Scanner {
	t.Helper()

	patternDetector, err := pattern.New()
	require.NoError(t, err)

	statisticalDetector, err := statistical.New()
	require.NoError(t, err)

	a, err := analyzer.New(patternDetector, statisticalDetector)
	require.NoError(t, err)

	s, err := scanner.New(provider, a, options...)
	require.NoError(t, err)

	return s
}

func imageInput() scanner.Input {
	return scanner.Input{
		File: &extractor.File{
			Name:        "essay.jpg",
			Content:     []byte{0xff, 0xd8},
			ContentType: "image/jpeg",
		},
	}
}

func TestScanPastedTextSkipsExtraction(t *testing.T) {
	s := newScanner(t, &fakeExtractor{})

	input := "In conclusion, this essay demonstrates clear understanding. Furthermore, the analysis is comprehensive."

	result, err := s.Scan(context.Background(), scanner.Input{Text: input})
	require.NoError(t, err)

	require.Equal(t, input, result.ExtractedText)
	require.Equal(t, 98, result.Score)
	require.Len(t, result.Segments, 1)
	require.True(t, result.Segments[0].AI)

	require.Equal(t, scanner.StateComplete, s.State())
}

func TestScanImageRunsExtraction(t *testing.T) {
	s := newScanner(t, &fakeExtractor{text: "a short handwritten answer about photosynthesis and light"})

	result, err := s.Scan(context.Background(), imageInput())
	require.NoError(t, err)
	require.Equal(t, "a short handwritten answer about photosynthesis and light", result.ExtractedText)
}

func TestScanExtractionFailure(t *testing.T) {
	s := newScanner(t, &fakeExtractor{})

	_, err := s.Scan(context.Background(), imageInput())
	require.ErrorIs(t, err, cascade.ErrNoText)

	require.Equal(t, scanner.StateIdle, s.State())
	require.Nil(t, s.Result())
}

func TestScanInputValidation(t *testing.T) {
	s := newScanner(t, &fakeExtractor{})

	_, err := s.Scan(context.Background(), scanner.Input{})
	require.ErrorIs(t, err, scanner.ErrInvalidInput)

	_, err = s.Scan(context.Background(), scanner.Input{
		Text: "both set",
		File: &extractor.File{ContentType: "image/png"},
	})
	require.ErrorIs(t, err, scanner.ErrInvalidInput)
}

func TestScanReportsProgress(t *testing.T) {
	var milestones []int

	s := newScanner(t, &fakeExtractor{}, scanner.WithProgress(func(percent int) {
		milestones = append(milestones, percent)
	}))

	_, err := s.Scan(context.Background(), scanner.Input{Text: "a plain sentence about the weather today"})
	require.NoError(t, err)
	require.Equal(t, []int{10, 100}, milestones)
}

func TestScanStaleRunDoesNotOverwriteNewer(t *testing.T) {
	block := make(chan struct{})

	slow := &fakeExtractor{
		text:  "stale result from the abandoned run",
		block: block,
	}

	s := newScanner(t, slow)

	var wg sync.WaitGroup
	wg.Add(1)

	var staleResult *scanner.Result
	var staleErr error

	go func() {
		defer wg.Done()

		staleResult, staleErr = s.Scan(context.Background(), imageInput())
	}()

	// let the first run park inside extraction, then start a newer one
	time.Sleep(50 * time.Millisecond)

	newer, err := s.Scan(context.Background(), scanner.Input{Text: "the newer pasted essay text wins here"})
	require.NoError(t, err)

	close(block)
	wg.Wait()

	// the abandoned run still returns its result to its caller
	require.NoError(t, staleErr)
	require.Equal(t, "stale result from the abandoned run", staleResult.ExtractedText)

	require.Equal(t, scanner.StateComplete, s.State())
	require.Equal(t, newer.ExtractedText, s.Result().ExtractedText)
}

func TestSuggestedGrade(t *testing.T) {
	tests := []struct {
		score int
		want  string
	}{
		{score: 15, want: "A"},
		{score: 20, want: "B"},
		{score: 45, want: "C"},
		{score: 65, want: "D"},
		{score: 98, want: "F"},
	}

	for _, tt := range tests {
		require.Equal(t, tt.want, scanner.SuggestedGrade(tt.score))
	}
}
