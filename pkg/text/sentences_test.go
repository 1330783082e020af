package text_test

import (
	"testing"

	"github.com/gradeskim/gradeskim/pkg/text"

	"github.com/stretchr/testify/require"
)

func TestSentences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{
			name:  "terminal punctuation",
			input: "First sentence. Second sentence! Third sentence?",
			want:  []string{"First sentence", "Second sentence", "Third sentence"},
		},
		{
			name:  "no terminal punctuation is one sentence",
			input: "just a fragment without an ending",
			want:  []string{"just a fragment without an ending"},
		},
		{
			name:  "repeated punctuation collapses",
			input: "Wait... what?! Really.",
			want:  []string{"Wait", "what", "Really"},
		},
		{
			name:  "empty input",
			input: "   ",
			want:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, text.Sentences(tt.input))
		})
	}
}

func TestAverageWordLength(t *testing.T) {
	require.InDelta(t, 3.0, text.AverageWordLength([]string{"abc abc", "abc"}), 0.001)
	require.Zero(t, text.AverageWordLength(nil))
}

func TestMeanWordsPerSentence(t *testing.T) {
	require.InDelta(t, 2.5, text.MeanWordsPerSentence([]string{"one two", "one two three"}), 0.001)
	require.Zero(t, text.MeanWordsPerSentence(nil))
}
