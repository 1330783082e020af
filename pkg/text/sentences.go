package text

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

var terminalRegex = regexp.MustCompile(`[.!?]+`)

// Sentences splits text on terminal punctuation. Text without any terminal
// punctuation counts as a single sentence.
func Sentences(text string) []string {
	var sentences []string

	for _, part := range terminalRegex.Split(text, -1) {
		part = strings.TrimSpace(part)

		if part == "" {
			continue
		}

		sentences = append(sentences, part)
	}

	if len(sentences) == 0 {
		if trimmed := strings.TrimSpace(text); trimmed != "" {
			sentences = []string{trimmed}
		}
	}

	return sentences
}

func Words(sentence string) []string {
	return strings.Fields(sentence)
}

// AverageWordLength is the mean rune count per word across all sentences.
func AverageWordLength(sentences []string) float64 {
	var words, runes int

	for _, sentence := range sentences {
		for _, word := range Words(sentence) {
			words++
			runes += utf8.RuneCountInString(word)
		}
	}

	if words == 0 {
		return 0
	}

	return float64(runes) / float64(words)
}

// MeanWordsPerSentence is the mean per-sentence word count.
func MeanWordsPerSentence(sentences []string) float64 {
	if len(sentences) == 0 {
		return 0
	}

	var words int

	for _, sentence := range sentences {
		words += len(Words(sentence))
	}

	return float64(words) / float64(len(sentences))
}
