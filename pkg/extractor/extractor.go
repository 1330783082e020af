package extractor

import (
	"context"
	"errors"
	"strings"
)

type Provider interface {
	Extract(ctx context.Context, input Input, options *ExtractOptions) (*Document, error)
}

var (
	ErrUnsupported = errors.New("unsupported type")
	ErrNotUsable   = errors.New("no usable text")
)

// MinUsableLength is the minimum trimmed length for extracted text to count
// as a successful extraction.
const MinUsableLength = 5

type ExtractOptions struct {
	Language string
}

type Input struct {
	File *File
}

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Document struct {
	Text string `json:"text"`

	Confidence float64 `json:"confidence,omitempty"`
}

// Usable reports whether text passes the minimum-length rule after trimming.
func Usable(text string) bool {
	return len(strings.TrimSpace(text)) >= MinUsableLength
}

var supportedTypes = map[string]bool{
	"image/png":  true,
	"image/jpeg": true,
	"image/webp": true,
}

// SupportedType reports whether the media type is an accepted raster format.
func SupportedType(contentType string) bool {
	contentType, _, _ = strings.Cut(contentType, ";")
	return supportedTypes[strings.TrimSpace(strings.ToLower(contentType))]
}
