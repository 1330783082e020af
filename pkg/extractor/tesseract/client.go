package tesseract

import (
	"context"
	"strings"

	"github.com/gradeskim/gradeskim/pkg/extractor"
	"github.com/gradeskim/gradeskim/pkg/imaging"

	"github.com/otiai10/gosseract/v2"
)

var _ extractor.Provider = (*Client)(nil)

// Client runs the bundled Tesseract engine on the local machine. It is the
// guaranteed-available fallback of the cascade: no network dependency, but the
// least accurate option for handwriting.
type Client struct {
	language string

	preprocess bool
	progress   func(float64)
}

func New(options ...Option) (*Client, error) {
	c := &Client{
		language: "eng",
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Extract(ctx context.Context, input extractor.Input, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if options == nil {
		options = new(extractor.ExtractOptions)
	}

	if input.File == nil {
		return nil, extractor.ErrUnsupported
	}

	if !extractor.SupportedType(input.File.ContentType) {
		return nil, extractor.ErrUnsupported
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	content := input.File.Content

	if c.preprocess {
		if processed, err := imaging.Preprocess(content); err == nil {
			content = processed
		}
	}

	language := options.Language

	if language == "" {
		language = c.language
	}

	client := gosseract.NewClient()
	defer client.Close()

	if err := client.SetLanguage(language); err != nil {
		return nil, err
	}

	// a photographed assignment is one uniform block of text
	if err := client.SetPageSegMode(gosseract.PSM_SINGLE_BLOCK); err != nil {
		return nil, err
	}

	if err := client.SetImageFromBytes(content); err != nil {
		return nil, err
	}

	if c.progress != nil {
		c.progress(0)
	}

	text, err := client.Text()

	if err != nil {
		return nil, err
	}

	if c.progress != nil {
		c.progress(1)
	}

	text = strings.TrimSpace(text)

	if text == "" {
		return nil, extractor.ErrNotUsable
	}

	return &extractor.Document{
		Text: text,
	}, nil
}
