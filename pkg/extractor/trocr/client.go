package trocr

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/gradeskim/gradeskim/pkg/extractor"
)

var _ extractor.Provider = (*Client)(nil)

// Client sends raw image bytes to a hosted handwriting-transformer model and
// reads back the generated transcription.
type Client struct {
	url   string
	token string

	client *http.Client
}

func New(url string, options ...Option) (*Client, error) {
	if url == "" || !strings.HasPrefix(url, "http") {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		url: url,

		client: http.DefaultClient,
	}

	for _, option := range options {
		option(c)
	}

	return c, nil
}

func (c *Client) Extract(ctx context.Context, input extractor.Input, options *extractor.ExtractOptions) (*extractor.Document, error) {
	if input.File == nil {
		return nil, extractor.ErrUnsupported
	}

	if !extractor.SupportedType(input.File.ContentType) {
		return nil, extractor.ErrUnsupported
	}

	req, _ := http.NewRequestWithContext(ctx, "POST", c.url, bytes.NewReader(input.File.Content))
	req.Header.Set("Content-Type", "application/octet-stream")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	var result []GenerationResult

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if len(result) == 0 || strings.TrimSpace(result[0].GeneratedText) == "" {
		return nil, extractor.ErrNotUsable
	}

	return &extractor.Document{
		Text: strings.TrimSpace(result[0].GeneratedText),
	}, nil
}

type GenerationResult struct {
	GeneratedText string `json:"generated_text"`
}
