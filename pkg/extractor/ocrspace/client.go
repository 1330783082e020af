package ocrspace

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"errors"
	"mime/multipart"
	"net/http"
	"strings"

	"github.com/gradeskim/gradeskim/pkg/extractor"

	"golang.org/x/time/rate"
)

var _ extractor.Provider = (*Client)(nil)

// Client submits a base64-encoded image to the OCR.space API. Engine 2 is
// selected because it handles irregular and numeric text better than the
// default engine.
type Client struct {
	url string
	key string

	client  *http.Client
	limiter *rate.Limiter
}

// DefaultKey is the public demo key published by OCR.space.
const DefaultKey = "helloworld"

func New(url string, options ...Option) (*Client, error) {
	if url == "" || !strings.HasPrefix(url, "http") {
		return nil, errors.New("invalid url")
	}

	c := &Client{
		url: url,
		key: DefaultKey,

		client: http.DefaultClient,

		// the shared demo key is throttled upstream
		limiter: rate.NewLimiter(rate.Limit(1), 3),
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

	language := options.Language

	if language == "" {
		language = "eng"
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return nil, err
	}

	payload := "data:" + input.File.ContentType + ";base64," + base64.StdEncoding.EncodeToString(input.File.Content)

	var body strings.Builder

	w := multipart.NewWriter(&body)
	w.WriteField("apikey", c.key)
	w.WriteField("base64Image", payload)
	w.WriteField("language", language)
	w.WriteField("OCREngine", "2")
	w.WriteField("scale", "true")
	w.Close()

	req, _ := http.NewRequestWithContext(ctx, "POST", c.url, strings.NewReader(body.String()))
	req.Header.Set("Content-Type", w.FormDataContentType())

	resp, err := c.client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	var result Response

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	if result.IsErroredOnProcessing || len(result.ParsedResults) == 0 {
		return nil, extractor.ErrNotUsable
	}

	text := strings.TrimSpace(result.ParsedResults[0].ParsedText)

	if text == "" {
		return nil, extractor.ErrNotUsable
	}

	return &extractor.Document{
		Text: text,
	}, nil
}

type Response struct {
	IsErroredOnProcessing bool `json:"IsErroredOnProcessing"`

	ParsedResults []ParsedResult `json:"ParsedResults"`
}

type ParsedResult struct {
	ParsedText string `json:"ParsedText"`
}
