package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
)

type AnalysisService struct {
	Options []RequestOption
}

func NewAnalysisService(opts ...RequestOption) AnalysisService {
	return AnalysisService{
		Options: opts,
	}
}

type AnalysisRequest struct {
	Text string

	File *File
}

type File struct {
	Name string

	Content     []byte
	ContentType string
}

type Analysis struct {
	ExtractedText string `json:"extractedText"`

	AIPercentage int    `json:"aiPercentage"`
	Reasoning    string `json:"reasoning"`

	SuggestedGrade string `json:"suggestedGrade"`

	Segments []Segment `json:"segments"`
}

type Segment struct {
	Text string `json:"text"`
	IsAI bool   `json:"isAi"`
}

func (r *AnalysisService) New(ctx context.Context, input AnalysisRequest, opts ...RequestOption) (*Analysis, error) {
	c := newRequestConfig(append(r.Options, opts...)...)
	url := strings.TrimRight(c.URL, "/") + "/v1/analyses"

	var req *http.Request

	if input.File != nil {
		var body bytes.Buffer

		w := multipart.NewWriter(&body)

		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", `form-data; name="file"; filename="`+input.File.Name+`"`)
		header.Set("Content-Type", input.File.ContentType)

		part, err := w.CreatePart(header)

		if err != nil {
			return nil, err
		}

		if _, err := io.Copy(part, bytes.NewReader(input.File.Content)); err != nil {
			return nil, err
		}

		w.Close()

		req, _ = http.NewRequestWithContext(ctx, "POST", url, &body)
		req.Header.Set("Content-Type", w.FormDataContentType())
	} else {
		body, _ := json.Marshal(map[string]string{
			"text": input.Text,
		})

		req, _ = http.NewRequestWithContext(ctx, "POST", url, bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	}

	if c.Token != "" {
		req.Header.Set("Authorization", "Bearer "+c.Token)
	}

	resp, err := c.Client.Do(req)

	if err != nil {
		return nil, err
	}

	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, errors.New(resp.Status)
	}

	var result Analysis

	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		return nil, err
	}

	return &result, nil
}
