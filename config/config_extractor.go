package config

import (
	"net/http"
	"os"

	"github.com/gradeskim/gradeskim/pkg/extractor"
	"github.com/gradeskim/gradeskim/pkg/extractor/cascade"
	"github.com/gradeskim/gradeskim/pkg/extractor/ocrspace"
	"github.com/gradeskim/gradeskim/pkg/extractor/tesseract"
	"github.com/gradeskim/gradeskim/pkg/extractor/trocr"
)

type extractorsConfig struct {
	Handwriting *handwritingConfig `yaml:"handwriting"`
	OCRSpace    *ocrspaceConfig    `yaml:"ocrspace"`
	Tesseract   *tesseractConfig   `yaml:"tesseract"`
}

type handwritingConfig struct {
	URL   string `yaml:"url"`
	Token string `yaml:"token"`
}

type ocrspaceConfig struct {
	URL string `yaml:"url"`
	Key string `yaml:"key"`
}

type tesseractConfig struct {
	Language   string `yaml:"language"`
	Preprocess bool   `yaml:"preprocess"`
}

const (
	defaultHandwritingURL = "https://api-inference.huggingface.co/models/microsoft/trocr-base-handwritten"
	defaultOCRSpaceURL    = "https://api.ocr.space/parse/image"
)

// registerExtractors builds the ordered cascade: remote handwriting model,
// remote general OCR, local engine. The local engine is always last and
// always present.
func (cfg *Config) registerExtractors(f *configFile, client *http.Client) error {
	var strategies []extractor.Provider

	if c := f.Extractors.Handwriting; c != nil {
		url := c.URL

		if url == "" {
			url = defaultHandwritingURL
		}

		token := c.Token

		if token == "" {
			token = os.Getenv("HUGGINGFACE_TOKEN")
		}

		handwriting, err := trocr.New(url, trocr.WithToken(token), trocr.WithClient(client))

		if err != nil {
			return err
		}

		strategies = append(strategies, handwriting)
	}

	if c := f.Extractors.OCRSpace; c != nil {
		url := c.URL

		if url == "" {
			url = defaultOCRSpaceURL
		}

		options := []ocrspace.Option{
			ocrspace.WithClient(client),
		}

		if c.Key != "" {
			options = append(options, ocrspace.WithKey(c.Key))
		}

		general, err := ocrspace.New(url, options...)

		if err != nil {
			return err
		}

		strategies = append(strategies, general)
	}

	options := []tesseract.Option{}

	if c := f.Extractors.Tesseract; c != nil {
		if c.Language != "" {
			options = append(options, tesseract.WithLanguage(c.Language))
		}

		if c.Preprocess {
			options = append(options, tesseract.WithPreprocessing())
		}
	}

	local, err := tesseract.New(options...)

	if err != nil {
		return err
	}

	strategies = append(strategies, local)

	provider, err := cascade.New(strategies)

	if err != nil {
		return err
	}

	cfg.Extractor = provider

	return nil
}
