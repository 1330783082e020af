package config

import (
	"errors"
	"net/http"
	"os"
	"time"

	"github.com/gradeskim/gradeskim/pkg/analyzer"
	"github.com/gradeskim/gradeskim/pkg/auth"
	"github.com/gradeskim/gradeskim/pkg/auth/static"
	"github.com/gradeskim/gradeskim/pkg/extractor"
	"github.com/gradeskim/gradeskim/pkg/scanner"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Address string

	Auth auth.Provider

	Extractor extractor.Provider
	Analyzer  *analyzer.Analyzer
	Scanner   *scanner.Scanner
}

type configFile struct {
	Address string `yaml:"address"`

	Auth *authConfig `yaml:"auth"`

	Extractors extractorsConfig `yaml:"extractors"`
	Detectors  detectorsConfig  `yaml:"detectors"`

	Analyzer *analyzerConfig `yaml:"analyzer"`
}

type authConfig struct {
	Token string `yaml:"token"`
}

type analyzerConfig struct {
	Segments string `yaml:"segments"` // "document" (default) or "sentence"
}

func New(path string) (*Config, error) {
	var file configFile

	if path != "" {
		data, err := os.ReadFile(path)

		if err != nil {
			return nil, err
		}

		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	}

	cfg := &Config{
		Address: file.Address,
	}

	if cfg.Address == "" {
		cfg.Address = ":8080"
	}

	if file.Auth != nil {
		provider, err := static.New(file.Auth.Token)

		if err != nil {
			return nil, err
		}

		cfg.Auth = provider
	}

	// the pipeline itself enforces no timeouts; the hosting process does
	remote := &http.Client{
		Timeout: 60 * time.Second,
	}

	if err := cfg.registerExtractors(&file, remote); err != nil {
		return nil, err
	}

	if err := cfg.registerAnalyzer(&file, remote); err != nil {
		return nil, err
	}

	s, err := scanner.New(cfg.Extractor, cfg.Analyzer)

	if err != nil {
		return nil, err
	}

	cfg.Scanner = s

	return cfg, nil
}

func (cfg *Config) registerAnalyzer(f *configFile, client *http.Client) error {
	a, err := f.Detectors.analyzer(segmentMode(f), client)

	if err != nil {
		return err
	}

	cfg.Analyzer = a

	return nil
}

func segmentMode(f *configFile) string {
	if f.Analyzer == nil {
		return ""
	}

	return f.Analyzer.Segments
}

var errInvalidSegments = errors.New("invalid segments mode")
