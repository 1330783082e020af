package config

import (
	"net/http"
	"os"

	"github.com/gradeskim/gradeskim/pkg/analyzer"
	"github.com/gradeskim/gradeskim/pkg/detector/ensemble"
	"github.com/gradeskim/gradeskim/pkg/detector/pattern"
	"github.com/gradeskim/gradeskim/pkg/detector/statistical"
)

type detectorsConfig struct {
	Ensemble *ensembleConfig `yaml:"ensemble"`
}

type ensembleConfig struct {
	Token string `yaml:"token"`

	GeneralURL string `yaml:"general_url"`
	ChatGPTURL string `yaml:"chatgpt_url"`
}

const (
	defaultGeneralURL = "https://api-inference.huggingface.co/models/roberta-base-openai-detector"
	defaultChatGPTURL = "https://api-inference.huggingface.co/models/Hello-SimpleAI/chatgpt-detector-roberta"
)

func (dc detectorsConfig) analyzer(segments string, client *http.Client) (*analyzer.Analyzer, error) {
	patternDetector, err := pattern.New()

	if err != nil {
		return nil, err
	}

	statisticalDetector, err := statistical.New()

	if err != nil {
		return nil, err
	}

	options := []analyzer.Option{}

	switch segments {
	case "", "document":
		// default: one segment for the whole document

	case "sentence":
		options = append(options, analyzer.WithSentenceSegments())

	default:
		return nil, errInvalidSegments
	}

	if c := dc.Ensemble; c != nil {
		generalURL := c.GeneralURL

		if generalURL == "" {
			generalURL = defaultGeneralURL
		}

		chatgptURL := c.ChatGPTURL

		if chatgptURL == "" {
			chatgptURL = defaultChatGPTURL
		}

		token := c.Token

		if token == "" {
			token = os.Getenv("HUGGINGFACE_TOKEN")
		}

		endpoints := []ensemble.Endpoint{
			{
				Name:   "general",
				URL:    generalURL,
				Labels: []string{"Fake"},
			},
			{
				Name:   "chatgpt",
				URL:    chatgptURL,
				Labels: []string{"ChatGPT", "Fake"},
			},
		}

		ensembleDetector, err := ensemble.New(endpoints, ensemble.WithToken(token), ensemble.WithClient(client))

		if err != nil {
			return nil, err
		}

		options = append(options, analyzer.WithEnsemble(ensembleDetector))
	}

	return analyzer.New(patternDetector, statisticalDetector, options...)
}
