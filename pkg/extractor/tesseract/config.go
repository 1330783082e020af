package tesseract

type Option func(*Client)

func WithLanguage(language string) Option {
	return func(c *Client) {
		c.language = language
	}
}

func WithPreprocessing() Option {
	return func(c *Client) {
		c.preprocess = true
	}
}

func WithProgress(fn func(float64)) Option {
	return func(c *Client) {
		c.progress = fn
	}
}
