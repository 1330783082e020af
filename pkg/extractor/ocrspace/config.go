package ocrspace

import (
	"net/http"

	"golang.org/x/time/rate"
)

type Option func(*Client)

func WithClient(client *http.Client) Option {
	return func(c *Client) {
		c.client = client
	}
}

func WithKey(key string) Option {
	return func(c *Client) {
		c.key = key
	}
}

func WithLimiter(limiter *rate.Limiter) Option {
	return func(c *Client) {
		c.limiter = limiter
	}
}
