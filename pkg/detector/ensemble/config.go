package ensemble

import (
	"net/http"
)

type Option func(*Detector)

func WithClient(client *http.Client) Option {
	return func(d *Detector) {
		d.client = client
	}
}

func WithToken(token string) Option {
	return func(d *Detector) {
		d.token = token
	}
}
