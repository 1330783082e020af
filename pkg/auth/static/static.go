package static

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gradeskim/gradeskim/pkg/auth"
)

var _ auth.Provider = (*Provider)(nil)

type Provider struct {
	token string

	userHeader string
}

type Option func(*Provider)

func New(token string, opts ...Option) (*Provider, error) {
	p := &Provider{
		token: token,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.userHeader == "" {
		p.userHeader = "X-Forwarded-User"
	}

	return p, nil
}

func WithUserHeader(val string) Option {
	return func(p *Provider) {
		p.userHeader = val
	}
}

func (p *Provider) Authenticate(ctx context.Context, r *http.Request) (context.Context, error) {
	if p.token == "" {
		return ctx, nil
	}

	header := r.Header.Get("Authorization")

	if header == "" {
		return ctx, errors.New("missing authorization header")
	}

	if !strings.HasPrefix(header, "Bearer ") {
		return ctx, errors.New("invalid authorization header")
	}

	token := strings.TrimPrefix(header, "Bearer ")

	if token != p.token {
		return ctx, errors.New("invalid token")
	}

	ctx = context.WithValue(ctx, auth.UserContextKey, token)

	if user := strings.TrimSpace(r.Header.Get(p.userHeader)); user != "" {
		ctx = context.WithValue(ctx, auth.UserContextKey, user)
	}

	return ctx, nil
}
