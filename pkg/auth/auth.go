package auth

import (
	"context"
	"net/http"
)

type Provider interface {
	Authenticate(ctx context.Context, r *http.Request) (context.Context, error)
}

type contextKey string

const (
	UserContextKey contextKey = "user"
)
