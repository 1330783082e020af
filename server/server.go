package server

import (
	"encoding/json"
	"net/http"

	"github.com/gradeskim/gradeskim/config"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config

	handler http.Handler
}

func New(cfg *config.Config) (*Server, error) {
	s := &Server{
		Config: cfg,
	}

	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Authorization", "Content-Type"},
	}))

	if cfg.Auth != nil {
		r.Use(s.authenticate)
	}

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		writeJson(w, map[string]string{"status": "ok"})
	})

	r.Route("/v1", func(r chi.Router) {
		s.Attach(r)
	})

	s.handler = otelhttp.NewHandler(r, "gradeskim")

	return s, nil
}

func (s *Server) Handler() http.Handler {
	return s.handler
}

func (s *Server) ListenAndServe() error {
	return http.ListenAndServe(s.Address, s.handler)
}

func (s *Server) Attach(r chi.Router) {
	r.Post("/analyses", s.handleAnalysis)
}

func (s *Server) authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, err := s.Auth.Authenticate(r.Context(), r)

		if err != nil {
			writeError(w, http.StatusUnauthorized, err)
			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func writeJson(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func writeError(w http.ResponseWriter, code int, err error) {
	if err != nil {
		println("server error", err.Error())
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	resp := ErrorResponse{
		Error: Error{
			Message: err.Error(),
		},
	}

	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(resp)
}
