package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/blueputty01/swiftnotes/config"
	"github.com/blueputty01/swiftnotes/server/api"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type Server struct {
	*config.Config
	http.Handler

	api *api.Handler
}

func New(cfg *config.Config) (*Server, error) {
	h, err := api.New(cfg)

	if err != nil {
		return nil, err
	}

	r := chi.NewRouter()

	s := &Server{
		Config:  cfg,
		Handler: r,

		api: h,
	}

	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"HEAD", "GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"*"},
		ExposedHeaders: []string{"X-Export-Id"},
	}))

	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	})

	r.Route("/v1", func(r chi.Router) {
		r.Use(s.handleAuth)

		s.api.Attach(r)
	})

	return s, nil
}

func (s *Server) ListenAndServe(ctx context.Context) error {
	srv := &http.Server{
		Addr:    s.Address,
		Handler: otelhttp.NewHandler(s, "swiftnotes"),

		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()

		shutdown, cancel := context.WithTimeout(context.WithoutCancel(ctx), 30*time.Second)
		defer cancel()

		srv.Shutdown(shutdown)
	}()

	slog.Info("server listening", "address", s.Address)

	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}

	return nil
}

func (s *Server) handleAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if len(s.Authorizers) == 0 {
			next.ServeHTTP(w, r)
			return
		}

		var result error

		for _, a := range s.Authorizers {
			ctx, err := a.Authenticate(r.Context(), r)

			if err == nil {
				next.ServeHTTP(w, r.WithContext(ctx))
				return
			}

			result = errors.Join(result, err)
		}

		slog.WarnContext(r.Context(), "request not authorized", "path", r.URL.Path, "error", result)

		http.Error(w, http.StatusText(http.StatusUnauthorized), http.StatusUnauthorized)
	})
}
