package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/secmon-lab/gyges/pkg/usecase"
)

type Server struct {
	router  *chi.Mux
	uc      *usecase.UseCases
	version string
}

type Options func(*Server)

// WithVersion sets the version string reported by the health endpoint
func WithVersion(version string) Options {
	return func(s *Server) {
		s.version = version
	}
}

func New(uc *usecase.UseCases, opts ...Options) *Server {
	r := chi.NewRouter()

	s := &Server{
		router:  r,
		uc:      uc,
		version: "dev",
	}
	for _, opt := range opts {
		opt(s)
	}

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(accessLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", healthHandler(s.version))

	r.Route("/api", func(r chi.Router) {
		r.Route("/records", func(r chi.Router) {
			r.Get("/", listRecordsHandler(uc))
			r.Post("/", createRecordHandler(uc))
			r.Post("/import", importHandler(uc))

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", getRecordHandler(uc))
				r.Get("/aggregation", childScoresHandler(uc))
				r.Get("/overview", overviewHandler(uc))
				r.Patch("/status", updateStatusHandler(uc))
				r.Patch("/severity", updateSeverityHandler(uc))
				r.Patch("/effectiveness", updateEffectivenessHandler(uc))
			})
		})

		r.Get("/view", viewHandler(uc))
		r.Get("/summary", summaryHandler(uc))
	})

	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func healthHandler(version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(r.Context(), w, http.StatusOK, map[string]string{
			"status":  "ok",
			"version": version,
		})
	}
}
