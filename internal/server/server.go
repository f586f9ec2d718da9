package server

import (
	"log"
	"net/http"

	"github.com/slidekit/gapfinder/internal/config"
	"github.com/slidekit/gapfinder/internal/locator"
)

// Server handles HTTP requests for the captcha solver.
type Server struct {
	cfg    *config.Config
	params locator.Params
}

// New creates a server from loaded configuration.
func New(cfg *config.Config) *Server {
	return &Server{
		cfg: cfg,
		params: locator.Params{
			EdgeMargin:    cfg.EdgeMargin,
			DropThreshold: cfg.DropThreshold,
		},
	}
}

// Routes builds the handler tree with CORS applied.
func (s *Server) Routes() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/api/slide", s.handleSlide)
	mux.HandleFunc("/api/slide/overlay", s.handleSlideOverlay)
	mux.HandleFunc("/api/ocr", s.handleOCR)
	mux.HandleFunc("/health", s.handleHealth)
	return corsMiddleware(mux)
}

// Run starts the server and blocks until it fails.
func (s *Server) Run() error {
	addr := ":" + s.cfg.Port
	log.Printf("gap-server listening on %s", addr)
	return http.ListenAndServe(addr, s.Routes())
}

// corsMiddleware allows browser clients to call the API cross-origin.
func corsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "POST, GET, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}
