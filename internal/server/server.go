package server

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/petworks/tamacore/internal/handler"
	"github.com/petworks/tamacore/internal/logger"
	"github.com/petworks/tamacore/internal/metrics"
	"github.com/petworks/tamacore/internal/session"
	"github.com/petworks/tamacore/internal/storage"
)

type Server struct {
	httpServer *http.Server
	store      storage.Store
	session    *session.Session
}

// NewServer creates a new Server instance
func NewServer(port int, sess *session.Session, store storage.Store) *Server {
	r := chi.NewRouter()

	// Chi middleware executes in order defined (outermost to innermost)
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	// Health check routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(store))

	// Version endpoint (public, for deployment verification)
	r.Get("/version", handler.HandleVersion())

	// Metrics endpoint (public, for Prometheus scraping)
	r.Handle("/metrics", promhttp.Handler())

	// API v1 routes
	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/state", handler.HandleGetState(sess))

		r.Route("/pet", func(r chi.Router) {
			r.Post("/feed", handler.HandleFeed(sess))
			r.Post("/sleep", handler.HandleSleep(sess))
			r.Post("/clean", handler.HandleClean(sess))
			r.Post("/play", handler.HandlePlay(sess))
			r.Post("/revive", handler.HandleRevive(sess))
		})

		r.Post("/chest/claim", handler.HandleClaimChest(sess))

		r.Route("/shop", func(r chi.Router) {
			r.Post("/buy", handler.HandleBuy(sess))
			r.Post("/reroll", handler.HandleReroll(sess))
			r.Post("/select", handler.HandleShopSelect(sess))
		})

		r.Route("/inventory", func(r chi.Router) {
			r.Post("/equip", handler.HandleEquip(sess))
			r.Post("/unequip", handler.HandleUnequip(sess))
			r.Post("/select", handler.HandleInventorySelect(sess))
			r.Post("/page", handler.HandleInventoryPage(sess))
		})

		r.Route("/nav", func(r chi.Router) {
			r.Post("/push", handler.HandleNavPush(sess))
			r.Post("/pop", handler.HandleNavPop(sess))
		})
	})

	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", port),
			Handler:           r,
			ReadHeaderTimeout: 5 * time.Second,
		},
		store:   store,
		session: sess,
	}
}

// Start begins listening for HTTP requests. Blocks until shutdown.
func (s *Server) Start() error {
	if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("http server: %w", err)
	}
	return nil
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

// responseWriter wraps http.ResponseWriter to capture the status code
type responseWriter struct {
	http.ResponseWriter
	statusCode int
	written    bool
}

func newResponseWriter(w http.ResponseWriter) *responseWriter {
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

func (rw *responseWriter) WriteHeader(statusCode int) {
	if !rw.written {
		rw.statusCode = statusCode
		rw.written = true
		rw.ResponseWriter.WriteHeader(statusCode)
	}
}

func (rw *responseWriter) Write(b []byte) (int, error) {
	if !rw.written {
		rw.WriteHeader(http.StatusOK)
	}
	return rw.ResponseWriter.Write(b)
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		// Skip logging for health check endpoints and metrics
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := logger.GenerateRequestID()
		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)

		log := logger.FromContext(ctx)
		log.Info("Request started",
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info("Request completed",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds())
	})
}
