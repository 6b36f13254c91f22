package server

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/osse101/Casino_Go/internal/clicker"
	"github.com/osse101/Casino_Go/internal/engine"
	"github.com/osse101/Casino_Go/internal/handler"
	"github.com/osse101/Casino_Go/internal/logger"
	"github.com/osse101/Casino_Go/internal/metrics"
	"github.com/osse101/Casino_Go/internal/stats"
	"github.com/osse101/Casino_Go/internal/user"
)

// Options tunes the HTTP edge
type Options struct {
	Port               int
	Version            string
	CORSAllowedOrigins []string
	RateLimitPerMinute int // zero disables limiting
	MaxBodyBytes       int64
}

// Services are the application services routed by the server
type Services struct {
	Store   handler.Pinger
	Users   user.Service
	Engine  engine.Engine
	Clicker clicker.Service
	Stats   stats.Service
}

type Server struct {
	httpServer *http.Server
}

// NewServer creates a new Server instance
func NewServer(opts Options, svc Services) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:              fmt.Sprintf(":%d", opts.Port),
			Handler:           NewRouter(opts, svc),
			ReadHeaderTimeout: 5 * time.Second,
		},
	}
}

// NewRouter builds the middleware stack and routes. Middleware executes in the order
// defined, outermost first.
func NewRouter(opts Options, svc Services) chi.Router {
	if opts.MaxBodyBytes <= 0 {
		opts.MaxBodyBytes = DefaultMaxBodyBytes
	}

	r := chi.NewRouter()

	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(SecurityHeadersMiddleware)
	r.Use(corsMiddleware(opts.CORSAllowedOrigins))
	if opts.RateLimitPerMinute > 0 {
		r.Use(httprate.Limit(opts.RateLimitPerMinute, time.Minute,
			httprate.WithKeyFuncs(httprate.KeyByIP),
			httprate.WithLimitHandler(handler.HandleTooManyRequests),
		))
	}
	r.Use(middleware.RequestSize(opts.MaxBodyBytes))
	r.Use(metrics.Middleware)
	r.Use(loggingMiddleware)

	r.NotFound(handler.HandleNotFound)
	r.MethodNotAllowed(handler.HandleMethodNotAllowed)

	// Operational routes (unversioned)
	r.Get("/healthz", handler.HandleHealthz())
	r.Get("/readyz", handler.HandleReadyz(handler.ReadinessCheck{Name: "storage", Pinger: svc.Store}))
	r.Get("/version", handler.HandleVersion(opts.Version))
	r.Handle("/metrics", promhttp.Handler())
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/users", func(r chi.Router) {
			r.Post("/", handler.HandleRegisterUser(svc.Users))
			r.Get("/{id}", handler.HandleGetUser(svc.Users))
		})

		games := handler.NewGameHandler(svc.Engine)
		r.Route("/games", func(r chi.Router) {
			r.Route("/blackjack", func(r chi.Router) {
				r.Post("/start", games.HandleBlackjackStart)
				r.Post("/hit", games.HandleBlackjackHit)
				r.Post("/stand", games.HandleBlackjackStand)
			})
			r.Post("/roulette/spin", games.HandleRouletteSpin)
			r.Route("/minebomb", func(r chi.Router) {
				r.Post("/start", games.HandleMinebombStart)
				r.Post("/reveal", games.HandleMinebombReveal)
				r.Post("/cashout", games.HandleMinebombCashout)
			})
			r.Post("/slots/spin", games.HandleSlotsSpin)
		})

		clickerHandler := handler.NewClickerHandler(svc.Clicker)
		r.Route("/clicker", func(r chi.Router) {
			r.Get("/", clickerHandler.HandleGetData)
			r.Post("/click", clickerHandler.HandleClick)
			r.Post("/upgrade", clickerHandler.HandleUpgrade)
			r.Post("/passive", clickerHandler.HandlePassive)
		})

		r.Route("/stats", func(r chi.Router) {
			r.Get("/global", handler.HandleGetGlobalStats(svc.Stats))
			r.Get("/user", handler.HandleGetUserStats(svc.Stats))
		})
		r.Get("/history", handler.HandleGetHistory(svc.Stats))
		r.Get("/achievements", handler.HandleListAchievements(svc.Stats))
	})

	return r
}

func corsMiddleware(origins []string) func(http.Handler) http.Handler {
	return cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type", HeaderRequestID},
		ExposedHeaders: []string{HeaderRequestID},
		MaxAge:         300,
	})
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

		// Probes and scrapes are too frequent to log
		if strings.HasPrefix(r.URL.Path, "/healthz") ||
			strings.HasPrefix(r.URL.Path, "/readyz") ||
			strings.HasPrefix(r.URL.Path, "/metrics") {
			next.ServeHTTP(w, r)
			return
		}

		requestID := r.Header.Get(HeaderRequestID)
		if requestID == "" || len(requestID) > maxRequestIDLength {
			requestID = logger.GenerateRequestID()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := logger.WithRequestID(r.Context(), requestID)
		r = r.WithContext(ctx)
		log := logger.FromContext(ctx)

		log.Info(LogMsgRequestStarted,
			"method", r.Method,
			"path", r.URL.Path,
			"remote_addr", r.RemoteAddr,
			"content_length", r.ContentLength,
			"user_agent", r.UserAgent())

		sanitizedHeaders := make(http.Header)
		for k, v := range r.Header {
			if strings.EqualFold(k, HeaderAuthorization) || strings.EqualFold(k, HeaderCookie) {
				sanitizedHeaders[k] = []string{RedactedValue}
			} else {
				sanitizedHeaders[k] = v
			}
		}
		log.Debug(LogMsgRequestHeaders, "headers", sanitizedHeaders)

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		duration := time.Since(start)
		log.Info(LogMsgRequestCompleted,
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.statusCode,
			"duration_ms", duration.Milliseconds(),
			"duration", duration)
	})
}

// Start starts the server
func (s *Server) Start() error {
	slog.Default().Info(LogMsgServerStarting, "addr", s.httpServer.Addr)
	return s.httpServer.ListenAndServe()
}

// Stop stops the server gracefully
func (s *Server) Stop(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
