// Package api exposes the recitation scoring HTTP endpoint.
package api

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"

	"github.com/hamid/juzjourney/internal/llm"
	"github.com/hamid/juzjourney/internal/recite"
	"github.com/hamid/juzjourney/internal/store"
)

// Scorer grades a recitation clip against the correct ayah text.
// *recite.Scorer satisfies it.
type Scorer interface {
	Score(ctx context.Context, audio llm.Audio, correctAyah string) (*recite.Result, error)
}

// Config holds server configuration.
type Config struct {
	Addr string

	// RateLimit is the per-client request rate on the score route,
	// in requests per second. Zero disables limiting.
	RateLimit float64
	RateBurst int

	// MaxAudioBytes caps the uploaded clip size. Default: 10 MiB.
	MaxAudioBytes int64
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Addr:          ":8080",
		RateLimit:     1,
		RateBurst:     5,
		MaxAudioBytes: 10 << 20,
	}
}

// Server serves the scoring API.
type Server struct {
	echo    *echo.Echo
	scorer  Scorer
	events  store.EventRepo
	limiter *RateLimiter
	logger  *slog.Logger
	cfg     Config
}

// NewServer builds the HTTP server. events may be nil to skip recording
// recitation events.
func NewServer(cfg Config, scorer Scorer, events store.EventRepo, logger *slog.Logger) *Server {
	if cfg.MaxAudioBytes <= 0 {
		cfg.MaxAudioBytes = DefaultConfig().MaxAudioBytes
	}
	if logger == nil {
		logger = slog.Default()
	}

	s := &Server{
		scorer: scorer,
		events: events,
		logger: logger,
		cfg:    cfg,
	}
	if cfg.RateLimit > 0 {
		s.limiter = NewRateLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Use(middleware.Recover())
	e.Use(s.requestLogger)

	e.GET("/healthz", s.handleHealth)
	e.POST("/api/score", s.handleScore, s.rateLimit)

	s.echo = e
	return s
}

// Handler returns the underlying HTTP handler, for tests.
func (s *Server) Handler() http.Handler { return s.echo }

// Run starts the server and blocks until ctx is cancelled or the
// listener fails. Shutdown drains in-flight requests for up to 10s.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("scoring server listening", "addr", s.cfg.Addr)
		if err := s.echo.Start(s.cfg.Addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return s.echo.Shutdown(shutdownCtx)
	})

	return g.Wait()
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleScore(c echo.Context) error {
	file, err := c.FormFile("audio")
	correctAyah := c.FormValue("correctAyah")
	if err != nil || correctAyah == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "missing audio or ayah"})
	}

	if file.Size > s.cfg.MaxAudioBytes {
		return c.JSON(http.StatusRequestEntityTooLarge, map[string]string{"error": "audio too large"})
	}

	src, err := file.Open()
	if err != nil {
		return s.scoreFailed(c, fmt.Errorf("open upload: %w", err))
	}
	defer src.Close()

	data, err := io.ReadAll(io.LimitReader(src, s.cfg.MaxAudioBytes))
	if err != nil {
		return s.scoreFailed(c, fmt.Errorf("read upload: %w", err))
	}

	mimeType := file.Header.Get("Content-Type")
	if mimeType == "" {
		mimeType = "audio/webm"
	}

	result, err := s.scorer.Score(c.Request().Context(), llm.Audio{Data: data, MIMEType: mimeType}, correctAyah)
	if err != nil {
		return s.scoreFailed(c, err)
	}

	if s.events != nil {
		data := store.RecitationEventData{
			VerseID:    c.FormValue("verseId"),
			Score:      result.Score,
			Transcript: result.Transcript,
		}
		if err := s.events.AppendRecitation(c.Request().Context(), data); err != nil {
			s.logger.Warn("failed to record recitation event", "error", err)
		}
	}

	return c.JSON(http.StatusOK, result)
}

func (s *Server) scoreFailed(c echo.Context, err error) error {
	s.logger.Error("scoring failed", "error", err)
	return c.JSON(http.StatusInternalServerError, map[string]string{"error": "failed to process audio"})
}

func (s *Server) rateLimit(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if s.limiter != nil && !s.limiter.Allow(c.RealIP()) {
			return c.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		}
		return next(c)
	}
}

func (s *Server) requestLogger(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()
		err := next(c)
		s.logger.Info("request",
			"method", c.Request().Method,
			"path", c.Request().URL.Path,
			"status", c.Response().Status,
			"latency_ms", time.Since(start).Milliseconds(),
		)
		return err
	}
}
