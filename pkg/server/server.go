// Package server exposes the rule builder over HTTP so a browser page can
// drive it. One Builder is shared by all requests.
package server

import (
	"context"
	stderrors "errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/arthur-debert/pdarules/pkg/builder"
	"github.com/arthur-debert/pdarules/pkg/errors"
	"github.com/arthur-debert/pdarules/pkg/export"
	"github.com/arthur-debert/pdarules/pkg/logging"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

const shutdownTimeout = 5 * time.Second

// Server serialises access to a Builder
type Server struct {
	mu       sync.Mutex
	builder  *builder.Builder
	fileName string
	logger   zerolog.Logger
}

// Options configures a Server
type Options struct {
	Builder *builder.Builder
	// FileName is suggested to browsers downloading the transcript
	FileName string
}

// New creates a Server
func New(opts Options) *Server {
	b := opts.Builder
	if b == nil {
		b = builder.New(builder.Options{})
	}
	name := opts.FileName
	if name == "" {
		name = export.DefaultFileName
	}
	return &Server{
		builder:  b,
		fileName: name,
		logger:   logging.GetLogger("server"),
	}
}

// Router builds the gin engine
func (s *Server) Router() *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), s.requestLogger())

	api := r.Group("/api")
	{
		api.GET("/catalog", s.getCatalog)

		api.GET("/draft", s.getDraft)
		api.PUT("/draft", s.putDraft)
		api.PUT("/draft/:field", s.updateDraftField)

		api.GET("/preview", s.getPreview)

		api.GET("/rules", s.listRules)
		api.POST("/rules", s.commitRule)
		api.DELETE("/rules", s.clearRules)

		api.GET("/transcript", s.getTranscript)

		api.POST("/format", s.formatDraft)
	}

	return r
}

// ListenAndServe listens on addr and serves until ctx is cancelled
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return errors.Wrapf(err, errors.ErrInternal, "cannot listen on %s", addr).WithDetail("addr", addr)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is cancelled, then shuts down gracefully
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.logger.Info().Str("addr", ln.Addr().String()).Msg("HTTP API listening")
		if err := srv.Serve(ln); err != nil && !stderrors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		s.logger.Info().Msg("Shutting down HTTP API")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// requestLogger logs requests through zerolog
func (s *Server) requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()
		s.logger.Debug().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("duration", time.Since(start)).
			Msg("Request")
	}
}

// withBuilder runs fn holding the builder lock
func (s *Server) withBuilder(fn func(b *builder.Builder)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	fn(s.builder)
}

type errorBody struct {
	Code    errors.ErrorCode       `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrIncompleteDraft:
		return http.StatusUnprocessableEntity
	case errors.ErrInvalidInput, errors.ErrUnknownField:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) fail(c *gin.Context, err error) {
	code := errors.GetErrorCode(err)
	body := errorBody{Code: code, Message: err.Error()}
	var pe *errors.PdaError
	if stderrors.As(err, &pe) {
		body.Message = pe.Message
		if len(pe.Details) > 0 {
			body.Details = pe.Details
		}
	}
	status := statusFor(code)
	if status >= http.StatusInternalServerError {
		s.logger.Error().Err(err).Str("path", c.Request.URL.Path).Msg("Request failed")
	}
	c.AbortWithStatusJSON(status, body)
}
