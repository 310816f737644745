// Package server exposes the converter over HTTP: an ICS overlay feed that
// calendar apps can subscribe to, a small JSON API and Prometheus metrics.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/five82/taqvim/internal/age"
	"github.com/five82/taqvim/internal/locale"
	"github.com/five82/taqvim/internal/state"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server.
type Options struct {
	Addr      string
	Store     *state.Store
	Localizer *locale.Localizer
	Logger    *zap.Logger
	Clock     age.Clock
}

// Server wires the echo router, validation and metrics together.
type Server struct {
	echo     *echo.Echo
	addr     string
	store    *state.Store
	loc      *locale.Localizer
	logger   *zap.Logger
	clock    age.Clock
	registry *prometheus.Registry
	feeds    *feedCache
}

// CustomValidator adapts validator/v10 to echo.Validator.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate validates a bound request struct.
func (cv *CustomValidator) Validate(i interface{}) error {
	if err := cv.validator.Struct(i); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return nil
}

// New builds a Server. A nil Store, Localizer, Logger or Clock gets a
// working default.
func New(opts Options) (*Server, error) {
	if opts.Store == nil {
		opts.Store = &state.Store{}
	}
	if opts.Logger == nil {
		opts.Logger = zap.NewNop()
	}
	if opts.Clock == nil {
		opts.Clock = age.RealClock{}
	}
	if opts.Localizer == nil {
		loc, err := locale.New(locale.DefaultLanguage)
		if err != nil {
			return nil, fmt.Errorf("server locale: %w", err)
		}
		opts.Localizer = loc
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = &CustomValidator{validator: validator.New()}

	s := &Server{
		echo:     e,
		addr:     opts.Addr,
		store:    opts.Store,
		loc:      opts.Localizer,
		logger:   opts.Logger,
		clock:    opts.Clock,
		registry: prometheus.NewRegistry(),
		feeds:    newFeedCache(),
	}
	e.HTTPErrorHandler = s.errorHandler

	s.setupMiddleware()
	s.setupMetrics()
	s.setupRoutes()
	return s, nil
}

// Handler returns the router, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

func (s *Server) setupMiddleware() {
	s.echo.Use(middleware.Recover())
	s.echo.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod:  true,
		LogURI:     true,
		LogStatus:  true,
		LogLatency: true,
		LogError:   true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				fields = append(fields, zap.Error(v.Error))
			}
			s.logger.Debug("request", fields...)
			return nil
		},
	}))
}

func (s *Server) setupRoutes() {
	s.echo.GET("/calendar.ics", s.handleCalendar)
	s.echo.HEAD("/calendar.ics", s.handleCalendar)

	api := s.echo.Group("/api")
	api.GET("/convert", s.handleConvert)
	api.GET("/today", s.handleToday)
}

// Start listens on the configured address until ctx is cancelled, then shuts
// down gracefully.
func (s *Server) Start(ctx context.Context) error {
	if s.addr == "" {
		return errors.New("listen address is required")
	}

	serverErr := make(chan error, 1)
	go func() {
		s.logger.Info("server listening", zap.String("addr", s.addr))
		if err := s.echo.Start(s.addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serverErr <- err
		}
		close(serverErr)
	}()

	select {
	case <-ctx.Done():
		s.logger.Info("server stopping")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := s.echo.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown server: %w", err)
		}
		return nil
	case err, ok := <-serverErr:
		if !ok {
			return nil
		}
		return fmt.Errorf("start server: %w", err)
	}
}

func (s *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	var msg interface{} = err.Error()

	var he *echo.HTTPError
	if errors.As(err, &he) {
		code = he.Code
		msg = he.Message
	}

	if code >= http.StatusInternalServerError {
		s.logger.Error("http error",
			zap.Error(err),
			zap.String("method", c.Request().Method),
			zap.String("uri", c.Request().RequestURI),
			zap.Int("status", code),
		)
	}

	if c.Response().Committed {
		return
	}
	if c.Request().Method == http.MethodHead {
		err = c.NoContent(code)
	} else {
		err = c.JSON(code, map[string]interface{}{
			"error": msg,
			"code":  code,
		})
	}
	if err != nil {
		s.logger.Error("write error response", zap.Error(err))
	}
}
