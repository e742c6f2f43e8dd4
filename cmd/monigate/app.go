package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/monigate/monigate/config"
	"github.com/monigate/monigate/ctxutil"
	"github.com/monigate/monigate/handler"
	"github.com/monigate/monigate/logging/logger"
	"github.com/monigate/monigate/net/resp"
	"github.com/monigate/monigate/service"
	"github.com/monigate/monigate/version"
)

// App represents the main application.
type App struct {
	config  *config.Config
	logger  *logger.Logger
	handler *handler.Handler
	server  *http.Server
}

// NewApp loads configuration and wires the logger, services and handlers.
func NewApp(configPath string) (*App, func(), error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, err
	}

	log := logger.StdLogger()
	log.SetVersion(version.Version)
	logCleanup, err := log.Init(cfg.Logger)
	if err != nil {
		return nil, nil, err
	}

	svc, svcCleanup, err := service.New(cfg, log)
	if err != nil {
		logCleanup()
		return nil, nil, err
	}

	handler.RegisterValidations()

	app := &App{
		config:  cfg,
		logger:  log,
		handler: handler.New(svc, log),
	}
	cleanup := func() {
		svcCleanup()
		logCleanup()
	}
	return app, cleanup, nil
}

// Run starts the application server.
func (a *App) Run() error {
	if a.config.RunMode != "" {
		gin.SetMode(a.config.RunMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(a.traceMiddleware())
	router.Use(a.loggerMiddleware())

	a.handler.RegisterRoutes(router)

	router.GET("/health", func(c *gin.Context) {
		resp.Success(c.Writer, map[string]string{"status": "healthy"})
	})

	addr := a.config.Addr()
	a.server = &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	a.config.Watch(func(fresh *config.Config) {
		a.logger.Info(context.Background(), "configuration reloaded")
		a.config = fresh
	}, func(err error) {
		a.logger.Error(context.Background(), "configuration reload failed", "error", err)
	})

	go func() {
		a.logger.Info(context.Background(), "Starting server", "addr", addr)
		if err := a.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error(context.Background(), "Server failed", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	a.logger.Info(context.Background(), "Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := a.server.Shutdown(ctx); err != nil {
		a.logger.Error(context.Background(), "Server forced to shutdown", "error", err)
		return err
	}

	a.logger.Info(context.Background(), "Server exited")
	return nil
}

// traceMiddleware ensures every request carries a trace id.
func (a *App) traceMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, _ := ctxutil.EnsureTraceID(ctxutil.WithGinContext(c.Request.Context(), c))
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}

// loggerMiddleware creates a Gin middleware for request logging.
func (a *App) loggerMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		duration := time.Since(start)
		status := c.Writer.Status()

		a.logger.Info(c.Request.Context(), "HTTP request",
			"method", method,
			"path", path,
			"status", status,
			"duration", duration.String(),
			"ip", c.ClientIP(),
		)
	}
}
