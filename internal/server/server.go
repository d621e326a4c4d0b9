package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/backend"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/config"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/handlers"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/logger"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/metrics"
	"github.com/Benjamindaoson/agentic-delivery-os-sub001/internal/poller"
)

// ConsoleServer hosts the console API on top of the poll manager.
type ConsoleServer struct {
	cfg     *config.Config
	engine  *gin.Engine
	manager *poller.Manager
	client  *backend.Client
	httpSrv *http.Server
}

// NewConsoleServer wires the backend client, the poll manager, metrics, and
// the route table.
func NewConsoleServer(cfg *config.Config) (*ConsoleServer, error) {
	if cfg == nil {
		return nil, fmt.Errorf("nil config")
	}

	client := backend.NewClient(cfg.Backend.BaseURL, cfg.Backend.Token, cfg.Backend.Timeout)

	registry := prometheus.NewRegistry()
	recorder, err := metrics.NewRecorder(registry)
	if err != nil {
		return nil, fmt.Errorf("init metrics: %w", err)
	}

	manager := poller.NewManager(client, recorder, cfg.Polling.Interval, 0)

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &ConsoleServer{
		cfg:     cfg,
		engine:  engine,
		manager: manager,
		client:  client,
	}
	s.registerRoutes(registry)
	return s, nil
}

func (s *ConsoleServer) registerRoutes(registry *prometheus.Registry) {
	s.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	s.engine.GET("/metrics", metrics.Handler(registry))

	ui := s.engine.Group("/api/ui/v1")
	{
		ui.GET("/tasks/:task_id/status", handlers.GetTaskStatusHandler(s.manager))
		ui.GET("/tasks/:task_id/events", handlers.GetTaskEventsHandler(s.manager))
		ui.GET("/tasks/:task_id/evidence", handlers.GetTaskEvidenceHandler(s.manager))
		ui.GET("/tasks/:task_id/counterfactuals", handlers.GetTaskCounterfactualsHandler(s.manager))
		ui.GET("/tasks/:task_id/tools", handlers.GetTaskToolExecutionsHandler(s.manager))
		ui.POST("/tasks/:task_id/resume", handlers.ResumeTaskHandler(s.client))
	}
}

// Engine exposes the router for tests.
func (s *ConsoleServer) Engine() *gin.Engine {
	return s.engine
}

// Start serves until Shutdown is called.
func (s *ConsoleServer) Start() error {
	addr := fmt.Sprintf(":%d", s.cfg.Console.Port)
	s.httpSrv = &http.Server{
		Addr:         addr,
		Handler:      s.engine,
		ReadTimeout:  s.cfg.Console.RequestTimeout,
		WriteTimeout: s.cfg.Console.RequestTimeout,
	}

	logger.Logger.Info().Str("addr", addr).Msg("console server listening")
	if err := s.httpSrv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("serve: %w", err)
	}
	return nil
}

// Shutdown stops the HTTP server and cancels every refresh loop.
func (s *ConsoleServer) Shutdown(ctx context.Context) error {
	s.manager.Stop()
	if s.httpSrv == nil {
		return nil
	}
	shutdownCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	return s.httpSrv.Shutdown(shutdownCtx)
}
