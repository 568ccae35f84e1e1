package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	"day-planner/internal/task"
	"day-planner/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	rateLimitPerMin int
	ready           func() error

	// Day-planning domain
	taskUC task.UseCase

	// Remote reconciliation
	webhookHandler interface {
		HandleMemosWebhook(c *gin.Context)
	}
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	// RateLimitPerMin caps requests per client on the API group; 0 disables it.
	RateLimitPerMin int

	// Ready reports whether the service can take traffic; nil means always ready.
	Ready func() error

	// Day-planning domain
	TaskUseCase task.UseCase

	// Remote reconciliation
	WebhookHandler interface {
		HandleMemosWebhook(c *gin.Context)
	}
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		rateLimitPerMin: cfg.RateLimitPerMin,
		ready:           cfg.Ready,
		taskUC:          cfg.TaskUseCase,
		webhookHandler:  cfg.WebhookHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.taskUC == nil {
		return errors.New("task usecase is required")
	}
	if srv.rateLimitPerMin < 0 {
		return errors.New("rate limit must not be negative")
	}
	return nil
}
