package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	caDelivery "customer-care-assistant/internal/callanalysis/delivery/http"
	chatDelivery "customer-care-assistant/internal/chat/delivery/http"
	grievanceDelivery "customer-care-assistant/internal/grievance/delivery/http"
	"customer-care-assistant/internal/middleware"
	"customer-care-assistant/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	// Server
	gin         *gin.Engine
	l           log.Logger
	port        int
	mode        string
	environment string

	mw middleware.Middleware

	// Domains
	chatHandler      chatDelivery.Handler
	grievanceHandler grievanceDelivery.Handler
	callHandler      caDelivery.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      log.Logger
	Port        int
	Mode        string
	Environment string

	Middleware middleware.Middleware

	ChatHandler      chatDelivery.Handler
	GrievanceHandler grievanceDelivery.Handler
	CallHandler      caDelivery.Handler
}

// New creates a new HTTPServer instance.
func New(logger log.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:                logger,
		gin:              gin.New(),
		port:             cfg.Port,
		mode:             cfg.Mode,
		environment:      cfg.Environment,
		mw:               cfg.Middleware,
		chatHandler:      cfg.ChatHandler,
		grievanceHandler: cfg.GrievanceHandler,
		callHandler:      cfg.CallHandler,
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
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	if srv.grievanceHandler == nil {
		return errors.New("grievance handler is required")
	}
	if srv.callHandler == nil {
		return errors.New("call-analysis handler is required")
	}
	return nil
}
