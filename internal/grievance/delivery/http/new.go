package http

import (
	"github.com/gin-gonic/gin"

	"customer-care-assistant/internal/grievance"
	"customer-care-assistant/pkg/log"
)

// Handler is the public interface for the grievance HTTP delivery layer.
type Handler interface {
	Submit(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc grievance.UseCase
}

// New creates a new HTTP handler for the grievance domain.
func New(l log.Logger, uc grievance.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
