package http

import (
	"github.com/gin-gonic/gin"

	"customer-care-assistant/internal/callanalysis"
	"customer-care-assistant/pkg/log"
)

// Handler is the public interface for the call-analysis HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
}

type handler struct {
	l  log.Logger
	uc callanalysis.UseCase
}

// New creates a new HTTP handler for the call-analysis domain.
func New(l log.Logger, uc callanalysis.UseCase) *handler {
	return &handler{
		l:  l,
		uc: uc,
	}
}
