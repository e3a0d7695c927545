package usecase

import (
	"customer-care-assistant/internal/gateway"
	pkgLog "customer-care-assistant/pkg/log"
)

type implUseCase struct {
	l  pkgLog.Logger
	gw gateway.Completer
}

// New creates a new call-analysis UseCase instance.
func New(l pkgLog.Logger, gw gateway.Completer) *implUseCase {
	return &implUseCase{
		l:  l,
		gw: gw,
	}
}
