package usecase

import (
	"customer-care-assistant/internal/gateway"
	"customer-care-assistant/internal/speech"
	pkgLog "customer-care-assistant/pkg/log"
)

type implUseCase struct {
	l           pkgLog.Logger
	gw          gateway.Completer
	transcriber *speech.Transcriber
}

// New creates a new chat UseCase instance.
func New(l pkgLog.Logger, gw gateway.Completer, transcriber *speech.Transcriber) *implUseCase {
	return &implUseCase{
		l:           l,
		gw:          gw,
		transcriber: transcriber,
	}
}
