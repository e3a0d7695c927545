package http

import (
	"net/http"

	"customer-care-assistant/internal/chat"
	pkgErrors "customer-care-assistant/pkg/errors"
)

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case chat.ErrEmptyMessage:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "message is required")
	default:
		return err
	}
}
