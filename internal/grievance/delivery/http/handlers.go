package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"customer-care-assistant/internal/grievance"
	pkgErrors "customer-care-assistant/pkg/errors"
	"customer-care-assistant/pkg/response"
)

// Submit godoc
// @Summary     Submit a grievance
// @Description Classifies the grievance, suggests one or more routing departments and assigns a priority.
// @Tags        Grievance
// @Accept      json
// @Produce     json
// @Param       body body submitReq true "Grievance"
// @Success     200  {object} submitResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/grievance_management/grievance [POST]
func (h *handler) Submit(c *gin.Context) {
	ctx := c.Request.Context()

	var req submitReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Classify(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Classify: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newSubmitResp(output))
}

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case grievance.ErrEmptyGrievance:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "grievance_text is required")
	default:
		return err
	}
}
