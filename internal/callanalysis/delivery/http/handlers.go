package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"customer-care-assistant/internal/callanalysis"
	pkgErrors "customer-care-assistant/pkg/errors"
	"customer-care-assistant/pkg/response"
)

// Analyze godoc
// @Summary     Analyze a call transcript
// @Description Produces a summary, tag/entity list and overall sentiment for one call transcript.
// @Tags        CallAnalysis
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Transcript"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/call_analysis/call_nlp [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Analyze(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// mapError translates domain errors into HTTP errors.
func (h *handler) mapError(err error) error {
	switch err {
	case callanalysis.ErrEmptyTranscript:
		return pkgErrors.NewHTTPError(http.StatusBadRequest, "transcript_text is required")
	default:
		return err
	}
}
