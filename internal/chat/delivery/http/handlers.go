package http

import (
	"github.com/gin-gonic/gin"

	"customer-care-assistant/pkg/response"
)

// Chat godoc
// @Summary     Chat with the assistant
// @Description Runs one chat turn: sentiment detection, intent recognition, adaptive reply generation and auto-escalation prediction. Supports simulated voice input.
// @Tags        Chatbot
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "Chat message"
// @Success     200  {object} chatResp
// @Failure     400  {object} response.Resp "Bad Request"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chatbot/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Process(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Process: %v", err)
		response.Error(c, h.mapError(err))
		return
	}

	response.OK(c, h.newChatResp(output))
}
