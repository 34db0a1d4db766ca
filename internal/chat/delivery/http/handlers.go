package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"document-chatbot/internal/chat"
	"document-chatbot/internal/model"
	"document-chatbot/pkg/response"
)

// SendMessage godoc
// @Summary     Send a chat message
// @Description Processes one user message: routes it to the appointment form or document QA and returns the reply.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendMessageReq true "Message"
// @Success     200 {object} sendMessageResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) SendMessage(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendMessageReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	sc := model.Scope{ConversationID: req.ConversationID}

	output, err := h.uc.Respond(ctx, sc, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Respond: %v", err)
		if errors.Is(err, chat.ErrEmptyMessage) || errors.Is(err, chat.ErrEmptyConversationID) {
			response.Error(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newSendMessageResp(output))
}
