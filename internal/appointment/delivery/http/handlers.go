package http

import (
	"github.com/gin-gonic/gin"

	"document-chatbot/internal/model"
	"document-chatbot/pkg/response"
)

// List godoc
// @Summary     List recent appointments
// @Description Returns the most recently booked appointments, newest first.
// @Tags        Appointment
// @Produce     json
// @Param       limit query int false "Max number of results (default: 20)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/appointments [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.ListRecent(ctx, model.Scope{}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.ListRecent: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newListResp(output))
}
