package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"document-chatbot/internal/document"
	"document-chatbot/internal/model"
	"document-chatbot/pkg/response"
)

// Ingest godoc
// @Summary     Ingest documents
// @Description Splits the documents into chunks, embeds them and stores them for question answering.
// @Tags        Document
// @Accept      json
// @Produce     json
// @Param       body body ingestReq true "Documents to ingest"
// @Success     200 {object} ingestResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents [POST]
func (h *handler) Ingest(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processIngestReq(c)
	if err != nil {
		response.Error(c, err)
		return
	}

	output, err := h.uc.Ingest(ctx, model.Scope{}, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Ingest: %v", err)
		if errors.Is(err, document.ErrNoDocuments) || errors.Is(err, document.ErrEmptyContent) {
			response.Error(c, err)
			return
		}
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newIngestResp(output))
}

// Stats godoc
// @Summary     Document index stats
// @Description Reports how many chunks are currently indexed.
// @Tags        Document
// @Produce     json
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/documents/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx, model.Scope{})
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.InternalError(c, err)
		return
	}

	response.OK(c, h.newStatsResp(output))
}
