package http

import (
	"github.com/gin-gonic/gin"
)

// processIngestReq binds and validates the ingest request body.
func (h *handler) processIngestReq(c *gin.Context) (ingestReq, error) {
	var req ingestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
