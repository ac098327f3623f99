package http

import (
	"github.com/gin-gonic/gin"
)

// processSendReq binds and validates the chat message request body.
func (h *handler) processSendReq(c *gin.Context) (sendReq, error) {
	var req sendReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
