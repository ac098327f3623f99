package http

import (
	"github.com/gin-gonic/gin"

	"ai-chatbot/internal/intent"
)

// processCreateReq binds and validates the create intent request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update intent request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	if req.ID == "" {
		return req, intent.ErrInvalidPayload
	}
	return req, req.validate()
}

// processAddPhraseReq binds the add phrase request body + intent URI param.
func (h *handler) processAddPhraseReq(c *gin.Context) (addPhraseReq, error) {
	var req addPhraseReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.IntentID = c.Param("id")
	if req.IntentID == "" {
		return req, intent.ErrInvalidPayload
	}
	return req, req.validate()
}
