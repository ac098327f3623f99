package http

import (
	"github.com/gin-gonic/gin"

	"ai-chatbot/pkg/response"
)

// List godoc
// @Summary     List conversations
// @Description Returns a paginated page of the conversation log, newest first.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string true  "Internal API key"
// @Param       intent         query  string false "Filter by predicted intent"
// @Param       channel        query  string false "Filter by channel (http/telegram/cli)"
// @Param       limit          query  int    false "Page size (default: 20)"
// @Param       offset         query  int    false "Page offset (default: 0)"
// @Success     200 {object} listResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processListReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.List(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Stats godoc
// @Summary     Conversation stats
// @Description Aggregates the log: total exchanges, mean confidence, per-intent counts and fallback rate.
// @Tags        Conversation
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string true "Internal API key"
// @Success     200 {object} statsResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/conversations/stats [GET]
func (h *handler) Stats(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Stats(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Stats: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newStatsResp(output))
}
