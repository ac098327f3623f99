package http

import (
	"github.com/gin-gonic/gin"

	"ai-chatbot/pkg/response"
)

// Send godoc
// @Summary     Send a chat message
// @Description Classifies the message and returns the bot's reply. Low-confidence
// @Description predictions get the fallback response.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       body body sendReq true "Message"
// @Success     200 {object} sendResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     503 {object} response.Resp "No model in service"
// @Router      /api/v1/chat/messages [POST]
func (h *handler) Send(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processSendReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Send(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Send: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newSendResp(output))
}

// Train godoc
// @Summary     Retrain the model
// @Description Rebuilds the classifier from the stored corpus and swaps it in.
// @Description On failure the previous model stays in service.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string true "Internal API key"
// @Success     200 {object} trainResp
// @Failure     401 {object} response.Resp "Unauthorized"
// @Failure     503 {object} response.Resp "Training failed"
// @Router      /api/v1/chat/train [POST]
func (h *handler) Train(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.Train(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.Train: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newTrainResp(output))
}

// Model godoc
// @Summary     Model info
// @Description Describes the model currently in service: labels, vocabulary size, trained-at.
// @Tags        Chat
// @Accept      json
// @Produce     json
// @Success     200 {object} modelResp
// @Router      /api/v1/chat/model [GET]
func (h *handler) Model(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.ModelInfo(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.ModelInfo: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newModelResp(output))
}
