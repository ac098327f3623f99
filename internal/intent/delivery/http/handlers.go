package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ai-chatbot/pkg/response"
)

// Create godoc
// @Summary     Create a new intent
// @Description Creates a new intent with its canned responses and optional initial training phrases.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string    true "Internal API key"
// @Param       body           body   createReq true "Intent data"
// @Success     200 {object} createResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Create(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Create: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newCreateResp(output))
}

// List godoc
// @Summary     List intents
// @Description Returns every registered intent with its canned responses.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string true "Internal API key"
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	output, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(output))
}

// Detail godoc
// @Summary     Get intent detail
// @Description Returns a single intent and its training phrases.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string true "Internal API key"
// @Param       id             path   string true "Intent ID"
// @Success     200 {object} detailResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	output, err := h.uc.Detail(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Detail: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newDetailResp(output))
}

// Update godoc
// @Summary     Update an intent
// @Description Updates an existing intent. All fields are optional (partial update).
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string    true "Internal API key"
// @Param       id             path   string    true "Intent ID"
// @Param       body           body   updateReq true "Fields to update"
// @Success     200 {object} updateResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - name already exists"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.Update(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Update: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newUpdateResp(output))
}

// Delete godoc
// @Summary     Delete an intent
// @Description Permanently removes an intent and its training phrases.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string true "Internal API key"
// @Param       id             path   string true "Intent ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}

// AddPhrase godoc
// @Summary     Add a training phrase
// @Description Attaches a new training phrase to an existing intent.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string       true "Internal API key"
// @Param       id             path   string       true "Intent ID"
// @Param       body           body   addPhraseReq true "Phrase data"
// @Success     200 {object} addPhraseResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/intents/{id}/phrases [POST]
func (h *handler) AddPhrase(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processAddPhraseReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	output, err := h.uc.AddPhrase(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.AddPhrase: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newAddPhraseResp(output))
}

// DeletePhrase godoc
// @Summary     Delete a training phrase
// @Description Removes a single training phrase by ID.
// @Tags        Intent
// @Accept      json
// @Produce     json
// @Param       X-Internal-Key header string true "Internal API key"
// @Param       id             path   string true "Phrase ID"
// @Success     200 {object} response.Resp "OK"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/phrases/{id} [DELETE]
func (h *handler) DeletePhrase(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.DeletePhrase(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.DeletePhrase: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, nil)
}
