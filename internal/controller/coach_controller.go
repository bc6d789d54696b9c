package controller

import (
	"couple_coach_backend/internal/service"
	"couple_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type CoachController struct {
	CoachService *service.CoachService
}

func NewCoachController(coachService *service.CoachService) *CoachController {
	return &CoachController{CoachService: coachService}
}

// GetContext godoc
// @Summary The assembled coaching context
// @Description The derived context document the coach sees, for the client's insight views
// @Tags coach
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/coach/context [get]
func (c *CoachController) GetContext(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	coachCtx, err := c.CoachService.Context(ctx.Request.Context(), claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, coachCtx)
}

// swagger:model CoachChatRequest
type CoachChatRequest struct {
	Message string                  `json:"message" binding:"required"`
	History []service.AIChatMessage `json:"history"`
}

// Chat godoc
// @Summary Ask the AI coach
// @Description Single-shot chat with the relationship context injected
// @Tags coach
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body CoachChatRequest true "Message and optional history"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/coach/chat [post]
func (c *CoachController) Chat(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CoachChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	reply, err := c.CoachService.Chat(ctx.Request.Context(), claims.UserID, req.Message, req.History)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"reply": reply})
}

// ChatStream godoc
// @Summary Ask the AI coach (streaming)
// @Description Server-sent events; tokens arrive as "message" events
// @Tags coach
// @Accept  json
// @Produce  text/event-stream
// @Security BearerAuth
// @Param   body body CoachChatRequest true "Message and optional history"
// @Success 200 {string} string "SSE stream"
// @Router /api/coach/chat/stream [post]
func (c *CoachController) ChatStream(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req CoachChatRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	stream, errChan, err := c.CoachService.ChatStream(ctx.Request.Context(), claims.UserID, req.Message, req.History)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
	ctx.Header("Transfer-Encoding", "chunked")

	for content := range stream {
		ctx.SSEvent("message", content)
		ctx.Writer.Flush()
	}

	if err := <-errChan; err != nil {
		ctx.SSEvent("error", err.Error())
		ctx.Writer.Flush()
	}

	ctx.SSEvent("end", "done")
	ctx.Writer.Flush()
}
