package controller

import (
	"couple_coach_backend/internal/service"
	"couple_coach_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type FlirtController struct {
	FlirtService *service.FlirtService
}

func NewFlirtController(flirtService *service.FlirtService) *FlirtController {
	return &FlirtController{FlirtService: flirtService}
}

// SendFlirt godoc
// @Summary Send a flirt to the partner
// @Tags flirts
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.FlirtRequest true "Message and optional gif"
// @Success 201 {object} util.Response{data=model.Flirt}
// @Failure 404 {object} util.Response "Not linked"
// @Router /api/flirts [post]
func (c *FlirtController) SendFlirt(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.FlirtRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	flirt, err := c.FlirtService.SendFlirt(claims.UserID, req)
	if err != nil {
		if errors.Is(err, util.ErrNotLinked) {
			util.Error(ctx, 404, "no active partner link")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, flirt)
}

// ListFlirts godoc
// @Summary Recent flirts
// @Description Returns the couple's latest flirts and marks the caller's inbox seen
// @Tags flirts
// @Produce  json
// @Security BearerAuth
// @Param   limit query int false "Max results (default 20)"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Not linked"
// @Router /api/flirts [get]
func (c *FlirtController) ListFlirts(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))
	flirts, err := c.FlirtService.RecentFlirts(claims.UserID, limit)
	if err != nil {
		if errors.Is(err, util.ErrNotLinked) {
			util.Error(ctx, 404, "no active partner link")
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, flirts)
}
