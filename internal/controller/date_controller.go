package controller

import (
	"couple_coach_backend/internal/model"
	"couple_coach_backend/internal/service"
	"couple_coach_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type DateController struct {
	DateService *service.DateService
}

func NewDateController(dateService *service.DateService) *DateController {
	return &DateController{DateService: dateService}
}

func dateError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNotLinked):
		util.Error(ctx, 404, "no active partner link")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

func dateID(ctx *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(ctx.Param("dateId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid dateId")
		return 0, false
	}
	return uint(id), true
}

// PlanDate godoc
// @Summary Plan a date
// @Tags dates
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.DateRequest true "Date details"
// @Success 201 {object} util.Response{data=model.DateEvent}
// @Failure 404 {object} util.Response "Not linked"
// @Router /api/dates [post]
func (c *DateController) PlanDate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.DateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.DateService.PlanDate(claims.UserID, req)
	if err != nil {
		dateError(ctx, err)
		return
	}

	util.Created(ctx, event)
}

// ListDates godoc
// @Summary List the couple's dates
// @Tags dates
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Not linked"
// @Router /api/dates [get]
func (c *DateController) ListDates(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	events, err := c.DateService.ListDates(claims.UserID)
	if err != nil {
		dateError(ctx, err)
		return
	}

	util.Success(ctx, events)
}

// UpdateDate godoc
// @Summary Update a planned date
// @Tags dates
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   dateId path int true "Date id"
// @Param   body body service.DateRequest true "Date details"
// @Success 200 {object} util.Response{data=model.DateEvent}
// @Router /api/dates/{dateId} [put]
func (c *DateController) UpdateDate(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := dateID(ctx)
	if !ok {
		return
	}

	var req service.DateRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.DateService.UpdateDate(claims.UserID, id, req)
	if err != nil {
		dateError(ctx, err)
		return
	}

	util.Success(ctx, event)
}

// SetStatus godoc
// @Summary Mark a date completed or cancelled
// @Tags dates
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   dateId path int true "Date id"
// @Param   status body string true "New status" Enums(planned, completed, cancelled)
// @Success 200 {object} util.Response{data=model.DateEvent}
// @Router /api/dates/{dateId}/status [patch]
func (c *DateController) SetStatus(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, ok := dateID(ctx)
	if !ok {
		return
	}

	var req struct {
		Status model.DateEventStatus `json:"status" binding:"required,oneof=planned completed cancelled"`
	}
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.DateService.SetStatus(claims.UserID, id, req.Status)
	if err != nil {
		dateError(ctx, err)
		return
	}

	util.Success(ctx, event)
}
