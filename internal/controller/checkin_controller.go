package controller

import (
	"couple_coach_backend/internal/insight"
	"couple_coach_backend/internal/service"
	"couple_coach_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type CheckInController struct {
	CheckInService *service.CheckInService
}

func NewCheckInController(checkInService *service.CheckInService) *CheckInController {
	return &CheckInController{CheckInService: checkInService}
}

// GetToday godoc
// @Summary Today's check-in state
// @Description The rotating daily question plus whether the user already checked in
// @Tags checkins
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/checkins/today [get]
func (c *CheckInController) GetToday(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	streak, _ := c.CheckInService.Streak(claims.UserID, insight.AnchorYesterday)

	util.Success(ctx, gin.H{
		"question": c.CheckInService.TodayQuestion(ctx.Request.Context()),
		"streak":   streak,
	})
}

// Submit godoc
// @Summary Submit today's check-in
// @Description One check-in per user per day
// @Tags checkins
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.CheckInRequest true "Mood and connection"
// @Success 201 {object} util.Response{data=model.CheckIn}
// @Failure 400 {object} util.Response
// @Failure 409 {object} util.Response "Already checked in today"
// @Router /api/checkins [post]
func (c *CheckInController) Submit(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.CheckInRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	checkin, err := c.CheckInService.SubmitCheckIn(ctx.Request.Context(), claims.UserID, req)
	if err != nil {
		switch {
		case errors.Is(err, util.ErrAlreadyCheckedIn):
			util.Conflict(ctx, "already checked in today")
		case errors.Is(err, util.ErrInvalidCheckIn):
			util.BadRequest(ctx, err.Error())
		default:
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Created(ctx, checkin)
}

// GetHistory godoc
// @Summary Check-in history
// @Tags checkins
// @Produce  json
// @Security BearerAuth
// @Param   days query int false "Window in days (default 30)"
// @Success 200 {object} util.Response
// @Router /api/checkins [get]
func (c *CheckInController) GetHistory(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "30"))
	history, err := c.CheckInService.History(claims.UserID, days)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, history)
}

// GetPatterns godoc
// @Summary Pattern analysis of the recent check-in window
// @Tags checkins
// @Produce  json
// @Security BearerAuth
// @Param   days query int false "Window in days (default 14)"
// @Success 200 {object} util.Response
// @Router /api/checkins/patterns [get]
func (c *CheckInController) GetPatterns(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	days, _ := strconv.Atoi(ctx.DefaultQuery("days", "0"))
	report, err := c.CheckInService.Report(claims.UserID, days)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, report)
}

// GetStreak godoc
// @Summary Current check-in streak
// @Description strict=true requires a check-in today for the streak to count
// @Tags checkins
// @Produce  json
// @Security BearerAuth
// @Param   strict query bool false "Require today's check-in"
// @Success 200 {object} util.Response
// @Router /api/checkins/streak [get]
func (c *CheckInController) GetStreak(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	anchor := insight.AnchorYesterday
	if ctx.Query("strict") == "true" {
		anchor = insight.AnchorToday
	}

	streak, err := c.CheckInService.Streak(claims.UserID, anchor)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"streak": streak})
}
