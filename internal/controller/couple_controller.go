package controller

import (
	"couple_coach_backend/internal/service"
	"couple_coach_backend/internal/util"
	"errors"
	"time"

	"github.com/gin-gonic/gin"
)

type CoupleController struct {
	CoupleService *service.CoupleService
	HealthService *service.HealthScoreService
}

func NewCoupleController(coupleService *service.CoupleService, healthService *service.HealthScoreService) *CoupleController {
	return &CoupleController{
		CoupleService: coupleService,
		HealthService: healthService,
	}
}

func coupleError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNotLinked):
		util.Error(ctx, 404, "no active partner link")
	case errors.Is(err, util.ErrAlreadyLinked):
		util.Conflict(ctx, "already linked with a partner")
	case errors.Is(err, util.ErrInviteNotFound):
		util.Error(ctx, 404, "invite code not found or already used")
	case errors.Is(err, util.ErrSelfInvite):
		util.BadRequest(ctx, "cannot accept your own invite")
	default:
		util.LogInternalError(ctx, err)
	}
}

// CreateInvite godoc
// @Summary Create a partner invite
// @Description Opens a pending link and returns the code the partner redeems
// @Tags couples
// @Produce  json
// @Security BearerAuth
// @Success 201 {object} util.Response{data=object}
// @Failure 409 {object} util.Response "Already linked"
// @Router /api/couples/invite [post]
func (c *CoupleController) CreateInvite(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	code, err := c.CoupleService.CreateInvite(claims.UserID)
	if err != nil {
		coupleError(ctx, err)
		return
	}

	util.Created(ctx, gin.H{"inviteCode": code})
}

// swagger:model AcceptInviteRequest
type AcceptInviteRequest struct {
	InviteCode string `json:"inviteCode" binding:"required"`
}

// AcceptInvite godoc
// @Summary Accept a partner invite
// @Tags couples
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body AcceptInviteRequest true "Invite code"
// @Success 200 {object} util.Response{data=model.Couple}
// @Failure 404 {object} util.Response "Invite not found"
// @Failure 409 {object} util.Response "Already linked"
// @Router /api/couples/accept [post]
func (c *CoupleController) AcceptInvite(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AcceptInviteRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	couple, err := c.CoupleService.AcceptInvite(claims.UserID, req.InviteCode)
	if err != nil {
		coupleError(ctx, err)
		return
	}

	util.Success(ctx, couple)
}

// GetCouple godoc
// @Summary Current couple with partner info
// @Tags couples
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=service.CoupleView}
// @Failure 404 {object} util.Response "Not linked"
// @Router /api/couples/me [get]
func (c *CoupleController) GetCouple(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	view, err := c.CoupleService.GetCoupleView(claims.UserID)
	if err != nil {
		coupleError(ctx, err)
		return
	}

	util.Success(ctx, view)
}

// swagger:model AnniversaryRequest
type AnniversaryRequest struct {
	Anniversary time.Time `json:"anniversary" binding:"required"`
}

// SetAnniversary godoc
// @Summary Set the couple's anniversary
// @Tags couples
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body AnniversaryRequest true "Anniversary date"
// @Success 200 {object} util.Response{data=model.Couple}
// @Router /api/couples/anniversary [put]
func (c *CoupleController) SetAnniversary(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req AnniversaryRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	couple, err := c.CoupleService.SetAnniversary(claims.UserID, req.Anniversary)
	if err != nil {
		coupleError(ctx, err)
		return
	}

	util.Success(ctx, couple)
}

// Unlink godoc
// @Summary End the partner link
// @Tags couples
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Not linked"
// @Router /api/couples/me [delete]
func (c *CoupleController) Unlink(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	if err := c.CoupleService.Unlink(claims.UserID); err != nil {
		coupleError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "link ended"})
}

// GetHealthScore godoc
// @Summary Recompute and return the relationship health score
// @Tags couples
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.HealthScore}
// @Failure 404 {object} util.Response "Not linked or not enough data"
// @Router /api/couples/health [get]
func (c *CoupleController) GetHealthScore(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	couple, err := c.CoupleService.ActiveCouple(claims.UserID)
	if err != nil {
		coupleError(ctx, err)
		return
	}

	score, err := c.HealthService.Compute(couple.ID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}
	if score == nil {
		util.Error(ctx, 404, "not enough data yet")
		return
	}

	util.Success(ctx, score)
}
