package controller

import (
	"couple_coach_backend/internal/service"
	"couple_coach_backend/internal/util"
	"errors"
	"strconv"

	"github.com/gin-gonic/gin"
)

type TimelineController struct {
	TimelineService *service.TimelineService
}

func NewTimelineController(timelineService *service.TimelineService) *TimelineController {
	return &TimelineController{TimelineService: timelineService}
}

func timelineError(ctx *gin.Context, err error) {
	switch {
	case errors.Is(err, util.ErrNotLinked):
		util.Error(ctx, 404, "no active partner link")
	case errors.Is(err, util.ErrPermissionDenied):
		util.Forbidden(ctx)
	default:
		util.LogInternalError(ctx, err)
	}
}

// AddEvent godoc
// @Summary Add a timeline memory
// @Tags timeline
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.TimelineRequest true "Memory details"
// @Success 201 {object} util.Response{data=model.TimelineEvent}
// @Failure 404 {object} util.Response "Not linked"
// @Router /api/timeline [post]
func (c *TimelineController) AddEvent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.TimelineRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	event, err := c.TimelineService.AddEvent(claims.UserID, req)
	if err != nil {
		timelineError(ctx, err)
		return
	}

	util.Created(ctx, event)
}

// ListEvents godoc
// @Summary The couple's timeline, newest first
// @Tags timeline
// @Produce  json
// @Security BearerAuth
// @Param   page query int false "Page (default 1)"
// @Param   limit query int false "Page size (default 20)"
// @Success 200 {object} util.Response{data=util.PageResponse}
// @Failure 404 {object} util.Response "Not linked"
// @Router /api/timeline [get]
func (c *TimelineController) ListEvents(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	page, _ := strconv.Atoi(ctx.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(ctx.DefaultQuery("limit", "20"))

	events, total, err := c.TimelineService.ListEvents(claims.UserID, page, limit)
	if err != nil {
		timelineError(ctx, err)
		return
	}

	util.Success(ctx, util.PageResponse{
		List:  events,
		Total: total,
		Page:  page,
		Limit: limit,
	})
}

// AttachPhoto godoc
// @Summary Attach a photo to a timeline memory
// @Tags timeline
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   eventId path int true "Event id"
// @Param   file formData file true "Photo"
// @Success 200 {object} util.Response{data=model.TimelineEvent}
// @Router /api/timeline/{eventId}/photo [post]
func (c *TimelineController) AttachPhoto(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("eventId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid eventId")
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	defer file.Close()

	event, uploadErr := c.TimelineService.AttachPhoto(ctx.Request.Context(), claims.UserID, uint(id), header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if uploadErr != nil {
		timelineError(ctx, uploadErr)
		return
	}

	util.Success(ctx, event)
}

// DeleteEvent godoc
// @Summary Delete a timeline memory
// @Tags timeline
// @Produce  json
// @Security BearerAuth
// @Param   eventId path int true "Event id"
// @Success 200 {object} util.Response
// @Router /api/timeline/{eventId} [delete]
func (c *TimelineController) DeleteEvent(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	id, err := strconv.ParseUint(ctx.Param("eventId"), 10, 32)
	if err != nil {
		util.BadRequest(ctx, "invalid eventId")
		return
	}

	if err := c.TimelineService.DeleteEvent(claims.UserID, uint(id)); err != nil {
		timelineError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"message": "deleted"})
}
