package controller

import (
	"couple_coach_backend/internal/service"
	"couple_coach_backend/internal/util"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *service.UserService
}

func NewUserController(userService *service.UserService) *UserController {
	return &UserController{UserService: userService}
}

// UpdateProfile godoc
// @Summary Update account profile
// @Tags users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.ProfileUpdate true "Profile fields"
// @Success 200 {object} util.Response{data=model.User}
// @Failure 400 {object} util.Response
// @Router /api/users/profile [put]
func (c *UserController) UpdateProfile(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.ProfileUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	user, err := c.UserService.UpdateProfile(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, user)
}

// GetPreferences godoc
// @Summary Current user's preferences
// @Tags users
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response{data=model.UserPreference}
// @Router /api/users/preferences [get]
func (c *UserController) GetPreferences(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	pref, err := c.UserService.GetPreferences(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, pref)
}

// UpdatePreferences godoc
// @Summary Update preferences
// @Description Saves the self-described profile fields used as coaching fallbacks
// @Tags users
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   body body service.PreferenceUpdate true "Preference fields"
// @Success 200 {object} util.Response{data=model.UserPreference}
// @Failure 400 {object} util.Response
// @Router /api/users/preferences [put]
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req service.PreferenceUpdate
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	pref, err := c.UserService.UpdatePreferences(claims.UserID, req)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, pref)
}

// UploadAvatar godoc
// @Summary Upload an avatar image
// @Tags users
// @Accept  multipart/form-data
// @Produce  json
// @Security BearerAuth
// @Param   file formData file true "Avatar image"
// @Success 200 {object} util.Response{data=object}
// @Failure 400 {object} util.Response
// @Router /api/users/avatar [post]
func (c *UserController) UploadAvatar(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	file, header, err := ctx.Request.FormFile("file")
	if err != nil {
		util.BadRequest(ctx, "file is required")
		return
	}
	defer file.Close()

	url, err := c.UserService.UploadAvatar(ctx.Request.Context(), claims.UserID, header.Filename, file, header.Size, header.Header.Get("Content-Type"))
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"url": url})
}
