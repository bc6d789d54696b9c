package controller

import (
	"couple_coach_backend/internal/service"
	"couple_coach_backend/internal/util"
	"encoding/json"
	"errors"

	"github.com/gin-gonic/gin"
)

type AssessmentController struct {
	AssessmentService *service.AssessmentService
}

func NewAssessmentController(assessmentService *service.AssessmentService) *AssessmentController {
	return &AssessmentController{AssessmentService: assessmentService}
}

// ListModules godoc
// @Summary List assessment modules
// @Description Returns the question modules with their questions and options
// @Tags assessments
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/assessments/modules [get]
func (c *AssessmentController) ListModules(ctx *gin.Context) {
	util.Success(ctx, c.AssessmentService.ListModules())
}

// GetModule godoc
// @Summary One assessment module
// @Tags assessments
// @Produce  json
// @Security BearerAuth
// @Param   moduleId path string true "Module id"
// @Success 200 {object} util.Response
// @Failure 404 {object} util.Response "Unknown module"
// @Router /api/assessments/modules/{moduleId} [get]
func (c *AssessmentController) GetModule(ctx *gin.Context) {
	module, err := c.AssessmentService.GetModule(ctx.Param("moduleId"))
	if err != nil {
		util.NotFound(ctx)
		return
	}
	util.Success(ctx, module)
}

// swagger:model SubmitAnswersRequest
type SubmitAnswersRequest struct {
	Answers json.RawMessage `json:"answers" binding:"required"`
}

// SubmitAnswers godoc
// @Summary Submit answers for a module
// @Description Parses and scores the answers; retakes overwrite the previous attempt
// @Tags assessments
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param   moduleId path string true "Module id"
// @Param   body body SubmitAnswersRequest true "Raw answer document"
// @Success 200 {object} util.Response{data=service.AssessmentResult}
// @Failure 400 {object} util.Response
// @Failure 404 {object} util.Response "Unknown module"
// @Router /api/assessments/modules/{moduleId}/answers [post]
func (c *AssessmentController) SubmitAnswers(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	var req SubmitAnswersRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, err.Error())
		return
	}

	result, err := c.AssessmentService.SubmitAnswers(claims.UserID, ctx.Param("moduleId"), req.Answers)
	if err != nil {
		if errors.Is(err, util.ErrUnknownModule) {
			util.NotFound(ctx)
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	util.Success(ctx, result)
}

// GetScores godoc
// @Summary Current user's module scores
// @Description Recomputed from stored answers against the current schema
// @Tags assessments
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/assessments/scores [get]
func (c *AssessmentController) GetScores(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	scores, err := c.AssessmentService.ModuleScores(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, scores)
}

// GetLoveLanguages godoc
// @Summary Ranked love languages
// @Tags assessments
// @Produce  json
// @Security BearerAuth
// @Success 200 {object} util.Response
// @Router /api/assessments/love-languages [get]
func (c *AssessmentController) GetLoveLanguages(ctx *gin.Context) {
	claims := util.GetUserFromContext(ctx)
	if claims == nil {
		util.Unauthorized(ctx)
		return
	}

	languages, err := c.AssessmentService.LoveLanguages(claims.UserID)
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	util.Success(ctx, gin.H{"loveLanguages": languages})
}
