package app

import (
	"couple_coach_backend/docs"
	"couple_coach_backend/internal/config"
	"couple_coach_backend/internal/middleware"
	"couple_coach_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers, repos *repositories, cfg *config.Config) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// Public routes, no login required.
	public := router.Group("/api")
	{
		public.GET("/health", c.health.HealthCheck)
		public.POST("/register", c.auth.Register)
		public.POST("/login", c.auth.Login)
	}

	// Everything else needs a token.
	authGroup := router.Group("/api")
	authGroup.Use(middleware.AuthMiddleware(cfg), middleware.ActivityMiddleware(repos.user))
	{
		authGroup.GET("/profile", c.auth.GetProfile)
		authGroup.PUT("/users/profile", c.user.UpdateProfile)
		authGroup.GET("/users/preferences", c.user.GetPreferences)
		authGroup.PUT("/users/preferences", c.user.UpdatePreferences)
		authGroup.POST("/users/avatar", c.user.UploadAvatar)

		authGroup.GET("/dashboard", c.dashboard.GetDashboard)

		// Couple linking
		couples := authGroup.Group("/couples")
		{
			couples.POST("/invite", c.couple.CreateInvite)
			couples.POST("/accept", c.couple.AcceptInvite)
			couples.GET("/me", c.couple.GetCouple)
			couples.DELETE("/me", c.couple.Unlink)
			couples.PUT("/anniversary", c.couple.SetAnniversary)
			couples.GET("/health", c.couple.GetHealthScore)
		}

		// Assessments
		assessments := authGroup.Group("/assessments")
		{
			assessments.GET("/modules", c.assessment.ListModules)
			assessments.GET("/modules/:moduleId", c.assessment.GetModule)
			assessments.POST("/modules/:moduleId/answers", c.assessment.SubmitAnswers)
			assessments.GET("/scores", c.assessment.GetScores)
			assessments.GET("/love-languages", c.assessment.GetLoveLanguages)
		}

		// Daily check-ins
		checkins := authGroup.Group("/checkins")
		{
			checkins.GET("", c.checkin.GetHistory)
			checkins.POST("", c.checkin.Submit)
			checkins.GET("/today", c.checkin.GetToday)
			checkins.GET("/streak", c.checkin.GetStreak)
			checkins.GET("/patterns", c.checkin.GetPatterns)
		}

		// AI coach
		coach := authGroup.Group("/coach")
		{
			coach.GET("/context", c.coach.GetContext)
			coach.POST("/chat", c.coach.Chat)
			coach.POST("/chat/stream", c.coach.ChatStream)
		}

		// Dates
		dates := authGroup.Group("/dates")
		{
			dates.GET("", c.date.ListDates)
			dates.POST("", c.date.PlanDate)
			dates.PUT("/:dateId", c.date.UpdateDate)
			dates.PATCH("/:dateId/status", c.date.SetStatus)
		}

		// Flirts
		flirts := authGroup.Group("/flirts")
		{
			flirts.GET("", c.flirt.ListFlirts)
			flirts.POST("", c.flirt.SendFlirt)
		}

		// Timeline
		timeline := authGroup.Group("/timeline")
		{
			timeline.GET("", c.timeline.ListEvents)
			timeline.POST("", c.timeline.AddEvent)
			timeline.POST("/:eventId/photo", c.timeline.AttachPhoto)
			timeline.DELETE("/:eventId", c.timeline.DeleteEvent)
		}
	}
}
