package api

import (
	"net/http"

	"alcyxob/x3-tracker/internal/domain"
	"alcyxob/x3-tracker/internal/service"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	profileService service.ProfileService,
	workoutService service.WorkoutService,
	statsService service.StatsService,
	contentService service.ContentService,
) {

	authHandler := NewAuthHandler(authService)
	profileHandler := NewProfileHandler(profileService)
	workoutHandler := NewWorkoutHandler(workoutService)
	statsHandler := NewStatsHandler(statsService)
	contentHandler := NewContentHandler(contentService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	apiV1 := router.Group("/api/v1")
	{
		authGroup := apiV1.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}
	}

	protected := apiV1.Group("")
	protected.Use(authMiddleware)
	{
		protected.GET("/me", func(c *gin.Context) {
			userIDStr, err := getUserIDFromContext(c)
			if err != nil {
				abortWithError(c, http.StatusInternalServerError, "Failed to get user ID from token")
				return
			}
			tier, _ := getUserTierFromContext(c)
			c.JSON(http.StatusOK, gin.H{"userId": userIDStr, "tier": tier})
		})

		// --- Profile Routes ---
		profileGroup := protected.Group("/profile")
		{
			profileGroup.GET("", profileHandler.GetProfile)
			profileGroup.PUT("/start-date", profileHandler.SetStartDate)
			profileGroup.PUT("/timezone", profileHandler.UpdateTimezone)
			profileGroup.PUT("/tier", profileHandler.UpdateTier)
		}

		// --- Workout & Exercise Routes ---
		protected.GET("/workout/today", workoutHandler.GetToday)

		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.POST("", workoutHandler.LogExercise)
			exerciseGroup.GET("/:name/history", workoutHandler.GetExerciseHistory)
			exerciseGroup.GET("/:name/demo-video", contentHandler.GetDemoVideoURL)
		}

		// Calendar and stats are momentum-tier features.
		protected.GET("/calendar", TierMiddleware(domain.TierMomentum), workoutHandler.GetCalendar)
		protected.GET("/stats", TierMiddleware(domain.TierMomentum), statsHandler.GetStats)

		// Seeding demo clips is reserved for mastery accounts.
		protected.POST("/demo-videos/upload", TierMiddleware(domain.TierMastery), contentHandler.PrepareDemoVideoUpload)
	}
}
