package api

import (
	"alcyxob/fittrack/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRoutes(
	router *gin.Engine,
	jwtSecret string,
	authService service.AuthService,
	nutritionService service.NutritionService,
	workoutService service.WorkoutService,
	photoService service.PhotoService,
) {
	authHandler := NewAuthHandler(authService)
	mealHandler := NewMealHandler(nutritionService, photoService)
	exerciseHandler := NewExerciseHandler(workoutService)
	workoutHandler := NewWorkoutHandler(workoutService)

	authMiddleware := AuthMiddleware(jwtSecret)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

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
		protected.GET("/me", authHandler.Me)

		// --- Nutrition ---
		protected.GET("/foods/search", mealHandler.SearchFood)
		protected.GET("/dashboard", mealHandler.GetDashboard)
		mealGroup := protected.Group("/meals")
		{
			mealGroup.POST("", mealHandler.AddMeal)
			mealGroup.GET("", mealHandler.GetDailyLog)
			mealGroup.POST("/photos", mealHandler.RequestPhotoUpload)
			mealGroup.GET("/photos/url", mealHandler.GetPhotoURL)
		}

		// --- Workouts ---
		exerciseGroup := protected.Group("/exercises")
		{
			exerciseGroup.GET("", exerciseHandler.GetCatalog)
			exerciseGroup.GET("/muscles", exerciseHandler.GetMuscleGroups)
		}
		workoutGroup := protected.Group("/workouts")
		{
			workoutGroup.POST("", workoutHandler.LogWorkout)
			workoutGroup.GET("/history", workoutHandler.GetHistory)
		}
	}
}
