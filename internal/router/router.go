package router

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/onehub-dev/onehub/internal/handlers"
	"github.com/onehub-dev/onehub/internal/middleware"
	"github.com/onehub-dev/onehub/internal/types"
)

func NewRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     types.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "HEAD", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Length", "Content-Type", "Authorization", "Accept", "X-Requested-With"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		api.GET("/health", handlers.HealthCheck)

		auth := api.Group("/auth")
		{
			auth.POST("/register", handlers.CreateUser)
			auth.POST("/login", handlers.LoginUser)
			auth.GET("/me", middleware.AuthMiddleware(), handlers.Me)
			auth.PATCH("/me", middleware.AuthMiddleware(), handlers.UpdateUser)
			auth.DELETE("/me", middleware.AuthMiddleware(), handlers.DeleteUser)
		}

		authed := api.Group("", middleware.AuthMiddleware())
		{
			authed.GET("/preferences", handlers.GetPreferences)
			authed.POST("/preferences", handlers.SavePreferences)
			authed.PUT("/preferences/:category", handlers.UpdatePreferenceCategory)

			authed.GET("/news", handlers.GetNews)
			authed.GET("/news/trending", handlers.GetTrendingNews)
			authed.GET("/news/search", handlers.SearchNews)

			authed.GET("/jobs", handlers.GetJobs)
			authed.GET("/jobs/trending", handlers.GetTrendingJobs)
			authed.GET("/jobs/search", handlers.SearchJobs)

			authed.GET("/videos", handlers.GetVideos)

			authed.GET("/reddit", handlers.GetRedditPosts)
			authed.GET("/reddit/trending", handlers.GetTrendingReddit)

			authed.GET("/deals", handlers.GetDeals)
			authed.GET("/food", handlers.GetFood)
			authed.GET("/movies", handlers.GetMovies)
			authed.GET("/recommendations", handlers.GetRecommendations)

			authed.GET("/weather", handlers.GetWeather)
			authed.GET("/crypto", handlers.GetCrypto)

			authed.GET("/recipes", handlers.GetRecipes)
			authed.POST("/recipe-request", handlers.SubmitRecipeRequest)

			authed.GET("/dashboard", handlers.GetDashboard)
		}
	}

	return r
}
