package routes

import (
	"hydration/controllers"
	"hydration/middleware"
	"hydration/services"
	"hydration/store"

	"github.com/gin-gonic/gin"
)

// Deps collects the explicitly constructed dependencies the routes
// hand to their controllers.
type Deps struct {
	Store       store.Store
	Records     *services.RecordService
	Intake      *services.IntakeService
	History     *services.HistoryService
	Leaderboard *services.LeaderboardService
	Profile     *services.ProfileService
}

func SetupRoutes(router *gin.RouterGroup, d Deps) {
	router.POST("/signup", controllers.Signup(d.Store))
	router.POST("/login", controllers.Login(d.Store))
	protected := router.Group("/")
	protected.Use(middleware.Authenticate())
	{
		// Current user
		protected.GET("/me", controllers.GetMe(d.Store))
		protected.PUT("/profile", controllers.UpdateProfile(d.Profile))

		// Hydration ledger
		protected.GET("/today", controllers.GetToday(d.Records))
		protected.POST("/intake", controllers.AddIntake(d.Intake))
		protected.GET("/history", controllers.GetHistory(d.History))
		protected.GET("/leaderboard", controllers.GetLeaderboard(d.Leaderboard))
	}
}
