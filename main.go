package main

import (
	"log"
	"os"

	"hydration/config"
	"hydration/helpers"
	"hydration/routes"
	"hydration/services"
	"hydration/store"

	"github.com/gin-gonic/gin"
)

func main() {

	log.Println("Starting application...")

	key := config.GenerateRandomKey()
	helpers.SetJWTKey(key)

	// Connect to mongoDB and wire the services explicitly; nothing
	// below holds a package-level client.
	client := config.ConnectDB()
	st := store.NewMongo(client, config.DatabaseName())

	weather := services.NewWeatherClient()
	records := services.NewRecordService(st, weather)
	streaks := services.NewStreakService(st)
	intake := services.NewIntakeService(st, streaks)
	history := services.NewHistoryService(st)
	leaderboard := services.NewLeaderboardService(st)
	profile := services.NewProfileService(st)

	// Init gin router
	r := gin.Default()
	api := r.Group("/api")
	routes.SetupRoutes(api, routes.Deps{
		Store:       st,
		Records:     records,
		Intake:      intake,
		History:     history,
		Leaderboard: leaderboard,
		Profile:     profile,
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	// Start the server
	log.Println("Server is running on http://localhost:" + port)
	r.Run(":" + port)
}
