package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"hydration/models"
	"hydration/services"

	"github.com/gin-gonic/gin"
)

// AddIntake logs a drink for the current user and returns the day's
// new completion percentage.
func AddIntake(svc *services.IntakeService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Amount string `json:"amount"`
			Date   string `json:"date"` // optional YYYY-MM-DD, defaults to today
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid intake payload"})
			return
		}

		at := time.Now()
		if body.Date != "" {
			day, err := models.ParseDay(body.Date)
			if err != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			at = day.Time()
		}

		percentage, err := svc.AddIntake(userID, body.Amount, at)
		if err != nil {
			switch {
			case errors.Is(err, services.ErrInvalidAmount):
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			case errors.Is(err, services.ErrUserNotFound):
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			default:
				c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			}
			return
		}
		c.JSON(http.StatusOK, gin.H{"percentage": percentage})
	}
}

// GetToday returns today's record, creating it on first access. The
// device may pass its live position as lat/lon query parameters.
func GetToday(svc *services.RecordService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		var location *models.Location
		if latStr, lonStr := c.Query("lat"), c.Query("lon"); latStr != "" && lonStr != "" {
			lat, latErr := strconv.ParseFloat(latStr, 64)
			lon, lonErr := strconv.ParseFloat(lonStr, 64)
			if latErr != nil || lonErr != nil {
				c.JSON(http.StatusBadRequest, gin.H{"error": "lat and lon must be numbers"})
				return
			}
			location = &models.Location{Latitude: lat, Longitude: lon}
		}

		record, err := svc.EnsureDailyRecord(userID, models.DayOf(time.Now()), location)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, record)
	}
}

// GetHistory returns a gap-filled map of daily records for an
// inclusive date range.
func GetHistory(svc *services.HistoryService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		start, err := models.ParseDay(c.Query("start"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		end, err := models.ParseDay(c.Query("end"))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}

		history, err := svc.Range(userID, start, end)
		if err != nil {
			if errors.Is(err, services.ErrInvalidRange) {
				c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, history)
	}
}

// GetLeaderboard returns the top streaks and the caller's rank.
func GetLeaderboard(svc *services.LeaderboardService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}

		standings, err := svc.Standings(userID)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, standings)
	}
}

// UpdateProfile saves biometrics and settings and recomputes the daily
// goal from them.
func UpdateProfile(svc *services.ProfileService) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := getUserID(c)
		if userID == "" {
			return
		}
		var body struct {
			Profile  models.Profile  `json:"profile"`
			Settings models.Settings `json:"settings"`
		}
		if err := c.BindJSON(&body); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid profile payload"})
			return
		}
		if validationErr := validate.Struct(body.Profile); validationErr != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Error()})
			return
		}

		dailyGoal, err := svc.UpdateProfile(userID, body.Profile, body.Settings)
		if err != nil {
			if errors.Is(err, services.ErrUserNotFound) {
				c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
				return
			}
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":    "Profile updated successfully",
			"daily_goal": dailyGoal,
		})
	}
}
