package services

import (
	"log"
	"net/http"

	"classroom-dashboard/auth"

	"github.com/gin-gonic/gin"
)

// Progress handles GET /api/dashboard/progress.
func Progress(provider ClassroomDataProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := auth.UserFromContext(c)
		summaries, err := provider.Progress(c.Request.Context(), user)
		if err != nil {
			log.Println("PROGRESS ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch progress"})
			return
		}
		c.JSON(http.StatusOK, summaries)
	}
}

// Metrics handles GET /api/dashboard/metrics.
func Metrics(provider ClassroomDataProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := auth.UserFromContext(c)
		metrics, err := provider.Metrics(c.Request.Context(), user)
		if err != nil {
			log.Println("METRICS ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch metrics"})
			return
		}
		c.JSON(http.StatusOK, metrics)
	}
}

// Classrooms handles GET /api/classrooms.
func Classrooms(provider ClassroomDataProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := auth.UserFromContext(c)
		classrooms, err := provider.Classrooms(c.Request.Context(), user)
		if err != nil {
			log.Println("CLASSROOMS ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch classrooms"})
			return
		}
		c.JSON(http.StatusOK, classrooms)
	}
}

// Notifications handles GET /api/notifications.
func Notifications(provider ClassroomDataProvider) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, _ := auth.UserFromContext(c)
		notifications, err := provider.Notifications(c.Request.Context(), user)
		if err != nil {
			log.Println("NOTIFICATIONS ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch notifications"})
			return
		}
		c.JSON(http.StatusOK, notifications)
	}
}
