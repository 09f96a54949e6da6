package services

import (
	"errors"
	"log"
	"net/http"

	"classroom-dashboard/store"

	"github.com/gin-gonic/gin"
)

// ListUsers handles GET /api/users. The coordinator gate runs in middleware.
func ListUsers(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := users.List(c.Request.Context())
		if err != nil {
			log.Println("LIST USERS ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch users"})
			return
		}
		c.JSON(http.StatusOK, list)
	}
}

// UpdateUserRole handles PUT /api/users/:user_id/role?role=...
func UpdateUserRole(users store.UserStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		userID := c.Param("user_id")
		role := c.Query("role")

		err := users.UpdateRole(c.Request.Context(), userID, role)
		switch {
		case errors.Is(err, store.ErrInvalidRole):
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid role"})
		case errors.Is(err, store.ErrNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		case err != nil:
			log.Println("UPDATE ROLE ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update role"})
		default:
			c.JSON(http.StatusOK, gin.H{"message": "Role updated successfully"})
		}
	}
}
