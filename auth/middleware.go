package auth

import (
	"log"
	"net/http"
	"strings"

	"classroom-dashboard/models"
	"classroom-dashboard/store"

	"github.com/gin-gonic/gin"
)

const userContextKey = "current_user"

// TokenFromRequest extracts the session token from the request. The cookie
// is checked first, then the Authorization bearer header. Empty string means
// the request carries no token.
func TokenFromRequest(c *gin.Context) string {
	if token, err := c.Cookie(SessionCookie); err == nil && token != "" {
		return token
	}
	authHeader := c.GetHeader("Authorization")
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "Bearer") {
		return parts[1]
	}
	return ""
}

// CurrentUser resolves the request's session token to a user and attaches it
// to the context. A missing token, an unknown or expired session, or an
// orphaned session whose user no longer exists all leave the request
// anonymous; rejecting anonymous requests is the authorization layer's job.
func CurrentUser(users store.UserStore, sessions store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := TokenFromRequest(c)
		if token == "" {
			c.Next()
			return
		}

		session, err := sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			log.Println("SESSION RESOLVE ERROR:", err)
			c.Next()
			return
		}
		if session == nil {
			c.Next()
			return
		}

		user, err := users.GetByID(c.Request.Context(), session.UserID)
		if err != nil {
			log.Println("USER LOOKUP ERROR:", err)
			c.Next()
			return
		}
		if user == nil {
			c.Next()
			return
		}

		c.Set(userContextKey, user)
		c.Next()
	}
}

// UserFromContext returns the user resolved by CurrentUser, if any.
func UserFromContext(c *gin.Context) (*models.User, bool) {
	value, exists := c.Get(userContextKey)
	if !exists {
		return nil, false
	}
	user, ok := value.(*models.User)
	return user, ok
}

// RequireUser rejects anonymous requests with 401.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if _, ok := UserFromContext(c); !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireRole rejects anonymous requests with 401 and users whose role does
// not exactly match with 403. There is no role hierarchy.
func RequireRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			c.Abort()
			return
		}
		if user.Role != role {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied"})
			c.Abort()
			return
		}
		c.Next()
	}
}
