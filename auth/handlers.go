package auth

import (
	"errors"
	"log"
	"net/http"
	"time"

	"classroom-dashboard/store"

	"github.com/gin-gonic/gin"
)

const (
	SessionCookie = "session_token"
	SessionTTL    = 7 * 24 * time.Hour
)

// CreateSession handles POST /api/auth/session: it exchanges the opaque
// session id from the request body for a verified identity, upserts the
// user, persists the provider-minted token as a session and sets the
// session cookie.
func CreateSession(exchange *ExchangeClient, users store.UserStore, sessions store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		var body struct {
			SessionID string `json:"session_id"`
		}
		if err := c.ShouldBindJSON(&body); err != nil || body.SessionID == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "session_id required"})
			return
		}

		identity, err := exchange.Exchange(c.Request.Context(), body.SessionID)
		if err != nil {
			log.Println("EXCHANGE ERROR:", err)
			var exchangeErr *ExchangeError
			if errors.As(err, &exchangeErr) && exchangeErr.Transient {
				c.JSON(http.StatusBadGateway, gin.H{"error": "Identity provider unavailable"})
				return
			}
			c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session_id"})
			return
		}

		user, err := users.UpsertByEmail(c.Request.Context(), identity.Email, identity.Name, identity.Picture)
		if err != nil {
			log.Println("UPSERT USER ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
			return
		}

		if _, err := sessions.Create(c.Request.Context(), user.ID, identity.SessionToken, SessionTTL); err != nil {
			log.Println("SESSION INSERT ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		setSessionCookie(c, identity.SessionToken)
		c.JSON(http.StatusOK, gin.H{"user": user, "message": "Session created successfully"})
	}
}

// Me handles GET /api/auth/me. RequireUser runs before it, so the user is
// always present here.
func Me() gin.HandlerFunc {
	return func(c *gin.Context) {
		user, ok := UserFromContext(c)
		if !ok {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Not authenticated"})
			return
		}
		c.JSON(http.StatusOK, user)
	}
}

// Logout handles POST /api/auth/logout: revokes the session if the request
// carries a token and always clears the cookie. Revoking a missing or
// already-expired token is a no-op, so logout never fails.
func Logout(sessions store.SessionStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := TokenFromRequest(c); token != "" {
			if err := sessions.Revoke(c.Request.Context(), token); err != nil {
				log.Println("SESSION REVOKE ERROR:", err)
			}
		}
		clearSessionCookie(c)
		c.JSON(http.StatusOK, gin.H{"message": "Logged out successfully"})
	}
}

func setSessionCookie(c *gin.Context, token string) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookie, token, int(SessionTTL.Seconds()), "/", "", true, true)
}

func clearSessionCookie(c *gin.Context) {
	c.SetSameSite(http.SameSiteNoneMode)
	c.SetCookie(SessionCookie, "", -1, "/", "", true, true)
}
