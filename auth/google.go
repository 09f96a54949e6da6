package auth

import (
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"classroom-dashboard/store"

	"github.com/gin-gonic/gin"
	"golang.org/x/oauth2"
)

var GoogleOauthConfig *oauth2.Config

// GoogleLogin redirects the browser to the Google consent screen with a
// random state value stored in a short-lived cookie.
func GoogleLogin(c *gin.Context) {
	state := generateStateOauthCookie(c)
	url := GoogleOauthConfig.AuthCodeURL(state, oauth2.AccessTypeOffline, oauth2.SetAuthURLParam("prompt", "consent select_account"))
	c.Redirect(http.StatusTemporaryRedirect, url)
}

// GoogleCallback completes the OAuth code exchange, upserts the user and
// mints an app JWT that is stored as a regular session token, so the rest of
// the stack treats Google logins exactly like exchanged identity sessions.
func GoogleCallback(users store.UserStore, sessions store.SessionStore, frontendURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		state := c.Query("state")
		cookie, err := c.Cookie("oauthstate")
		if err != nil || state != cookie {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid state parameter"})
			return
		}

		code := c.Query("code")
		if code == "" {
			c.JSON(http.StatusBadRequest, gin.H{"error": "Missing code parameter"})
			return
		}

		token, err := GoogleOauthConfig.Exchange(c.Request.Context(), code)
		if err != nil {
			log.Println("TOKEN EXCHANGE ERROR:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to exchange token"})
			return
		}

		req, err := http.NewRequestWithContext(c.Request.Context(), http.MethodGet, "https://www.googleapis.com/oauth2/v3/userinfo", nil)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create user info request"})
			return
		}
		req.Header.Set("Authorization", "Bearer "+token.AccessToken)
		resp, err := http.DefaultClient.Do(req)
		if err != nil {
			log.Println("USER INFO FETCH ERROR:", err)
			c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to get user info"})
			return
		}
		defer resp.Body.Close()

		userInfo, err := io.ReadAll(resp.Body)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to read user info"})
			return
		}

		var googleUser struct {
			Sub     string `json:"sub"`
			Email   string `json:"email"`
			Name    string `json:"name"`
			Picture string `json:"picture"`
		}
		if err := json.Unmarshal(userInfo, &googleUser); err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to parse user info"})
			return
		}
		if googleUser.Email == "" {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Invalid user info: missing email"})
			return
		}

		user, err := users.UpsertByEmail(c.Request.Context(), googleUser.Email, googleUser.Name, googleUser.Picture)
		if err != nil {
			log.Println("UPSERT USER ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to save user"})
			return
		}

		appToken, err := GenerateJWT(user.ID, user.Role)
		if err != nil {
			log.Println("JWT GENERATION ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
			return
		}

		if _, err := sessions.Create(c.Request.Context(), user.ID, appToken, SessionTTL); err != nil {
			log.Println("SESSION INSERT ERROR:", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create session"})
			return
		}

		setSessionCookie(c, appToken)
		c.Redirect(http.StatusFound, frontendURL)
	}
}

func generateStateOauthCookie(c *gin.Context) string {
	b := make([]byte, 16)
	rand.Read(b)
	state := base64.URLEncoding.EncodeToString(b)
	c.SetCookie("oauthstate", state, 7200, "/", "", false, true)
	return state
}
