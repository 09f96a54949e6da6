package main

import (
	"context"
	"log"
	"time"

	"classroom-dashboard/auth"
	"classroom-dashboard/config"
	"classroom-dashboard/db"
	"classroom-dashboard/models"
	"classroom-dashboard/services"
	"classroom-dashboard/store"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, relying on environment variables:", err)
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Configuration error: ", err)
	}

	auth.JwtSecret = []byte(cfg.JWTSecret)
	if cfg.Google.Enabled() {
		auth.GoogleOauthConfig = &oauth2.Config{
			ClientID:     cfg.Google.ClientID,
			ClientSecret: cfg.Google.ClientSecret,
			RedirectURL:  cfg.Google.RedirectURL,
			Scopes: []string{
				"https://www.googleapis.com/auth/userinfo.email",
				"https://www.googleapis.com/auth/userinfo.profile",
				"openid",
			},
			Endpoint: google.Endpoint,
		}
	}

	client, err := db.Connect(cfg.MongoURI)
	if err != nil {
		log.Fatal("MongoDB connection failed:", err)
	}
	defer db.Disconnect(client)
	log.Println("Connected to MongoDB")

	database := client.Database(cfg.DBName)
	users := store.NewMongoUserStore(database)
	sessions := store.NewMongoSessionStore(database)
	exchange := auth.NewExchangeClient(cfg.AuthEndpoint)
	provider := services.NewFixtureProvider()

	go sweepSessions(sessions)

	r := gin.Default()
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORSOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	resolve := auth.CurrentUser(users, sessions)

	api := r.Group("/api")
	api.POST("/auth/session", auth.CreateSession(exchange, users, sessions))
	api.GET("/auth/me", resolve, auth.RequireUser(), auth.Me())
	api.POST("/auth/logout", auth.Logout(sessions))

	api.GET("/users", resolve, auth.RequireRole(models.RoleCoordinator), services.ListUsers(users))
	api.PUT("/users/:user_id/role", resolve, auth.RequireRole(models.RoleCoordinator), services.UpdateUserRole(users))

	api.GET("/dashboard/progress", resolve, auth.RequireUser(), services.Progress(provider))
	api.GET("/dashboard/metrics", resolve, auth.RequireUser(), services.Metrics(provider))
	api.GET("/classrooms", resolve, auth.RequireUser(), services.Classrooms(provider))
	api.GET("/notifications", resolve, auth.RequireUser(), services.Notifications(provider))

	if cfg.Google.Enabled() {
		r.GET("/auth/google/login", auth.GoogleLogin)
		r.GET("/auth/google/callback", auth.GoogleCallback(users, sessions, cfg.FrontendURL))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	log.Println("Starting server on :" + cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal("Server failed to start:", err)
	}
}

// sweepSessions periodically removes already-expired session records.
// Correctness never depends on it: resolution ignores expired rows, and
// deleting a missing row is a no-op, so the sweep is safe to run alongside
// request handling.
func sweepSessions(sessions store.SessionStore) {
	ticker := time.NewTicker(time.Hour)
	defer ticker.Stop()
	for range ticker.C {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		deleted, err := sessions.DeleteExpired(ctx, time.Now().UTC())
		cancel()
		if err != nil {
			log.Println("SESSION SWEEP ERROR:", err)
			continue
		}
		if deleted > 0 {
			log.Println("Swept expired sessions:", deleted)
		}
	}
}
