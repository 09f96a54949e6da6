package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds all application configuration, loaded from environment
// variables. godotenv is loaded by main before calling Load.
type Config struct {
	Port         string
	MongoURI     string
	DBName       string
	AuthEndpoint string
	JWTSecret    string
	CORSOrigins  []string
	FrontendURL  string
	Google       GoogleConfig
}

// GoogleConfig contains the optional Google OAuth login settings.
type GoogleConfig struct {
	ClientID     string
	ClientSecret string
	RedirectURL  string
}

// Enabled reports whether the Google OAuth login path is configured.
func (g GoogleConfig) Enabled() bool {
	return g.ClientID != "" && g.ClientSecret != ""
}

func Load() (*Config, error) {
	cfg := &Config{
		Port:         getEnv("PORT", "8080"),
		MongoURI:     os.Getenv("MONGODB_URI"),
		DBName:       getEnv("DB_NAME", "classroom_dashboard"),
		AuthEndpoint: getEnv("AUTH_ENDPOINT", "https://demobackend.emergentagent.com/auth/v1/env/oauth/session-data"),
		JWTSecret:    os.Getenv("JWT_SECRET"),
		CORSOrigins:  strings.Split(getEnv("CORS_ORIGINS", "http://localhost:5173"), ","),
		FrontendURL:  getEnv("FRONTEND_URL", "http://localhost:5173"),
		Google: GoogleConfig{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  getEnv("GOOGLE_REDIRECT_URL", "http://localhost:8080/auth/google/callback"),
		},
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI environment variable is not set")
	}
	if cfg.Google.Enabled() && cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required when Google login is configured")
	}
	return cfg, nil
}

func getEnv(key, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultVal
}
