package main

import (
	"fmt"
	"os"
)

// Config holds all environment variables for the service.
type Config struct {
	MongoURI      string // Document store connection string
	MongoDB       string // Database name (default: humisha)
	JWTSecret     string // Signing secret for session tokens
	AdminUsername string
	AdminPassword string
	Port          string // Service port (default: 5000)
	UploadsDir    string // Legacy image files (default: uploads)
	FrontendDir   string // Static shop/admin pages (default: frontend)
	Env           string // "production" switches the logger encoding
}

// LoadConfig reads the environment into a Config and validates the
// required fields.
func LoadConfig() (*Config, error) {
	cfg := &Config{
		MongoURI:      os.Getenv("MONGODB_URI"),
		MongoDB:       os.Getenv("MONGO_DB"),
		JWTSecret:     os.Getenv("JWT_SECRET"),
		AdminUsername: os.Getenv("ADMIN_USERNAME"),
		AdminPassword: os.Getenv("ADMIN_PASSWORD"),
		Port:          os.Getenv("PORT"),
		UploadsDir:    os.Getenv("UPLOADS_DIR"),
		FrontendDir:   os.Getenv("FRONTEND_DIR"),
		Env:           os.Getenv("ENV"),
	}

	if cfg.MongoDB == "" {
		cfg.MongoDB = "humisha"
	}
	if cfg.Port == "" {
		cfg.Port = "5000"
	}
	if cfg.UploadsDir == "" {
		cfg.UploadsDir = "uploads"
	}
	if cfg.FrontendDir == "" {
		cfg.FrontendDir = "frontend"
	}

	if cfg.MongoURI == "" {
		return nil, fmt.Errorf("MONGODB_URI is required")
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, fmt.Errorf("ADMIN_USERNAME and ADMIN_PASSWORD are required")
	}

	return cfg, nil
}
