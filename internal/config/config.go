package config

import (
	"fmt"
	"os"
	"strings"
)

// Config holds the configuration for the application.
type Config struct {
	DatabasePath       string
	Port               string
	CORSAllowedOrigins []string
	ExportStoragePath  string
}

// NewFromEnv creates a new Config object from environment variables.
func NewFromEnv() (*Config, error) {
	databasePath := os.Getenv("DATABASE_PATH")
	if databasePath == "" {
		return nil, fmt.Errorf("DATABASE_PATH environment variable not set")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	origins := os.Getenv("CORS_ALLOWED_ORIGINS")
	if origins == "" {
		origins = "*"
	}

	exportPath := os.Getenv("EXPORT_STORAGE_PATH")
	if exportPath == "" {
		exportPath = "data/exports"
	}

	return &Config{
		DatabasePath:       databasePath,
		Port:               port,
		CORSAllowedOrigins: strings.Split(origins, ","),
		ExportStoragePath:  exportPath,
	}, nil
}
