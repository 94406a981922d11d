package internal

import (
	"fmt"
	"os"
	"strings"
)

type Config struct {
	DatabaseURL   string
	SessionSecret string

	Port      string
	StaticDir string
	UploadDir string

	AdminUsername string
	AdminPassword string

	CookieSecure bool
}

func FromEnv() (Config, error) {
	var c Config
	c.DatabaseURL = strings.TrimSpace(os.Getenv("DATABASE_URL"))
	c.SessionSecret = strings.TrimSpace(os.Getenv("SESSION_SECRET"))

	c.Port = strings.TrimSpace(os.Getenv("PORT"))
	if c.Port == "" {
		c.Port = "8080"
	}
	c.StaticDir = strings.TrimSpace(os.Getenv("STATIC_DIR"))
	if c.StaticDir == "" {
		c.StaticDir = "./static"
	}
	c.UploadDir = strings.TrimSpace(os.Getenv("UPLOAD_DIR"))
	if c.UploadDir == "" {
		c.UploadDir = "./uploads"
	}

	c.AdminUsername = strings.TrimSpace(os.Getenv("ADMIN_USERNAME"))
	if c.AdminUsername == "" {
		c.AdminUsername = "admin"
	}
	c.AdminPassword = os.Getenv("ADMIN_PASSWORD")

	c.CookieSecure = os.Getenv("COOKIE_SECURE") == "1"

	if c.DatabaseURL == "" {
		return c, fmt.Errorf("DATABASE_URL is empty")
	}
	if c.SessionSecret == "" {
		return c, fmt.Errorf("SESSION_SECRET is empty")
	}
	return c, nil
}
