package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"
)

// Config is loaded once at startup and passed to every component. No other
// package reads the environment.
type Config struct {
	MongoURI     string
	DatabaseName string

	AccessTokenSecret  string
	AccessTokenTTL     time.Duration
	RefreshTokenSecret string
	RefreshTokenTTL    time.Duration

	PhotoLimit      int
	VideoLimit      int
	MaxPhotoSizeMB  int
	MaxVideoSizeMB  int
	InquiryCooldown time.Duration

	AdminEmail     string
	AllowedOrigins []string
	ClientURL      string

	CookieSecure bool
	CookieDomain string

	StorageDriver           string // "gcs" or "r2"
	GCSBucket               string
	CredentialsFileLocation string
	R2Bucket                string
	R2AccessKeyID           string
	R2SecretAccessKey       string
	R2Endpoint              string
	R2PublicDomain          string

	SMTPHost     string
	SMTPPort     string
	SMTPUser     string
	SMTPPassword string
	SMTPFrom     string
}

// Load reads the environment into a Config. Missing token secrets are a
// fatal startup condition; everything else falls back to defaults.
func Load() (*Config, error) {
	cfg := &Config{
		MongoURI:     os.Getenv("MONGODB_URI"),
		DatabaseName: envDefault("DATABASE_NAME", "realestate"),

		AccessTokenSecret:  os.Getenv("ACCESS_TOKEN_SECRET"),
		AccessTokenTTL:     time.Duration(envInt("ACCESS_TOKEN_TTL_MINUTES", 15)) * time.Minute,
		RefreshTokenSecret: os.Getenv("REFRESH_TOKEN_SECRET"),
		RefreshTokenTTL:    time.Duration(envInt("REFRESH_TOKEN_TTL_DAYS", 14)) * 24 * time.Hour,

		PhotoLimit:      envInt("PHOTO_LIMIT", 20),
		VideoLimit:      envInt("VIDEO_LIMIT", 1),
		MaxPhotoSizeMB:  envInt("MAX_PHOTO_SIZE_MB", 5),
		MaxVideoSizeMB:  envInt("MAX_VIDEO_SIZE_MB", 100),
		InquiryCooldown: time.Duration(envInt("INQUIRY_COOLDOWN_MINUTES", 5)) * time.Minute,

		AdminEmail: strings.ToLower(strings.TrimSpace(os.Getenv("ADMIN_EMAIL"))),
		ClientURL:  os.Getenv("CLIENT_URL"),

		CookieSecure: os.Getenv("COOKIE_SECURE") == "true",
		CookieDomain: os.Getenv("COOKIE_DOMAIN"),

		StorageDriver:           envDefault("STORAGE_DRIVER", "gcs"),
		GCSBucket:               os.Getenv("GCS_BUCKET"),
		CredentialsFileLocation: os.Getenv("CREDENTIALS_FILE_LOCATION"),
		R2Bucket:                os.Getenv("R2_BUCKET"),
		R2AccessKeyID:           os.Getenv("R2_ACCESS_KEY_ID"),
		R2SecretAccessKey:       os.Getenv("R2_SECRET_ACCESS_KEY"),
		R2Endpoint:              os.Getenv("R2_ENDPOINT"),
		R2PublicDomain:          os.Getenv("R2_PUBLIC_DOMAIN"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     envDefault("SMTP_PORT", "587"),
		SMTPUser:     os.Getenv("SMTP_USER"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		SMTPFrom:     os.Getenv("SMTP_FROM"),
	}

	for _, origin := range strings.Split(os.Getenv("ALLOWED_ORIGINS"), ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			cfg.AllowedOrigins = append(cfg.AllowedOrigins, origin)
		}
	}

	if cfg.AccessTokenSecret == "" {
		return nil, fmt.Errorf("missing ACCESS_TOKEN_SECRET env var")
	}
	if cfg.RefreshTokenSecret == "" {
		return nil, fmt.Errorf("missing REFRESH_TOKEN_SECRET env var")
	}
	if cfg.PhotoLimit < 1 || cfg.VideoLimit < 1 {
		return nil, fmt.Errorf("PHOTO_LIMIT and VIDEO_LIMIT must be positive")
	}

	return cfg, nil
}

func envDefault(key, def string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return def
}

func envInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		return def
	}
	return n
}
