package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config with STUDYHUB_* environment variables. A .env file
// in the working directory is loaded first if present; variables already set
// in the process environment win over the file.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	cfg.StoreDriver = getenv("STUDYHUB_STORE_DRIVER", cfg.StoreDriver)
	cfg.StoreDSN = getenv("STUDYHUB_STORE_DSN", cfg.StoreDSN)
	cfg.HTTPAddr = getenv("STUDYHUB_HTTP_ADDR", cfg.HTTPAddr)
	cfg.AIBaseURL = getenv("STUDYHUB_AI_BASE_URL", cfg.AIBaseURL)
	cfg.AIModel = getenv("STUDYHUB_AI_MODEL", cfg.AIModel)
	cfg.VideoEndpoint = getenv("STUDYHUB_VIDEO_ENDPOINT", cfg.VideoEndpoint)
	cfg.S3Region = getenv("STUDYHUB_S3_REGION", cfg.S3Region)
	cfg.S3BaseEndpoint = getenv("STUDYHUB_S3_BASE_ENDPOINT", cfg.S3BaseEndpoint)
	cfg.S3AccessKey = getenv("STUDYHUB_S3_ACCESS_KEY", cfg.S3AccessKey)
	cfg.S3SecretKey = getenv("STUDYHUB_S3_SECRET_KEY", cfg.S3SecretKey)

	if v := getenv("STUDYHUB_REQUEST_TIMEOUT", ""); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}

	if v := getenv("STUDYHUB_CORS_ALLOWED_ORIGINS", ""); v != "" {
		cfg.CORSAllowedOrigins = splitList(v)
	}
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(part)
		if part != "" {
			out = append(out, part)
		}
	}
	return out
}
