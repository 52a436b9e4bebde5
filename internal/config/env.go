package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBUser string
	DBPass string
	DBHost string
	DBName string

	JWTSecret string

	GeminiAPIKey  string
	TrustWhatsApp string

	UploadDir     string
	PublicBaseURL string

	CORSOrigins []string
}

func LoadEnv() Env {
	// .env is optional; real deployments set the variables directly.
	_ = godotenv.Load()

	return Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: strings.TrimSpace(os.Getenv("GIN_MODE")),

		DBUser: getenv("DB_USER", "root"),
		DBPass: strings.TrimSpace(os.Getenv("DB_PASS")),
		DBHost: getenv("DB_HOST", "127.0.0.1:3306"),
		DBName: getenv("DB_NAME", "shraddhayatra"),

		JWTSecret: getenv("JWT_SECRET", "super-secret-key-change-me"),

		GeminiAPIKey:  strings.TrimSpace(os.Getenv("GEMINI_API_KEY")),
		TrustWhatsApp: getenv("TRUST_WHATSAPP", "919598023701"),

		UploadDir:     getenv("UPLOAD_DIR", "uploads"),
		PublicBaseURL: getenv("PUBLIC_BASE_URL", "http://localhost:8080"),

		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}
}

func getenv(key, fallback string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return fallback
	}
	return v
}

func splitList(raw string) []string {
	out := []string{}
	for _, p := range strings.Split(raw, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	if len(out) == 0 {
		out = []string{
			"http://localhost:3000",
			"http://localhost:5173",
			"http://127.0.0.1:5173",
		}
	}
	return out
}
