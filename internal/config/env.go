package config

import (
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Env struct {
	AppAddr string
	GinMode string

	DBDSN      string
	DBHost     string
	DBPort     string
	DBUser     string
	DBPassword string
	DBName     string

	JWTSecret     string
	JWTTTL        time.Duration
	AdminUsername string
	AdminPassword string

	CORSAllowedOrigins []string
	StaticDir          string

	// wizard terminal client
	APIBaseURL         string
	CatalogFile        string
	DraftFile          string
	DraftRedisAddr     string
	DraftRedisPassword string
	DraftRedisDB       int
	DraftRedisPrefix   string
	DraftRedisTTL      time.Duration
}

var defaultCORSOrigins = []string{
	"http://localhost:3000",
	"http://127.0.0.1:3000",
	"http://localhost:5000",
	"http://127.0.0.1:5000",
	"http://localhost:5173",
	"http://127.0.0.1:5173",
}

// LoadDotEnv reads .env from the working directory when present.
func LoadDotEnv() {
	if err := godotenv.Load(); err != nil {
		if !os.IsNotExist(err) {
			log.Printf("warning: gagal membaca .env: %v", err)
		}
	}
}

func LoadEnv() Env {
	LoadDotEnv()

	env := Env{
		AppAddr: getenv("APP_ADDR", ":8080"),
		GinMode: getenv("GIN_MODE", ""),

		DBDSN:      getenv("DB_DSN", ""),
		DBHost:     getenv("DB_HOST", "127.0.0.1"),
		DBPort:     getenv("DB_PORT", "3306"),
		DBUser:     getenv("DB_USER", "root"),
		DBPassword: getenv("DB_PASSWORD", ""),
		DBName:     getenv("DB_NAME", "javaterra"),

		JWTSecret:     getenv("JWT_SECRET", "javaterra-dev-secret-change-me"),
		JWTTTL:        getDuration("JWT_TTL", 12*time.Hour),
		AdminUsername: getenv("ADMIN_USERNAME", "admin"),
		AdminPassword: getenv("ADMIN_PASSWORD", ""),

		CORSAllowedOrigins: getList("CORS_ALLOWED_ORIGINS", defaultCORSOrigins),
		StaticDir:          getenv("STATIC_DIR", ""),

		APIBaseURL:         getenv("API_BASE_URL", "http://localhost:8080"),
		CatalogFile:        getenv("CATALOG_FILE", ""),
		DraftFile:          getenv("DRAFT_FILE", ".javaterra/drafts.json"),
		DraftRedisAddr:     getenv("DRAFT_REDIS_ADDR", ""),
		DraftRedisPassword: getenv("DRAFT_REDIS_PASSWORD", ""),
		DraftRedisDB:       getInt("DRAFT_REDIS_DB", 0),
		DraftRedisPrefix:   getenv("DRAFT_REDIS_PREFIX", "javaterra:draft"),
		DraftRedisTTL:      getDuration("DRAFT_REDIS_TTL", 7*24*time.Hour),
	}
	return env
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func getInt(key string, def int) int {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("warning: %s=%q bukan angka, pakai default %d", key, v, def)
		return def
	}
	return n
}

func getDuration(key string, def time.Duration) time.Duration {
	v := getenv(key, "")
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		log.Printf("warning: %s=%q tidak valid, pakai default %s", key, v, def)
		return def
	}
	return d
}

func getList(key string, def []string) []string {
	v := getenv(key, "")
	if v == "" {
		return append([]string(nil), def...)
	}
	var out []string
	for _, part := range strings.Split(v, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
