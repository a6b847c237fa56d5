package configs

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	DBDriver    string
	DBSource    string
	Port        string
	JWTSecret   string
	JWTTTL      time.Duration
	CORSOrigins []string
}

func LoadConfig() *Config {
	// .env เป็น optional ตอนรันใน container
	_ = godotenv.Load()

	return &Config{
		DBDriver:    getEnv("DB_DRIVER", "sqlite"),
		DBSource:    getEnv("DB_SOURCE", "foodorder.db"),
		Port:        getEnv("PORT", "8000"),
		JWTSecret:   getEnv("JWT_SECRET", "changeme"),
		JWTTTL:      24 * time.Hour,
		CORSOrigins: strings.Split(getEnv("CORS_ORIGINS", "*"), ","),
	}
}

func getEnv(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return fallback
}
