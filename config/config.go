package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type Config struct {
	PostgresURL       string
	Port              string
	JWTSecret         string
	TokenHourLifespan int
	PDFSavePath       string

	DBMaxOpenConns    int
	DBMaxIdleConns    int
	DBConnMaxLifetime time.Duration
}

func LoadConfig() *Config {
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg := &Config{
		PostgresURL: os.Getenv("POSTGRES_URL"),
		Port:        os.Getenv("PORT"),
		JWTSecret:   os.Getenv("JWT_SECRET"),
		PDFSavePath: os.Getenv("PDF_SAVE_PATH"),
	}
	if cfg.Port == "" {
		cfg.Port = "8080"
	}
	if cfg.JWTSecret == "" {
		cfg.JWTSecret = "courierbilling-secret"
	}
	if cfg.PDFSavePath == "" {
		cfg.PDFSavePath = "./pdfs"
	}

	cfg.TokenHourLifespan = intEnv("TOKEN_HOUR_LIFESPAN", 24)
	cfg.DBMaxOpenConns = intEnv("DB_MAX_OPEN_CONNS", 5)
	cfg.DBMaxIdleConns = intEnv("DB_MAX_IDLE_CONNS", 2)
	cfg.DBConnMaxLifetime = time.Duration(intEnv("DB_CONN_MAX_LIFETIME_MIN", 30)) * time.Minute

	return cfg
}

func intEnv(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			return n
		}
	}
	return def
}
