package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfigDefaults(t *testing.T) {
	for _, key := range []string{
		"POSTGRES_URL", "PORT", "JWT_SECRET", "PDF_SAVE_PATH",
		"TOKEN_HOUR_LIFESPAN", "DB_MAX_OPEN_CONNS", "DB_MAX_IDLE_CONNS", "DB_CONN_MAX_LIFETIME_MIN",
	} {
		t.Setenv(key, "")
	}

	cfg := LoadConfig()

	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "courierbilling-secret", cfg.JWTSecret)
	assert.Equal(t, 24, cfg.TokenHourLifespan)
	assert.Equal(t, "./pdfs", cfg.PDFSavePath)
	assert.Equal(t, 5, cfg.DBMaxOpenConns)
	assert.Equal(t, 2, cfg.DBMaxIdleConns)
	assert.Equal(t, 30*time.Minute, cfg.DBConnMaxLifetime)
}

func TestLoadConfigOverrides(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("TOKEN_HOUR_LIFESPAN", "72")
	t.Setenv("DB_MAX_OPEN_CONNS", "11")
	t.Setenv("DB_MAX_IDLE_CONNS", "")
	t.Setenv("DB_CONN_MAX_LIFETIME_MIN", "")

	cfg := LoadConfig()

	assert.Equal(t, "9090", cfg.Port)
	assert.Equal(t, 72, cfg.TokenHourLifespan)
	assert.Equal(t, 11, cfg.DBMaxOpenConns)
	assert.Equal(t, 2, cfg.DBMaxIdleConns)
}

func TestLoadConfigRejectsNonPositiveInts(t *testing.T) {
	t.Setenv("TOKEN_HOUR_LIFESPAN", "0")
	t.Setenv("DB_MAX_OPEN_CONNS", "-3")

	cfg := LoadConfig()

	assert.Equal(t, 24, cfg.TokenHourLifespan)
	assert.Equal(t, 5, cfg.DBMaxOpenConns)
}
