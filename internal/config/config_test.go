package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoad_Defaults(t *testing.T) {
	for _, key := range []string{"MAX_FILE_SIZE", "STORAGE_DRIVER", "LLM_PROVIDER", "CV_DOWNLOAD_TIMEOUT"} {
		t.Setenv(key, "")
	}

	cfg := Load()

	assert.Equal(t, int64(10*1024*1024), cfg.Storage.MaxFileSize)
	assert.Equal(t, "local", cfg.Storage.Driver)
	assert.Equal(t, "gateway", cfg.LLM.Provider)
	assert.Equal(t, 30*time.Second, cfg.Scoring.DownloadTimeout)
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("MAX_FILE_SIZE", "2048")
	t.Setenv("S3_USE_SSL", "true")
	t.Setenv("CV_DOWNLOAD_TIMEOUT", "5s")
	t.Setenv("REDIS_DB", "3")

	cfg := Load()

	assert.Equal(t, int64(2048), cfg.Storage.MaxFileSize)
	assert.True(t, cfg.Storage.UseSSL)
	assert.Equal(t, 5*time.Second, cfg.Scoring.DownloadTimeout)
	assert.Equal(t, 3, cfg.Redis.DB)
}

func TestLoad_TrustedProxies(t *testing.T) {
	t.Setenv("PROXY_HEADER", "X-Forwarded-For")
	t.Setenv("TRUSTED_PROXIES", "10.0.0.1, 10.0.0.0/8,,")

	cfg := Load()

	assert.Equal(t, "X-Forwarded-For", cfg.Server.ProxyHeader)
	assert.Equal(t, []string{"10.0.0.1", "10.0.0.0/8"}, cfg.Server.TrustedProxies)
}

func TestGetEnvAsDuration_InvalidFallsBack(t *testing.T) {
	t.Setenv("SOME_DURATION", "not-a-duration")
	assert.Equal(t, 2*time.Second, getEnvAsDuration("SOME_DURATION", "2s"))
}

func TestGetDatabaseDSN(t *testing.T) {
	cfg := &Config{Database: DatabaseConfig{
		Host: "db", Port: "5432", User: "u", Password: "p", DBName: "n", SSLMode: "require",
	}}
	assert.Equal(t, "host=db port=5432 user=u password=p dbname=n sslmode=require", cfg.GetDatabaseDSN())
}
