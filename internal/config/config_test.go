package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setStoreEnv(t *testing.T) {
	t.Setenv("APP_ENV", "production")
	t.Setenv("DATABASE_URL", "postgres://localhost/menus")
	t.Setenv("R2_ENDPOINT", "https://r2.example.com")
	t.Setenv("R2_ACCESS_KEY", "ak")
	t.Setenv("R2_SECRET_KEY", "sk")
	t.Setenv("R2_BUCKET_NAME", "menus")
}

func TestLoad_Defaults(t *testing.T) {
	setStoreEnv(t)

	cfg, err := Load(false)
	require.NoError(t, err)

	assert.Equal(t, ":8000", cfg.HTTPAddr)
	assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
	assert.Equal(t, 15*time.Minute, cfg.R2.PresignTTL)
	assert.Equal(t, "auto", cfg.R2.Region)
	assert.Equal(t, int32(10), cfg.DBMaxConns)
	assert.Equal(t, "GLM-4-Flash", cfg.LLM.Model)
	assert.Equal(t, []string{"http://localhost:3000", "http://localhost:5173"}, cfg.CORSOrigins)
	assert.False(t, cfg.StrictDishCategories)
}

func TestLoad_MissingRequired(t *testing.T) {
	setStoreEnv(t)
	t.Setenv("R2_BUCKET_NAME", "")

	_, err := Load(false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "R2_BUCKET_NAME")
}

func TestLoad_LLMKeysRequiredForServe(t *testing.T) {
	setStoreEnv(t)
	t.Setenv("LLM_BASE_URL", "")
	t.Setenv("LLM_API_KEY", "")

	_, err := Load(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "LLM_BASE_URL")
	assert.Contains(t, err.Error(), "LLM_API_KEY")

	t.Setenv("LLM_BASE_URL", "https://llm.example.com/v1/")
	t.Setenv("LLM_API_KEY", "key")

	cfg, err := Load(true)
	require.NoError(t, err)
	assert.Equal(t, "https://llm.example.com/v1", cfg.LLM.BaseURL)
}

func TestLoad_Overrides(t *testing.T) {
	setStoreEnv(t)
	t.Setenv("REQUEST_TIMEOUT", "5s")
	t.Setenv("STRICT_DISH_CATEGORIES", "true")
	t.Setenv("CORS_ORIGINS", " https://a.example.com ,,https://b.example.com")

	cfg, err := Load(false)
	require.NoError(t, err)

	assert.Equal(t, 5*time.Second, cfg.RequestTimeout)
	assert.True(t, cfg.StrictDishCategories)
	assert.Equal(t, []string{"https://a.example.com", "https://b.example.com"}, cfg.CORSOrigins)
}

func TestLoad_InvalidPoolSizes(t *testing.T) {
	setStoreEnv(t)
	t.Setenv("DB_MAX_CONNS", "2")
	t.Setenv("DB_MIN_CONNS", "5")

	_, err := Load(false)
	require.Error(t, err)
}
