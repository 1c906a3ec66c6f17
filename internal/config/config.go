package config

import (
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
	"github.com/spf13/viper"
)

// Config is built once at startup and handed to every component that needs it.
type Config struct {
	Env            string
	HTTPAddr       string
	LogLevel       string
	RequestTimeout time.Duration
	CORSOrigins    []string

	DatabaseURL string
	DBMaxConns  int32
	DBMinConns  int32

	R2 R2Config

	LLM LLMConfig

	ScholarBaseURL string

	StrictDishCategories bool
}

type R2Config struct {
	Endpoint   string
	Region     string
	AccessKey  string
	SecretKey  string
	Bucket     string
	PresignTTL time.Duration
}

type LLMConfig struct {
	BaseURL string
	APIKey  string
	Model   string
	Timeout time.Duration
}

var storeKeys = []string{
	"DATABASE_URL",
	"R2_ENDPOINT",
	"R2_ACCESS_KEY",
	"R2_SECRET_KEY",
	"R2_BUCKET_NAME",
}

var llmKeys = []string{
	"LLM_BASE_URL",
	"LLM_API_KEY",
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("APP_ENV", "development")
	v.SetDefault("HTTP_ADDR", ":8000")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("REQUEST_TIMEOUT", "30s")
	v.SetDefault("CORS_ORIGINS", "http://localhost:3000,http://localhost:5173")
	v.SetDefault("DB_MAX_CONNS", 10)
	v.SetDefault("DB_MIN_CONNS", 2)
	v.SetDefault("R2_REGION", "auto")
	v.SetDefault("R2_PRESIGN_TTL", "15m")
	v.SetDefault("LLM_MODEL", "GLM-4-Flash")
	v.SetDefault("LLM_TIMEOUT", "60s")
	v.SetDefault("SCHOLAR_BASE_URL", "https://scholar.google.com.hk")
	v.SetDefault("STRICT_DISH_CATEGORIES", false)
}

// Load reads .env (outside production) and the process environment.
// withLLM adds the chat-completion keys to the required set.
func Load(withLLM bool) (*Config, error) {
	if os.Getenv("APP_ENV") != "production" {
		_ = godotenv.Load()
	}

	v := viper.New()
	v.AutomaticEnv()
	setDefaults(v)

	required := storeKeys
	if withLLM {
		required = append(append([]string{}, storeKeys...), llmKeys...)
	}
	var missing []string
	for _, k := range required {
		if strings.TrimSpace(v.GetString(k)) == "" {
			missing = append(missing, k)
		}
	}
	if len(missing) > 0 {
		return nil, errors.Errorf("missing env vars: %s", strings.Join(missing, ", "))
	}

	cfg := &Config{
		Env:            v.GetString("APP_ENV"),
		HTTPAddr:       v.GetString("HTTP_ADDR"),
		LogLevel:       v.GetString("LOG_LEVEL"),
		RequestTimeout: v.GetDuration("REQUEST_TIMEOUT"),
		CORSOrigins:    splitList(v.GetString("CORS_ORIGINS")),

		DatabaseURL: v.GetString("DATABASE_URL"),
		DBMaxConns:  v.GetInt32("DB_MAX_CONNS"),
		DBMinConns:  v.GetInt32("DB_MIN_CONNS"),

		R2: R2Config{
			Endpoint:   v.GetString("R2_ENDPOINT"),
			Region:     v.GetString("R2_REGION"),
			AccessKey:  v.GetString("R2_ACCESS_KEY"),
			SecretKey:  v.GetString("R2_SECRET_KEY"),
			Bucket:     v.GetString("R2_BUCKET_NAME"),
			PresignTTL: v.GetDuration("R2_PRESIGN_TTL"),
		},

		LLM: LLMConfig{
			BaseURL: strings.TrimRight(v.GetString("LLM_BASE_URL"), "/"),
			APIKey:  v.GetString("LLM_API_KEY"),
			Model:   v.GetString("LLM_MODEL"),
			Timeout: v.GetDuration("LLM_TIMEOUT"),
		},

		ScholarBaseURL: strings.TrimRight(v.GetString("SCHOLAR_BASE_URL"), "/"),

		StrictDishCategories: v.GetBool("STRICT_DISH_CATEGORIES"),
	}

	if cfg.RequestTimeout <= 0 {
		return nil, errors.New("REQUEST_TIMEOUT must be positive")
	}
	if cfg.R2.PresignTTL <= 0 {
		return nil, errors.New("R2_PRESIGN_TTL must be positive")
	}
	if cfg.DBMinConns > cfg.DBMaxConns {
		return nil, errors.Errorf("DB_MIN_CONNS (%d) exceeds DB_MAX_CONNS (%d)", cfg.DBMinConns, cfg.DBMaxConns)
	}

	return cfg, nil
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
