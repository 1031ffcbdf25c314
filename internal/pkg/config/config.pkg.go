package config

import (
	"extrato-gateway/internal/common/enum"
	types "extrato-gateway/internal/common/type"
	"extrato-gateway/internal/pkg/helper"
	"extrato-gateway/internal/pkg/validation"
	"fmt"
	"net/url"
	"time"
)

const (
	DefaultPort          = "8001"
	DefaultParserURL     = "http://localhost:8000/api/parse"
	DefaultParserTimeout = 60
	DefaultMaxUploadMB   = 32
	DefaultCorsOrigins   = "http://localhost:5173,http://localhost:4173"
)

type Config struct {
	AppEnv               enum.EnvEnum       `json:"APP_ENV" validate:"required,enum"`
	Port                 string             `json:"PORT" validate:"required,number"`
	ParserURL            string             `json:"PARSER_URL" validate:"required,url"`
	ParserHealthURL      string             `json:"PARSER_HEALTH_URL" validate:"required,url"`
	ParserTimeoutSeconds int                `json:"PARSER_TIMEOUT_SECONDS" validate:"gt=0"`
	MaxUploadMB          int                `json:"MAX_UPLOAD_MB" validate:"gt=0"`
	CorsOrigins          []string           `json:"CORS_ORIGINS" validate:"dive,http_url|eq=*"`
	Debug                types.StringToBool `json:"DEBUG" validate:"stringToBool"`
}

// Load reads the configuration from the environment, after merging the given .env files.
func Load(envFiles ...string) (*Config, error) {
	if err := helper.LoadEnv(envFiles...); err != nil {
		return nil, fmt.Errorf("failed to load env files: %w", err)
	}

	parserURL := helper.GetEnvDefault("PARSER_URL", DefaultParserURL)
	healthURL := helper.GetEnv("PARSER_HEALTH_URL")
	if healthURL == "" {
		healthURL = deriveHealthURL(parserURL)
	}

	timeout, err := helper.GetEnvAsIntDefault("PARSER_TIMEOUT_SECONDS", DefaultParserTimeout)
	if err != nil {
		return nil, err
	}
	maxUpload, err := helper.GetEnvAsIntDefault("MAX_UPLOAD_MB", DefaultMaxUploadMB)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		AppEnv:               enum.EnvEnum(helper.GetEnvDefault("APP_ENV", enum.DEVELOPMENT.ToString())),
		Port:                 helper.GetEnvDefault("PORT", DefaultPort),
		ParserURL:            parserURL,
		ParserHealthURL:      healthURL,
		ParserTimeoutSeconds: timeout,
		MaxUploadMB:          maxUpload,
		CorsOrigins:          helper.SplitAndTrim(helper.GetEnvDefault("CORS_ORIGINS", DefaultCorsOrigins)),
		Debug:                types.StringToBool(helper.GetEnvDefault("DEBUG", "false")),
	}

	if err := validation.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) ParserTimeout() time.Duration {
	return time.Duration(c.ParserTimeoutSeconds) * time.Second
}

func (c *Config) MaxUploadBytes() int64 {
	return int64(c.MaxUploadMB) << 20
}

func (c *Config) GinMode() string {
	if c.Debug.ToBool() {
		return enum.DEVELOPMENT.GinMode()
	}
	return c.AppEnv.GinMode()
}

// deriveHealthURL points at /api/health on the parser's host.
func deriveHealthURL(parserURL string) string {
	u, err := url.Parse(parserURL)
	if err != nil || u.Host == "" {
		return ""
	}
	return (&url.URL{Scheme: u.Scheme, Host: u.Host, Path: "/api/health"}).String()
}
