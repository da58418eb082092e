package config

import (
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	HTTPAddr        string
	DatabaseURL     string
	JWTSecret       string
	InternalToken   string
	CORSAllowOrigin string

	RedisAddr     string
	RedisPassword string
	RedisDB       int
	PDFCacheTTL   time.Duration

	CompanyName    string
	CompanyTagline string
	CompanyAddress string
	CompanyPhone   string
	CompanyEmail   string
}

func MustLoad() Config {
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		DatabaseURL:     mustEnv("DATABASE_URL"),
		JWTSecret:       mustEnv("JWT_SECRET"),
		InternalToken:   env("INTERNAL_TOKEN", ""),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		RedisAddr:       env("REDIS_ADDR", ""),
		RedisPassword:   env("REDIS_PASSWORD", ""),
		RedisDB:         envInt("REDIS_DB", 0),
		PDFCacheTTL:     envDuration("PDF_CACHE_TTL", 10*time.Minute),
		CompanyName:     env("COMPANY_NAME", ""),
		CompanyTagline:  env("COMPANY_TAGLINE", ""),
		CompanyAddress:  env("COMPANY_ADDRESS", ""),
		CompanyPhone:    env("COMPANY_PHONE", ""),
		CompanyEmail:    env("COMPANY_EMAIL", ""),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", k, v, err)
		return def
	}
	return n
}

func envDuration(k string, def time.Duration) time.Duration {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("config: ignoring %s=%q: %v", k, v, err)
		return def
	}
	return d
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}
