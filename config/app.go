package config

import (
	"os"
	"strconv"
	"sync"
)

// AppConfig holds global application configuration
var AppConfig *Config
var once sync.Once

type Config struct {
	AppName         string
	Port            string
	Env             string
	Debug           bool
	UpstreamURL     string
	UpstreamToken   string
	DefaultPageSize int
}

// GetEnv returns the env var value or a default when unset.
func GetEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

// LoadAppConfig initializes the global AppConfig variable
func LoadAppConfig() {
	once.Do(func() {
		pageSize, err := strconv.Atoi(GetEnv("DEFAULT_PAGE_SIZE", "20"))
		if err != nil {
			pageSize = 20
		}
		AppConfig = &Config{
			AppName:         GetEnv("APP_NAME", "storeadmin"),
			Port:            os.Getenv("PORT"),
			Env:             os.Getenv("APP_ENV"),
			Debug:           os.Getenv("DEBUG") == "true",
			UpstreamURL:     GetEnv("COMMERCE_API_URL", "http://localhost:9000"),
			UpstreamToken:   os.Getenv("COMMERCE_API_TOKEN"),
			DefaultPageSize: pageSize,
		}
	})
}
