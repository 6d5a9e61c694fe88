package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

const (
	defaultEnvironment = "development"
	defaultPort        = "8080"
)

// loads configuration from environment variables (and a .env file when present)
func LoadEnvironmentVariables() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		_ = err // not an error - production environments may not have .env file
	}

	return FromEnv()
}

// builds configuration from the current process environment without reading .env
func FromEnv() (*Config, error) {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = defaultEnvironment
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET environment variable is required")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	// error detail is exposed everywhere except production unless overridden
	exposeErrors := environment != "production"
	if raw := os.Getenv("EXPOSE_ERRORS"); raw != "" {
		v, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid EXPOSE_ERRORS value %q: %w", raw, err)
		}

		exposeErrors = v
	}

	return &Config{
		Environment:  environment,
		Port:         port,
		JWTSecret:    jwtSecret,
		ExposeErrors: exposeErrors,
		CORSOrigins:  parseOrigins(os.Getenv("CORS_ALLOWED_ORIGINS")),
	}, nil
}

// splits a comma separated origin list, defaulting to "*"
func parseOrigins(raw string) []string {
	var origins []string

	for _, o := range strings.Split(raw, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}

	if len(origins) == 0 {
		return []string{"*"}
	}

	return origins
}
