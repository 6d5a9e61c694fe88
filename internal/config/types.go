package config

type Config struct {
	Environment  string
	Port         string
	JWTSecret    string
	ExposeErrors bool
	CORSOrigins  []string
}

// reports whether the service runs in production
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}
