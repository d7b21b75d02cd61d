package config

import (
	"fmt"
	"strings"
)

// ValidateConfig checks that every value the server cannot run without is
// present. Redis settings are not required: the server degrades to running
// without rate limiting when Redis is absent.
func ValidateConfig(cfg *Config) error {
	var errors []string

	required := map[string]string{
		"SERVER_PORT": cfg.ServerPort,
		"DB_HOST":     cfg.DBHost,
		"DB_PORT":     cfg.DBPort,
		"DB_USER":     cfg.DBUser,
		"DB_NAME":     cfg.DBName,
	}
	for name, value := range required {
		if value == "" {
			errors = append(errors, fmt.Sprintf("required setting %s is not set", name))
		}
	}

	if cfg.DBPassword == "" {
		errors = append(errors, "DB_PASSWORD (or db_password secret) is required")
	}
	if cfg.JWTSecret == "" {
		errors = append(errors, "JWT_SECRET (or jwt_secret secret) is required")
	}

	if len(errors) > 0 {
		return fmt.Errorf("%s", strings.Join(errors, "\n"))
	}
	return nil
}
