package config

import (
	"fmt"
	"strings"
)

// requiredValue names a configuration value the application cannot run
// without.
type requiredValue struct {
	EnvVar string
	Value  string
}

// ValidateConfig checks that every value a code path depends on is present.
// Missing values fail loudly here instead of surfacing as opaque runtime
// errors later. ADMIN_PASSWORD and SERVICE_DATABASE_URL are deliberately not
// required: the admin endpoints handle their absence themselves.
func ValidateConfig(cfg *Config) error {
	required := []requiredValue{
		{"DB_HOST", cfg.DBHost},
		{"DB_PORT", cfg.DBPort},
		{"DB_USER", cfg.DBUser},
		{"DB_PASSWORD", cfg.DBPassword},
		{"DB_NAME", cfg.DBName},
		{"REDIS_HOST", cfg.RedisHost},
		{"REDIS_PORT", cfg.RedisPort},
		{"JWT_SECRET", cfg.JWTSecret},
	}

	var errs []string
	for _, rv := range required {
		if rv.Value == "" {
			errs = append(errs, fmt.Sprintf("required environment variable %s is not set", rv.EnvVar))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("%s", strings.Join(errs, "\n"))
	}
	return nil
}
