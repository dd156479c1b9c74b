package config

import (
	"os"
	"strings"
)

// Config holds the process-level settings. Collaborator-specific knobs
// (store backend credentials, classifier model) are read by the
// collaborators themselves at construction time.
type Config struct {
	Port           string
	AllowedOrigins []string
}

func FromEnv() Config {
	return Config{
		Port:           envOr("PORT", "8080"),
		AllowedOrigins: csvOr("CORS_ORIGINS", "*"),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func csvOr(k, def string) []string {
	v := envOr(k, def)
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			out = append(out, s)
		}
	}
	return out
}
