// Package config loads service configuration from environment variables.
// Six keys with sensible defaults — a config file library would be more
// machinery than the surface warrants.
package config

import (
	"os"
	"strconv"
	"strings"
)

type Config struct {
	Env         string // "dev" or "prod" — selects the log handler
	Port        int
	DBPath      string
	StaticDir   string // optional; when set, /public/* and / serve files from it
	CORSOrigins []string

	// Anti-abuse ceilings for the shared free-tier store. Checked before
	// every insert; raising them is a config change, not a code change.
	MaxUsers       int
	MaxLogsPerUser int
}

func Load() Config {
	return Config{
		Env:            get("APP_ENV", "dev"),
		Port:           getInt("PORT", 8080),
		DBPath:         get("DB_PATH", "data/tracker.db"),
		StaticDir:      get("STATIC_DIR", ""),
		CORSOrigins:    strings.Split(get("CORS_ORIGINS", "*"), ","),
		MaxUsers:       getInt("MAX_USERS", 2),
		MaxLogsPerUser: getInt("MAX_LOGS_PER_USER", 5),
	}
}

func get(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return def
}
