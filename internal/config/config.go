// Package config reads server and CLI settings from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/janisto/widget-playground/internal/platform/firebase"
	"github.com/janisto/widget-playground/internal/storage"
)

// Store backends.
const (
	BackendMemory    = "memory"
	BackendFirestore = "firestore"
	BackendRedis     = "redis"
	BackendSQLite    = "sqlite"
)

// ErrInvalid is wrapped by every validation failure returned from Load.
var ErrInvalid = errors.New("invalid configuration")

// Config holds the process settings.
type Config struct {
	Port        string
	Backend     string
	Namespace   string
	CORSOrigins []string
	Firebase    firebase.Config
	Redis       storage.RedisConfig
	SQLitePath  string
}

// Load reads the environment, after applying any .env files found. With no
// files given it tries ".env" in the working directory. Variables already set
// in the environment win over .env values.
func Load(files ...string) (*Config, error) {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("load %s: %w", f, err)
		}
	}

	redisCluster, err := getBool("REDIS_CLUSTER", false)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Port:        getEnv("PORT", "8080"),
		Backend:     strings.ToLower(getEnv("STORE_BACKEND", BackendMemory)),
		Namespace:   getEnv("STORE_NAMESPACE", "default"),
		CORSOrigins: splitList(os.Getenv("CORS_ALLOWED_ORIGINS")),
		Firebase: firebase.Config{
			ProjectID:                    os.Getenv("FIREBASE_PROJECT_ID"),
			GoogleApplicationCredentials: os.Getenv("GOOGLE_APPLICATION_CREDENTIALS"),
		},
		Redis: storage.RedisConfig{
			Addrs:    splitList(getEnv("REDIS_ADDRS", "localhost:6379")),
			Password: os.Getenv("REDIS_PASSWORD"),
			Cluster:  redisCluster,
		},
		SQLitePath: getEnv("SQLITE_PATH", "widgets.db"),
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate checks that the selected backend has what it needs.
func (c *Config) Validate() error {
	if _, err := strconv.Atoi(c.Port); err != nil {
		return fmt.Errorf("%w: PORT %q is not a number", ErrInvalid, c.Port)
	}
	if c.Namespace == "" {
		return fmt.Errorf("%w: STORE_NAMESPACE is empty", ErrInvalid)
	}
	switch c.Backend {
	case BackendMemory:
	case BackendFirestore:
		if c.Firebase.ProjectID == "" {
			return fmt.Errorf("%w: FIREBASE_PROJECT_ID is required for the firestore backend", ErrInvalid)
		}
	case BackendRedis:
		if len(c.Redis.Addrs) == 0 {
			return fmt.Errorf("%w: REDIS_ADDRS is required for the redis backend", ErrInvalid)
		}
	case BackendSQLite:
		if c.SQLitePath == "" {
			return fmt.Errorf("%w: SQLITE_PATH is required for the sqlite backend", ErrInvalid)
		}
	default:
		return fmt.Errorf("%w: unknown STORE_BACKEND %q", ErrInvalid, c.Backend)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getBool(key string, fallback bool) (bool, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, fmt.Errorf("%w: %s %q is not a boolean", ErrInvalid, key, v)
	}
	return b, nil
}

func splitList(s string) []string {
	var out []string
	for part := range strings.SplitSeq(s, ",") {
		if p := strings.TrimSpace(part); p != "" {
			out = append(out, p)
		}
	}
	return out
}
