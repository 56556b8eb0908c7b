package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"time"
)

type Config struct {
	ListenPort      string        // ex: ":8080"
	ShutdownTimeout time.Duration // ex: 5s
	RequestTimeout  time.Duration // per-request timeout applied by the router

	LogLevel  string // "debug" | "info" | "warn" | "error"
	PrettyLog bool   // true => zap dev (color), false => zap prod (JSON)

	// Auth
	JWTSecret string        // HMAC signing secret for session tokens
	TokenTTL  time.Duration // session token lifetime (default: 168h)

	// MongoDB
	MongoURI            string        // ex: "mongodb://localhost:27017"
	MongoDB             string        // database name
	MongoUser           string        // optional
	MongoPassword       string        // optional
	MongoDialTimeout    time.Duration // per-attempt dial timeout (ex: 5s)
	MongoConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	MongoRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	MongoMaxWait        time.Duration // max wait between retries (ex: 10s)
	MongoPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	MongoWarnThreshold  int           // warn after this many attempts

	// Redis (optional, empty addr = search cache disabled)
	RedisAddr           string        // ex: "localhost:6379"
	RedisUser           string        // optional
	RedisPassword       string        // optional
	RedisDB             int           // Redis DB number
	RedisDT             time.Duration // Redis dial timeout (ex: 5s)
	RedisRT             time.Duration // Redis read timeout (ex: 3s)
	RedisWT             time.Duration // Redis write timeout (ex: 3s)
	RedisMaxWait        time.Duration // max wait between retries (ex: 10s)
	RedisPingTimeout    time.Duration // timeout for each ping attempt (ex: 5s)
	RedisPoolSize       int           // Redis connection pool size
	RedisConnectTimeout time.Duration // total time to retry connecting (ex: 30s)
	RedisRetryInterval  time.Duration // initial wait between retries (grows exponentially)
	RedisWarnThreshold  int           // warn after this many attempts

	// Directory search
	SearchLimit    int           // max results per user search
	SearchCacheTTL time.Duration // TTL for cached search results
}

func Load() *Config {
	cfg := &Config{
		// Server settings
		ListenPort:      getenv("COVET_LISTEN_PORT", ":8080"),
		ShutdownTimeout: mustDuration("COVET_SHUTDOWN_TIMEOUT", 5*time.Second),
		RequestTimeout:  mustDuration("COVET_REQUEST_TIMEOUT", 10*time.Second),

		// Logging
		LogLevel:  getenv("COVET_LOG_LEVEL", "info"),
		PrettyLog: mustBool("COVET_PRETTY_LOG", true),

		// Auth
		JWTSecret: requireEnv("COVET_JWT_SECRET"),
		TokenTTL:  mustDuration("COVET_TOKEN_TTL", 168*time.Hour),

		// MongoDB settings
		MongoURI:            requireEnv("COVET_MONGO_URI"),
		MongoDB:             getenv("COVET_MONGO_DB", "wishlist_app"),
		MongoUser:           getenv("COVET_MONGO_USERNAME", ""),
		MongoPassword:       getenv("COVET_MONGO_PASSWORD", ""),
		MongoDialTimeout:    mustDuration("MONGO_DIAL_TIMEOUT", 5*time.Second),
		MongoConnectTimeout: mustDuration("MONGO_CONNECT_TIMEOUT", 30*time.Second),
		MongoRetryInterval:  mustDuration("MONGO_RETRY_INTERVAL", 2*time.Second),
		MongoMaxWait:        mustDuration("MONGO_MAX_WAIT", 10*time.Second),
		MongoPingTimeout:    mustDuration("MONGO_PING_TIMEOUT", 5*time.Second),
		MongoWarnThreshold:  getenvInt("MONGO_WARN_THRESHOLD", 3),

		// Redis settings
		RedisAddr:           getenv("COVET_REDIS_ADDR", ""), // optional, empty = search cache disabled
		RedisUser:           getenv("COVET_REDIS_USERNAME", "default"),
		RedisPassword:       getenv("COVET_REDIS_PASSWORD", ""),
		RedisDB:             getenvInt("COVET_REDIS_DB", 0),
		RedisDT:             mustDuration("REDIS_DIAL_TIMEOUT", 5*time.Second),
		RedisRT:             mustDuration("REDIS_READ_TIMEOUT", 3*time.Second),
		RedisWT:             mustDuration("REDIS_WRITE_TIMEOUT", 3*time.Second),
		RedisMaxWait:        mustDuration("REDIS_MAX_WAIT", 10*time.Second),
		RedisPingTimeout:    mustDuration("REDIS_PING_TIMEOUT", 5*time.Second),
		RedisPoolSize:       getenvInt("REDIS_POOL_SIZE", 10),
		RedisConnectTimeout: mustDuration("REDIS_CONNECT_TIMEOUT", 30*time.Second),
		RedisRetryInterval:  mustDuration("REDIS_RETRY_INTERVAL", 2*time.Second),
		RedisWarnThreshold:  getenvInt("REDIS_WARN_THRESHOLD", 3),

		// Directory search
		SearchLimit:    getenvInt("COVET_SEARCH_LIMIT", 10),
		SearchCacheTTL: mustDuration("COVET_SEARCH_CACHE_TTL", time.Minute),
	}

	// Log config only in debug mode with redacted sensitive fields
	if cfg.LogLevel == "debug" {
		cfgCopy := *cfg
		cfgCopy.JWTSecret = "***REDACTED***"
		cfgCopy.MongoPassword = "***REDACTED***"
		cfgCopy.RedisPassword = "***REDACTED***"
		log.Printf("[DEBUG] cfg: %+v\n", cfgCopy)
	}

	return cfg
}

// helpers
func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func requireEnv(key string) string {
	v := os.Getenv(key)
	if v == "" {
		panic(fmt.Sprintf("❌ FATAL: Required environment variable %s is not set", key))
	}
	return v
}

func getenvInt(key string, def int) int {
	if v := os.Getenv(key); v != "" {
		if i, err := strconv.Atoi(v); err == nil {
			return i
		}
	}
	return def
}

func mustBool(key string, def bool) bool {
	if v := os.Getenv(key); v != "" {
		b, err := strconv.ParseBool(v)
		if err == nil {
			return b
		}
	}
	return def
}

func mustDuration(key string, def time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return def
}
