package cmd

import (
	"os"
	"strconv"
	"time"
)

// Config holds configuration values for commands.
type Config struct {
	Port            string
	ProxyProtocol   bool
	CheckTimeout    time.Duration
	KeysFile        string
	Redis           redisConfig
	NATS            natsConfig
	RandomSeed      uint64
	ShutdownTimeout time.Duration
}

type redisConfig struct {
	Address  string
	Password string
	KeysHash string
}

type natsConfig struct {
	URL     string
	Subject string
}

// GetConfigFromEnvironment creates Config object based on the shell environment.
func GetConfigFromEnvironment() *Config {
	return &Config{
		Port:          env("PORT", "8080"),
		ProxyProtocol: envBool("PROXY_PROTOCOL", false),
		CheckTimeout:  envDuration("CHECK_TIMEOUT", 500*time.Millisecond),
		KeysFile:      env("KEYS_FILE", "/app/etc/keys.yml"),
		Redis: redisConfig{
			Address:  env("REDIS_ADDR", ""),
			Password: env("REDIS_PASSWORD", ""),
			KeysHash: env("REDIS_KEYS_HASH", "appstatus:keys"),
		},
		NATS: natsConfig{
			URL:     env("NATS_URL", ""),
			Subject: env("NATS_SUBJECT", "appstatus.report"),
		},
		RandomSeed:      envUint("RANDOM_SEED", 0),
		ShutdownTimeout: envDuration("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func env(key string, def string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}

	return def
}

func envUint(key string, def uint64) uint64 {
	if value, ok := os.LookupEnv(key); ok {
		u, err := strconv.ParseUint(value, 10, 64)
		if err != nil {
			return def
		}
		return u
	}

	return def
}

func envBool(key string, def bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		i, _ := strconv.ParseBool(value)
		return i
	}

	return def
}

func envDuration(key string, def time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok {
		d, err := time.ParseDuration(value)
		if err != nil {
			return def
		}
		return d
	}

	return def
}
