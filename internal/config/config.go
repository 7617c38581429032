package config

import (
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"
)

const (
	settingsPathEnv = "SETTINGS_PATH"
	planTTLEnv      = "PLAN_TTL_MINUTES"

	defaultPort            = "8080"
	defaultSettingsPath    = "config.json"
	defaultPlanTTLMinutes  = 30
	defaultOperationRetain = 60 * time.Minute
)

type Config struct {
	Port         string
	LogLevel     slog.Level
	SettingsPath string
	PlanTTL      time.Duration

	// OperationRetention is how long completed send operations stay readable.
	OperationRetention time.Duration

	Redis *RedisConfig
	PCO   *PCOConfig
	OSC   *OSCConfig
}

func Load() (*Config, error) {
	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
	}

	settingsPath := os.Getenv(settingsPathEnv)
	if settingsPath == "" {
		settingsPath = defaultSettingsPath
	}

	planTTL := defaultPlanTTLMinutes
	if v := os.Getenv(planTTLEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			planTTL = parsed
		}
	}

	redisConfig, err := LoadRedisConfig()
	if err != nil {
		return nil, err
	}

	pcoConfig, err := LoadPCOConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Port:               port,
		LogLevel:           parseLogLevel(os.Getenv("LOG_LEVEL")),
		SettingsPath:       settingsPath,
		PlanTTL:            time.Duration(planTTL) * time.Minute,
		OperationRetention: defaultOperationRetain,
		Redis:              redisConfig,
		PCO:                pcoConfig,
		OSC:                LoadOSCConfig(),
	}, nil
}

func parseLogLevel(level string) slog.Level {
	switch strings.ToLower(level) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
