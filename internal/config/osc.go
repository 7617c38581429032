package config

import (
	"os"
	"strconv"
	"time"
)

const (
	oscMessageIntervalEnv = "OSC_MESSAGE_INTERVAL_MS"
	oscSendMaxAttemptsEnv = "OSC_SEND_MAX_ATTEMPTS"
	oscRetryBackoffEnv    = "OSC_RETRY_BACKOFF_MS"

	defaultOSCMessageIntervalMs = 200
	defaultOSCSendMaxAttempts   = 1
	defaultOSCRetryBackoffMs    = 100
)

type OSCConfig struct {
	// MessageInterval is the pause after each OSC message.
	MessageInterval time.Duration
	// MaxAttempts per entry; 1 disables retry.
	MaxAttempts  int
	RetryBackoff time.Duration
}

func LoadOSCConfig() *OSCConfig {
	interval := defaultOSCMessageIntervalMs
	if v := os.Getenv(oscMessageIntervalEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			interval = parsed
		}
	}

	maxAttempts := defaultOSCSendMaxAttempts
	if v := os.Getenv(oscSendMaxAttemptsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			maxAttempts = parsed
		}
	}

	backoff := defaultOSCRetryBackoffMs
	if v := os.Getenv(oscRetryBackoffEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			backoff = parsed
		}
	}

	return &OSCConfig{
		MessageInterval: time.Duration(interval) * time.Millisecond,
		MaxAttempts:     maxAttempts,
		RetryBackoff:    time.Duration(backoff) * time.Millisecond,
	}
}
