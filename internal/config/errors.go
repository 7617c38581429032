package config

import "errors"

var (
	ErrRedisAddrMissing   = errors.New("REDIS_ADDR is required")
	ErrInvalidRedisDB     = errors.New("REDIS_DB must be a valid integer")
	ErrInvalidTimezone    = errors.New("PLAN_TIMEZONE must be a valid IANA time zone")
	ErrSettingsPathEmpty  = errors.New("SETTINGS_PATH must not be empty")
	ErrPCOBaseURLMissing  = errors.New("PCO_BASE_URL is required")
	ErrInvalidMaxAttempts = errors.New("OSC_SEND_MAX_ATTEMPTS must be at least 1")
)
