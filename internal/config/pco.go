package config

import (
	"os"
	"strconv"
	"time"
)

const (
	pcoBaseURLEnv        = "PCO_BASE_URL"
	pcoTimeoutSecondsEnv = "PCO_TIMEOUT_SECONDS"
	planTimezoneEnv      = "PLAN_TIMEZONE"

	defaultPCOBaseURL        = "https://api.planningcenteronline.com/services/v2"
	defaultPCOTimeoutSeconds = 20
	defaultPlanTimezone      = "America/Chicago"
)

type PCOConfig struct {
	BaseURL  string
	Timeout  time.Duration
	Timezone string
	Location *time.Location
}

func LoadPCOConfig() (*PCOConfig, error) {
	baseURL := os.Getenv(pcoBaseURLEnv)
	if baseURL == "" {
		baseURL = defaultPCOBaseURL
	}

	timeoutSeconds := defaultPCOTimeoutSeconds
	if v := os.Getenv(pcoTimeoutSecondsEnv); v != "" {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			timeoutSeconds = parsed
		}
	}

	tz := os.Getenv(planTimezoneEnv)
	if tz == "" {
		tz = defaultPlanTimezone
	}

	loc, err := time.LoadLocation(tz)
	if err != nil {
		return nil, ErrInvalidTimezone
	}

	return &PCOConfig{
		BaseURL:  baseURL,
		Timeout:  time.Duration(timeoutSeconds) * time.Second,
		Timezone: tz,
		Location: loc,
	}, nil
}
