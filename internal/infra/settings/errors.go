package settings

import "errors"

var (
	ErrInvalidPort     = errors.New("digico_port must be a number")
	ErrInvalidSettings = errors.New("settings file is not valid JSON or YAML")
)
