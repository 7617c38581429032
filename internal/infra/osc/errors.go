package osc

import "errors"

var (
	ErrSessionClosed = errors.New("osc session closed")
)
