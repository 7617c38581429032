package pco

import "errors"

var (
	ErrMissingCredentials = errors.New("planning center app id and secret are required")
	ErrUnauthorized       = errors.New("planning center rejected the credentials")
	ErrUnexpectedStatus   = errors.New("unexpected status code from planning center")
	ErrRequestFailed      = errors.New("planning center request failed")
	ErrInvalidResponse    = errors.New("invalid response from planning center")
)
