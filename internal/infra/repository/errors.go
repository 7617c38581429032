package repository

import "errors"

var (
	ErrRedisConnection = errors.New("redis connection error")
	ErrInvalidPlanData = errors.New("invalid plan data")
)
