package handler

import "errors"

var (
	errUnknownPlanTime = errors.New("selected plan time does not belong to the plan")
	errInvalidMode     = errors.New("mode must be \"times\" or \"cues\"")
)
