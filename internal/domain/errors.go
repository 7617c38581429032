package domain

import "errors"

var (
	ErrInvalidOffset       = errors.New("existing snapshot count must not be negative")
	ErrSelectionEmpty      = errors.New("no plan times selected")
	ErrOperationInProgress = errors.New("a send operation is already in progress for this destination")
	ErrPlanInProgress      = errors.New("snapshot plan is already being sent")
	ErrNotConfirmed        = errors.New("send requires explicit confirmation")
	ErrInvalidTransition   = errors.New("invalid operation state transition")
	ErrInvalidDestination  = errors.New("invalid console destination")
	ErrPlanNotFound        = errors.New("snapshot plan not found")
	ErrPlanSuperseded      = errors.New("snapshot plan superseded by a newer build")
	ErrOperationNotFound   = errors.New("send operation not found")
)
