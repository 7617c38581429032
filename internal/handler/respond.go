package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/pco"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/settings"
)

type errorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

func respondError(c *gin.Context, status int, errType, message string) {
	c.AbortWithStatusJSON(status, errorResponse{
		Error:   errType,
		Message: message,
	})
}

// respondDomainError maps known errors to a status and error type.
func respondDomainError(c *gin.Context, err error) {
	status, errType := classifyError(err)
	if status >= http.StatusInternalServerError {
		slog.ErrorContext(c.Request.Context(), "request failed",
			slog.String("path", c.FullPath()),
			slog.String("error", err.Error()),
		)
	}
	respondError(c, status, errType, err.Error())
}

func classifyError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidOffset):
		return http.StatusBadRequest, "invalid_offset"
	case errors.Is(err, domain.ErrSelectionEmpty):
		return http.StatusBadRequest, "selection_empty"
	case errors.Is(err, domain.ErrInvalidDestination):
		return http.StatusBadRequest, "invalid_destination"
	case errors.Is(err, errUnknownPlanTime):
		return http.StatusBadRequest, "unknown_plan_time"
	case errors.Is(err, settings.ErrInvalidPort):
		return http.StatusBadRequest, "invalid_port"
	case errors.Is(err, pco.ErrMissingCredentials):
		return http.StatusBadRequest, "missing_credentials"

	case errors.Is(err, domain.ErrPlanNotFound):
		return http.StatusNotFound, "plan_not_found"
	case errors.Is(err, domain.ErrOperationNotFound):
		return http.StatusNotFound, "operation_not_found"

	case errors.Is(err, domain.ErrOperationInProgress):
		return http.StatusConflict, "operation_in_progress"
	case errors.Is(err, domain.ErrPlanInProgress):
		return http.StatusConflict, "plan_in_progress"
	case errors.Is(err, domain.ErrNotConfirmed):
		return http.StatusConflict, "not_confirmed"
	case errors.Is(err, domain.ErrInvalidTransition):
		return http.StatusConflict, "invalid_transition"
	case errors.Is(err, domain.ErrPlanSuperseded):
		return http.StatusConflict, "plan_superseded"

	case errors.Is(err, pco.ErrUnauthorized),
		errors.Is(err, pco.ErrUnexpectedStatus),
		errors.Is(err, pco.ErrRequestFailed),
		errors.Is(err, pco.ErrInvalidResponse):
		return http.StatusBadGateway, "upstream_error"

	default:
		return http.StatusInternalServerError, "internal_error"
	}
}
