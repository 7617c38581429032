package handler

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/service/snapshot"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/service/transmit"
)

type TransmissionHandler struct {
	coordinator     *transmit.Coordinator
	snapshotService *snapshot.Service
	registry        *transmit.Registry
}

func NewTransmissionHandler(
	coordinator *transmit.Coordinator,
	snapshotService *snapshot.Service,
	registry *transmit.Registry,
) *TransmissionHandler {
	return &TransmissionHandler{
		coordinator:     coordinator,
		snapshotService: snapshotService,
		registry:        registry,
	}
}

func (h *TransmissionHandler) HandleGetTransmission(c *gin.Context) {
	op, err := h.registry.Get(c.Param("opid"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, transmissionResponse{Operation: op.View()})
}

// HandleAbandon backs out of a Confirming operation. Nothing is sent.
func (h *TransmissionHandler) HandleAbandon(c *gin.Context) {
	op, err := h.registry.Get(c.Param("opid"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if err := op.Abandon(); err != nil {
		respondDomainError(c, err)
		return
	}
	h.registry.Remove(op.ID())

	slog.InfoContext(c.Request.Context(), "transmission abandoned",
		slog.String("operation_id", op.ID()),
	)

	c.JSON(http.StatusOK, transmissionResponse{Operation: op.View()})
}

// HandleSend sends a confirmed operation. A plan rebuilt since confirmation
// is refused. With async=true it returns 202 immediately and the result is
// read with HandleGetTransmission.
func (h *TransmissionHandler) HandleSend(c *gin.Context) {
	ctx := c.Request.Context()

	op, err := h.registry.Get(c.Param("opid"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	if err := h.snapshotService.EnsureCurrent(ctx, op.Plan()); err != nil {
		respondDomainError(c, err)
		return
	}

	if c.Query("async") == "true" {
		if err := h.coordinator.StartPlan(ctx, op); err != nil {
			respondDomainError(c, err)
			return
		}
		c.JSON(http.StatusAccepted, transmissionResponse{Operation: op.View()})
		return
	}

	if _, err := h.coordinator.SendPlan(ctx, op); err != nil {
		if status, _ := classifyError(err); status < http.StatusInternalServerError {
			respondDomainError(c, err)
			return
		}
		// The console session could not be opened; the operation carries the error.
		slog.ErrorContext(ctx, "transmission setup failed",
			slog.String("operation_id", op.ID()),
			slog.String("error", err.Error()),
		)
		c.JSON(http.StatusBadGateway, transmissionResponse{Operation: op.View()})
		return
	}

	c.JSON(http.StatusOK, transmissionResponse{Operation: op.View()})
}
