package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/domain"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/pco"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/settings"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/service/allocator"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/service/snapshot"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/service/transmit"
)

const (
	modeTimes = "times"
	modeCues  = "cues"
)

type SnapshotHandler struct {
	snapshotService *snapshot.Service
	source          pco.PlanTimeSource
	store           *settings.Store
	registry        *transmit.Registry
}

func NewSnapshotHandler(
	snapshotService *snapshot.Service,
	source pco.PlanTimeSource,
	store *settings.Store,
	registry *transmit.Registry,
) *SnapshotHandler {
	return &SnapshotHandler{
		snapshotService: snapshotService,
		source:          source,
		store:           store,
		registry:        registry,
	}
}

type buildPlanRequest struct {
	ServiceTypeID string   `json:"service_type_id" binding:"required"`
	PlanID        string   `json:"plan_id" binding:"required"`
	Mode          string   `json:"mode"`
	TimeIDs       []string `json:"time_ids"`
	HasExisting   bool     `json:"has_existing"`
	ExistingCount int      `json:"existing_count"`
}

type planView struct {
	ID            string                 `json:"id"`
	SourceKey     string                 `json:"source_key"`
	ExistingCount int                    `json:"existing_count"`
	FirstIndex    int                    `json:"first_index"`
	EntryCount    int                    `json:"entry_count"`
	Entries       []domain.SnapshotEntry `json:"entries"`
	BuiltAt       time.Time              `json:"built_at"`
}

func newPlanView(plan *domain.SnapshotPlan) planView {
	return planView{
		ID:            plan.ID(),
		SourceKey:     plan.SourceKey(),
		ExistingCount: plan.ExistingCount(),
		FirstIndex:    plan.FirstIndex(),
		EntryCount:    plan.Len(),
		Entries:       plan.Entries(),
		BuiltAt:       plan.BuiltAt(),
	}
}

// HandleBuildPlan resolves the selected plan times (or their cues) and
// builds a previewable plan from them.
func (h *SnapshotHandler) HandleBuildPlan(c *gin.Context) {
	ctx := c.Request.Context()

	var req buildPlanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}
	if req.Mode == "" {
		req.Mode = modeTimes
	}
	if req.Mode != modeTimes && req.Mode != modeCues {
		respondError(c, http.StatusBadRequest, "validation_error", errInvalidMode.Error())
		return
	}

	offset, err := allocator.Offset(req.HasExisting, req.ExistingCount)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	creds, err := storedCredentials(ctx, h.store)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	selection, err := h.resolveSelection(ctx, creds, req)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	sourceKey := req.ServiceTypeID + "/" + req.PlanID
	plan, err := h.snapshotService.BuildPlan(ctx, sourceKey, selection, offset, snapshot.Options{})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusCreated, newPlanView(plan))
}

func (h *SnapshotHandler) resolveSelection(ctx context.Context, creds pco.Credentials, req buildPlanRequest) ([]domain.PlanTime, error) {
	times, err := h.source.ListPlanTimes(ctx, creds, req.ServiceTypeID, req.PlanID)
	if err != nil {
		return nil, err
	}

	byID := make(map[string]domain.PlanTime, len(times))
	for _, t := range times {
		byID[t.ID] = t
	}

	selected := make([]domain.PlanTime, 0, len(req.TimeIDs))
	for _, id := range req.TimeIDs {
		t, ok := byID[id]
		if !ok {
			return nil, fmt.Errorf("%w: %s", errUnknownPlanTime, id)
		}
		selected = append(selected, t)
	}

	if req.Mode == modeTimes || len(req.TimeIDs) == 0 {
		return selected, nil
	}
	return h.source.ListCues(ctx, creds, req.ServiceTypeID, req.PlanID, req.TimeIDs)
}

func (h *SnapshotHandler) HandleGetPlan(c *gin.Context) {
	plan, err := h.snapshotService.GetPlan(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, newPlanView(plan))
}

type createTransmissionRequest struct {
	Host string `json:"host"`
	Port int    `json:"port"`
}

type transmissionResponse struct {
	Operation transmit.View `json:"operation"`
	Prompt    string        `json:"prompt,omitempty"`
}

// HandleCreateTransmission puts a new operation for the plan into the
// Confirming state. The destination defaults to the stored console address.
func (h *SnapshotHandler) HandleCreateTransmission(c *gin.Context) {
	ctx := c.Request.Context()

	var req createTransmissionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
	}

	plan, err := h.snapshotService.GetCurrentPlan(ctx, c.Param("id"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	dest := domain.NewDestination(req.Host, req.Port)
	if dest.Host == "" && dest.Port == 0 {
		current, err := h.store.Load(ctx)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		dest = current.Destination()
	}

	op, err := transmit.NewOperation(plan, dest)
	if err != nil {
		respondDomainError(c, err)
		return
	}
	if err := op.RequestConfirmation(); err != nil {
		respondDomainError(c, err)
		return
	}
	h.registry.Add(op)

	slog.InfoContext(ctx, "transmission awaiting confirmation",
		slog.String("operation_id", op.ID()),
		slog.String("plan_id", plan.ID()),
		slog.String("destination", dest.String()),
	)

	c.JSON(http.StatusCreated, transmissionResponse{
		Operation: op.View(),
		Prompt:    fmt.Sprintf("Send %d snapshot(s) to DiGiCo at %s?", plan.Len(), dest.String()),
	})
}
