package handler

import (
	"context"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/pco"
	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/settings"
)

type PCOHandler struct {
	source pco.PlanTimeSource
	store  *settings.Store
}

func NewPCOHandler(source pco.PlanTimeSource, store *settings.Store) *PCOHandler {
	return &PCOHandler{
		source: source,
		store:  store,
	}
}

type checkConnectionRequest struct {
	AppID  string `json:"pco_app_id"`
	Secret string `json:"pco_secret"`
}

// HandleCheckConnection tests the credentials in the body, or the stored
// ones when the body is empty.
func (h *PCOHandler) HandleCheckConnection(c *gin.Context) {
	ctx := c.Request.Context()

	var req checkConnectionRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondError(c, http.StatusBadRequest, "validation_error", err.Error())
			return
		}
	}

	creds := pco.Credentials{AppID: req.AppID, Secret: req.Secret}
	if !creds.Valid() {
		stored, err := storedCredentials(ctx, h.store)
		if err != nil {
			respondDomainError(c, err)
			return
		}
		creds = stored
	}

	if err := h.source.CheckConnection(ctx, creds); err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func (h *PCOHandler) HandleListServiceTypes(c *gin.Context) {
	ctx := c.Request.Context()

	creds, err := storedCredentials(ctx, h.store)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	types, err := h.source.ListServiceTypes(ctx, creds)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"service_types": types})
}

func (h *PCOHandler) HandleListPlans(c *gin.Context) {
	ctx := c.Request.Context()

	count := pco.DefaultPlanCount
	if raw := c.Query("count"); raw != "" {
		if parsed, err := strconv.Atoi(raw); err == nil && parsed > 0 {
			count = parsed
		}
	}

	creds, err := storedCredentials(ctx, h.store)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	plans, err := h.source.ListFuturePlans(ctx, creds, c.Param("stid"), count)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plans": plans})
}

func (h *PCOHandler) HandleListPlanTimes(c *gin.Context) {
	ctx := c.Request.Context()

	creds, err := storedCredentials(ctx, h.store)
	if err != nil {
		respondDomainError(c, err)
		return
	}

	times, err := h.source.ListPlanTimes(ctx, creds, c.Param("stid"), c.Param("pid"))
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"plan_times": times})
}

func storedCredentials(ctx context.Context, store *settings.Store) (pco.Credentials, error) {
	current, err := store.Load(ctx)
	if err != nil {
		return pco.Credentials{}, err
	}
	if !current.HasCredentials() {
		return pco.Credentials{}, pco.ErrMissingCredentials
	}
	return pco.Credentials{AppID: current.PCOAppID, Secret: current.PCOSecret}, nil
}
