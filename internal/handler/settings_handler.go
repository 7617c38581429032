package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/KasumiMercury/digico-snapshot-builder/internal/infra/settings"
)

type SettingsHandler struct {
	store *settings.Store
}

func NewSettingsHandler(store *settings.Store) *SettingsHandler {
	return &SettingsHandler{
		store: store,
	}
}

func (h *SettingsHandler) HandleGetSettings(c *gin.Context) {
	current, err := h.store.Load(c.Request.Context())
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, current.Masked())
}

// HandlePutSettings replaces the settings file. A blank or masked secret
// keeps the stored one.
func (h *SettingsHandler) HandlePutSettings(c *gin.Context) {
	ctx := c.Request.Context()

	var req settings.Settings
	if err := c.ShouldBindJSON(&req); err != nil {
		slog.WarnContext(ctx, "settings request rejected",
			slog.String("error", err.Error()),
		)
		if errors.Is(err, settings.ErrInvalidPort) {
			respondDomainError(c, err)
			return
		}
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	updated, err := h.store.Update(ctx, func(s *settings.Settings) {
		secret := s.PCOSecret
		if req.PCOSecret != "" && req.PCOSecret != settings.MaskedSecret {
			secret = req.PCOSecret
		}
		*s = req
		s.PCOSecret = secret
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated.Masked())
}

type serviceTypeRequest struct {
	ID   string `json:"id" binding:"required"`
	Name string `json:"name"`
}

// HandlePutServiceType persists the selected service type only.
func (h *SettingsHandler) HandlePutServiceType(c *gin.Context) {
	var req serviceTypeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "validation_error", err.Error())
		return
	}

	updated, err := h.store.Update(c.Request.Context(), func(s *settings.Settings) {
		s.ServiceType = &settings.ServiceType{ID: req.ID, Name: req.Name}
	})
	if err != nil {
		respondDomainError(c, err)
		return
	}

	c.JSON(http.StatusOK, updated.Masked())
}
