package handlers

import (
	"errors"
	"net/http"

	providerRepo "homeserve/database/repository/provider"
	"homeserve/models"
	"homeserve/services/provider"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// AdminHandler exposes the administrative provider review queue.
type AdminHandler struct {
	Providers provider.ProviderService
}

func NewAdminHandler(providers provider.ProviderService) *AdminHandler {
	return &AdminHandler{Providers: providers}
}

// ListProviders returns every provider application, optionally filtered by
// status via the "status" query parameter.
func (h *AdminHandler) ListProviders(c *gin.Context) {
	providers, err := h.Providers.GetAll(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list providers", err.Error())
		return
	}

	if status := models.ProviderStatus(c.Query("status")); status != "" {
		filtered := make([]models.Provider, 0, len(providers))
		for _, p := range providers {
			if p.Status == status {
				filtered = append(filtered, p)
			}
		}
		providers = filtered
	}
	c.JSON(http.StatusOK, providers)
}

// DecideStatus records the administrative approve/reject decision.
func (h *AdminHandler) DecideStatus(c *gin.Context) {
	var input struct {
		Status models.ProviderStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	prov, err := h.Providers.Decide(c.Request.Context(), c.Param("id"), input.Status)
	if err != nil {
		switch {
		case errors.Is(err, providerRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "provider not found", "")
		case errors.Is(err, provider.ErrStatusNotAssignable):
			utils.JSONError(c, http.StatusBadRequest, "status cannot be assigned by an administrator", string(input.Status))
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to update provider status", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, prov)
}
