package handlers

import (
	"errors"
	"net/http"
	"os"
	"path/filepath"

	providerRepo "homeserve/database/repository/provider"
	"homeserve/middleware"
	"homeserve/services/identity"
	"homeserve/services/provider"
	"homeserve/services/storage"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// ProviderHandler exposes the provider lifecycle: registration, catalog,
// public listing and the authenticated provider's own endpoints.
type ProviderHandler struct {
	Svc        provider.ProviderService
	StorageSvc storage.StorageService
}

func NewProviderHandler(svc provider.ProviderService, storageSvc storage.StorageService) *ProviderHandler {
	return &ProviderHandler{Svc: svc, StorageSvc: storageSvc}
}

// Register files a provider application; the new record starts pending.
func (h *ProviderHandler) Register(c *gin.Context) {
	var req provider.RegistrationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	prov, err := h.Svc.Register(c.Request.Context(), req)
	if err != nil {
		var idErr *identity.Error
		switch {
		case errors.Is(err, providerRepo.ErrDuplicateEmail):
			utils.JSONError(c, http.StatusConflict, "a provider with this email already exists", "")
		case errors.As(err, &idErr) && idErr.Code == identity.CodeEmailInUse:
			utils.JSONError(c, http.StatusConflict, "an account already exists for this email", "")
		case errors.Is(err, provider.ErrPasswordMismatch):
			utils.JSONError(c, http.StatusBadRequest, "passwords do not match", "")
		case errors.Is(err, provider.ErrUnknownServiceType):
			utils.JSONError(c, http.StatusBadRequest, "unknown service type", req.ServiceType)
		default:
			utils.JSONError(c, http.StatusBadRequest, "registration failed", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, prov)
}

// ListAccepted returns the providers visible to customers.
func (h *ProviderHandler) ListAccepted(c *gin.Context) {
	providers, err := h.Svc.ListAccepted(c.Request.Context())
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list providers", err.Error())
		return
	}
	c.JSON(http.StatusOK, providers)
}

// Categories returns the service catalog.
func (h *ProviderHandler) Categories(c *gin.Context) {
	c.JSON(http.StatusOK, provider.ServiceCategories)
}

// GetByEmail returns a single provider's public profile.
func (h *ProviderHandler) GetByEmail(c *gin.Context) {
	prov, err := h.Svc.GetByEmail(c.Request.Context(), c.Param("email"))
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "provider not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, prov)
}

// Profile returns the authenticated provider's own record.
func (h *ProviderHandler) Profile(c *gin.Context) {
	email := middleware.SessionEmail(c)
	prov, err := h.Svc.GetByEmail(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "provider not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch provider", err.Error())
		return
	}
	c.JSON(http.StatusOK, prov)
}

// Status returns the authenticated provider's application status.
func (h *ProviderHandler) Status(c *gin.Context) {
	email := middleware.SessionEmail(c)
	status, err := h.Svc.Status(c.Request.Context(), email)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "provider not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch status", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// Accept records the approved provider's opt-in to receive bookings.
func (h *ProviderHandler) Accept(c *gin.Context) {
	email := middleware.SessionEmail(c)
	prov, err := h.Svc.AcceptService(c.Request.Context(), email)
	if err != nil {
		switch {
		case errors.Is(err, providerRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "provider not found", "")
		case errors.Is(err, provider.ErrNotApproved):
			utils.JSONError(c, http.StatusConflict, "provider is not approved yet", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to accept service", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, prov)
}

// UploadDocument stores the provider's qualification document and attaches
// its URL to the provider record.
func (h *ProviderHandler) UploadDocument(c *gin.Context) {
	if h.StorageSvc == nil {
		utils.JSONError(c, http.StatusServiceUnavailable, "document storage is not configured", "")
		return
	}
	email := middleware.SessionEmail(c)

	fileHeader, err := c.FormFile("file")
	if err != nil {
		utils.JSONError(c, http.StatusBadRequest, "file not provided", err.Error())
		return
	}

	tempFilePath := filepath.Join(os.TempDir(), fileHeader.Filename)
	if err := c.SaveUploadedFile(fileHeader, tempFilePath); err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to save file", err.Error())
		return
	}
	defer os.Remove(tempFilePath)

	publicID, err := h.StorageSvc.UploadFile(c.Request.Context(), tempFilePath, "qualifications")
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to upload document", err.Error())
		return
	}
	documentURL, err := h.StorageSvc.GetDownloadURL(c.Request.Context(), publicID)
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to resolve document URL", err.Error())
		return
	}

	prov, err := h.Svc.AttachDocument(c.Request.Context(), email, documentURL)
	if err != nil {
		if errors.Is(err, providerRepo.ErrNotFound) {
			utils.JSONError(c, http.StatusNotFound, "provider not found", "")
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to attach document", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":     "document uploaded",
		"documentURL": prov.DocumentURL,
	})
}
