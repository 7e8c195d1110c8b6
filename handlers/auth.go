package handlers

import (
	"errors"
	"net/http"

	"homeserve/middleware"
	"homeserve/models"
	"homeserve/services/identity"
	"homeserve/services/user"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// AuthHandler exposes registration, sign-in and sign-out.
type AuthHandler struct {
	Svc user.UserService
}

func NewAuthHandler(svc user.UserService) *AuthHandler {
	return &AuthHandler{Svc: svc}
}

// Register creates a customer account.
func (h *AuthHandler) Register(c *gin.Context) {
	var input struct {
		Email           string `json:"email"`
		Password        string `json:"password"`
		ConfirmPassword string `json:"confirmPassword"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	resp, err := h.Svc.RegisterCustomer(c.Request.Context(), input.Email, input.Password, input.ConfirmPassword)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resp)
}

// SignIn authenticates an existing account under the requested role.
func (h *AuthHandler) SignIn(c *gin.Context) {
	var input struct {
		Email    string      `json:"email"`
		Password string      `json:"password"`
		Role     models.Role `json:"role"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	if input.Role == "" {
		input.Role = models.RoleCustomer
	}

	resp, err := h.Svc.SignIn(c.Request.Context(), input.Email, input.Password, input.Role)
	if err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// SignOut terminates the caller's session.
func (h *AuthHandler) SignOut(c *gin.Context) {
	if err := h.Svc.SignOut(c.Request.Context(), middleware.SessionEmail(c)); err != nil {
		h.writeAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "signed out"})
}

func (h *AuthHandler) writeAuthError(c *gin.Context, err error) {
	var idErr *identity.Error
	if errors.As(err, &idErr) {
		switch idErr.Code {
		case identity.CodeEmailInUse:
			utils.JSONError(c, http.StatusConflict, "email already in use", idErr.Message)
		case identity.CodeInvalidCredentials, identity.CodeUserNotFound:
			utils.JSONError(c, http.StatusUnauthorized, "invalid credentials", "")
		case identity.CodeVisibilityUnavailable:
			utils.JSONError(c, http.StatusServiceUnavailable, "authentication temporarily unavailable", idErr.Message)
		default:
			utils.JSONError(c, http.StatusInternalServerError, "authentication failed", idErr.Message)
		}
		return
	}

	switch {
	case errors.Is(err, user.ErrPasswordMismatch):
		utils.JSONError(c, http.StatusBadRequest, "passwords do not match", "")
	case errors.Is(err, user.ErrNotAdmin):
		utils.JSONError(c, http.StatusForbidden, "not an administrator account", "")
	case errors.Is(err, user.ErrProviderPending):
		utils.JSONError(c, http.StatusForbidden, "provider application is pending approval", "")
	case errors.Is(err, user.ErrProviderRejected):
		utils.JSONError(c, http.StatusForbidden, "provider application was rejected", "")
	case errors.Is(err, user.ErrNoProviderAccount):
		utils.JSONError(c, http.StatusNotFound, "no provider account for this email", "")
	default:
		utils.JSONError(c, http.StatusInternalServerError, "authentication failed", err.Error())
	}
}
