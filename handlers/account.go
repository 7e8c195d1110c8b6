package handlers

import (
	"net/http"

	"homeserve/middleware"
	"homeserve/models"
	"homeserve/services/user"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// AccountHandler exposes the per-account payment preference.
type AccountHandler struct {
	Svc user.UserService
}

func NewAccountHandler(svc user.UserService) *AccountHandler {
	return &AccountHandler{Svc: svc}
}

// GetPaymentPreference returns the signed-in account's payment method.
func (h *AccountHandler) GetPaymentPreference(c *gin.Context) {
	method, err := h.Svc.GetPaymentPreference(c.Request.Context(), middleware.SessionEmail(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to fetch payment preference", err.Error())
		return
	}
	c.JSON(http.StatusOK, gin.H{"paymentMethod": method})
}

// SetPaymentPreference stores the signed-in account's payment method.
func (h *AccountHandler) SetPaymentPreference(c *gin.Context) {
	var input struct {
		PaymentMethod models.PaymentMethod `json:"paymentMethod"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	acct, err := h.Svc.SetPaymentPreference(c.Request.Context(), middleware.SessionEmail(c), input.PaymentMethod)
	if err != nil {
		if !input.PaymentMethod.Valid() {
			utils.JSONError(c, http.StatusBadRequest, "unknown payment method", string(input.PaymentMethod))
			return
		}
		utils.JSONError(c, http.StatusInternalServerError, "failed to update payment preference", err.Error())
		return
	}
	c.JSON(http.StatusOK, acct)
}
