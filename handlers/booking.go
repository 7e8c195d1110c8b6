package handlers

import (
	"errors"
	"net/http"

	bookingRepo "homeserve/database/repository/booking"
	providerRepo "homeserve/database/repository/provider"
	"homeserve/middleware"
	"homeserve/models"
	"homeserve/services/booking"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// BookingHandler exposes the booking lifecycle for customers and providers.
type BookingHandler struct {
	Svc booking.BookingService
}

func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Svc: svc}
}

// Create books an accepted provider on behalf of the signed-in customer.
func (h *BookingHandler) Create(c *gin.Context) {
	var req booking.CreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.CustomerEmail = middleware.SessionEmail(c)

	b, err := h.Svc.Create(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, providerRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "provider not found", "")
		case errors.Is(err, booking.ErrProviderNotAccepting):
			utils.JSONError(c, http.StatusConflict, "provider is not accepting bookings", "")
		default:
			utils.JSONError(c, http.StatusBadRequest, "failed to create booking", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, b)
}

// CustomerViews returns the signed-in customer's upcoming/past split.
func (h *BookingHandler) CustomerViews(c *gin.Context) {
	views, err := h.Svc.CustomerViews(c.Request.Context(), middleware.SessionEmail(c))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		return
	}
	c.JSON(http.StatusOK, views)
}

// ProviderViews returns the signed-in provider's upcoming/past split.
func (h *BookingHandler) ProviderViews(c *gin.Context) {
	views, err := h.Svc.ProviderViews(c.Request.Context(), middleware.SessionEmail(c))
	if err != nil {
		switch {
		case errors.Is(err, providerRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "provider not found", "")
		case errors.Is(err, booking.ErrProviderNotAccepting):
			utils.JSONError(c, http.StatusForbidden, "provider has not accepted their service", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to list bookings", err.Error())
		}
		return
	}
	c.JSON(http.StatusOK, views)
}

// UpdateStatus moves a booking along its lifecycle on behalf of the
// session's role.
func (h *BookingHandler) UpdateStatus(c *gin.Context) {
	var input struct {
		Status models.BookingStatus `json:"status"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}

	role := models.RoleCustomer
	if v, ok := c.Get(middleware.CtxRole); ok {
		if r, ok := v.(models.Role); ok {
			role = r
		}
	}

	b, err := h.Svc.UpdateStatus(c.Request.Context(), c.Param("id"), input.Status, role, middleware.SessionEmail(c))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

// Pay runs the payment for the signed-in customer's booking and confirms it.
func (h *BookingHandler) Pay(c *gin.Context) {
	b, err := h.Svc.Pay(c.Request.Context(), c.Param("id"), middleware.SessionEmail(c))
	if err != nil {
		h.writeBookingError(c, err)
		return
	}
	c.JSON(http.StatusOK, b)
}

func (h *BookingHandler) writeBookingError(c *gin.Context, err error) {
	var transition *booking.InvalidTransitionError
	switch {
	case errors.Is(err, bookingRepo.ErrNotFound):
		utils.JSONError(c, http.StatusNotFound, "booking not found", "")
	case errors.Is(err, booking.ErrNotBookingOwner):
		utils.JSONError(c, http.StatusForbidden, "booking belongs to another customer", "")
	case errors.Is(err, booking.ErrNotBookingProvider):
		utils.JSONError(c, http.StatusForbidden, "booking is addressed to another provider", "")
	case errors.Is(err, booking.ErrActorNotAllowed):
		utils.JSONError(c, http.StatusForbidden, "status change not allowed for this role", "")
	case errors.Is(err, booking.ErrAlreadyPaid):
		utils.JSONError(c, http.StatusConflict, "booking is already paid", "")
	case errors.As(err, &transition):
		utils.JSONError(c, http.StatusConflict, "invalid status transition", transition.Error())
	default:
		utils.JSONError(c, http.StatusInternalServerError, "booking operation failed", err.Error())
	}
}
