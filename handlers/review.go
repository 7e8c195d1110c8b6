package handlers

import (
	"errors"
	"net/http"

	bookingRepo "homeserve/database/repository/booking"
	"homeserve/middleware"
	"homeserve/services/review"
	"homeserve/utils"

	"github.com/gin-gonic/gin"
)

// ReviewHandler exposes review submission and the per-provider listing.
type ReviewHandler struct {
	Svc review.ReviewService
}

func NewReviewHandler(svc review.ReviewService) *ReviewHandler {
	return &ReviewHandler{Svc: svc}
}

// Submit attaches a review to one of the customer's bookings.
func (h *ReviewHandler) Submit(c *gin.Context) {
	var req review.SubmitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "invalid input", err.Error())
		return
	}
	req.BookingID = c.Param("id")
	req.CustomerEmail = middleware.SessionEmail(c)

	rev, err := h.Svc.Submit(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, review.ErrRatingRequired):
			utils.JSONError(c, http.StatusBadRequest, "a rating between 1 and 5 is required", "")
		case errors.Is(err, bookingRepo.ErrNotFound):
			utils.JSONError(c, http.StatusNotFound, "booking not found", "")
		case errors.Is(err, review.ErrNotBookingOwner):
			utils.JSONError(c, http.StatusForbidden, "booking belongs to another customer", "")
		case errors.Is(err, review.ErrAlreadyReviewed):
			utils.JSONError(c, http.StatusConflict, "booking has already been reviewed", "")
		default:
			utils.JSONError(c, http.StatusInternalServerError, "failed to submit review", err.Error())
		}
		return
	}
	c.JSON(http.StatusCreated, rev)
}

// ListByProvider returns the reviews left for a provider.
func (h *ReviewHandler) ListByProvider(c *gin.Context) {
	reviews, err := h.Svc.ListByProvider(c.Request.Context(), c.Param("email"))
	if err != nil {
		utils.JSONError(c, http.StatusInternalServerError, "failed to list reviews", err.Error())
		return
	}
	c.JSON(http.StatusOK, reviews)
}
