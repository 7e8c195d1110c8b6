package booking

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"time"

	accountRepo "homeserve/database/repository/account"
	"homeserve/models"

	"go.uber.org/zap"
)

// Create appends a new booking. Bookings always start pending, carry a
// creation timestamp, and default their payment method from the customer's
// stored preference, falling back to cash.
func (s *DefaultBookingService) Create(ctx context.Context, req CreateRequest) (*models.Booking, error) {
	if strings.TrimSpace(req.CustomerEmail) == "" {
		return nil, fmt.Errorf("customer email is required")
	}
	if strings.TrimSpace(req.ProviderEmail) == "" {
		return nil, fmt.Errorf("provider email is required")
	}

	prov, err := s.Providers.GetByEmail(ctx, req.ProviderEmail)
	if err != nil {
		return nil, err
	}
	if !prov.CanReceiveBookings() {
		return nil, ErrProviderNotAccepting
	}

	method := req.PaymentMethod
	if method == "" {
		method = s.preferredPayment(ctx, req.CustomerEmail)
	}
	if !method.Valid() {
		return nil, fmt.Errorf("unknown payment method %q", method)
	}

	b := models.Booking{
		CustomerEmail: req.CustomerEmail,
		ProviderEmail: prov.Email,
		ServiceTitle:  prov.ServiceTitle,
		Date:          req.Date,
		Time:          req.Time,
		Location:      req.Location,
		Price:         parsePrice(prov.ServicePrice),
		PaymentMethod: method,
		Status:        models.BookingPending,
		CreatedAt:     time.Now().UTC(),
	}

	if err := s.Repo.Append(ctx, &b); err != nil {
		return nil, err
	}

	zap.L().Info("booking created",
		zap.String("booking", b.ID),
		zap.String("customer", b.CustomerEmail),
		zap.String("provider", b.ProviderEmail))
	return &b, nil
}

// GetByID returns the booking with the given id.
func (s *DefaultBookingService) GetByID(ctx context.Context, id string) (*models.Booking, error) {
	return s.Repo.GetByID(ctx, id)
}

func (s *DefaultBookingService) preferredPayment(ctx context.Context, customerEmail string) models.PaymentMethod {
	acct, err := s.Accounts.GetByEmail(ctx, customerEmail)
	if err == accountRepo.ErrNotFound {
		return models.PaymentCash
	}
	if err != nil {
		zap.L().Warn("failed to read payment preference, defaulting to cash", zap.Error(err))
		return models.PaymentCash
	}
	if acct.PreferredPayment.Valid() {
		return acct.PreferredPayment
	}
	return models.PaymentCash
}

// parsePrice extracts the first numeric amount from a price string such as
// "$50/hr"; unparseable prices read as zero.
func parsePrice(price string) float64 {
	start := -1
	for i := 0; i < len(price); i++ {
		if price[i] >= '0' && price[i] <= '9' {
			start = i
			break
		}
	}
	if start < 0 {
		return 0
	}
	end := start
	dot := false
	for end < len(price) {
		c := price[end]
		if c >= '0' && c <= '9' {
			end++
			continue
		}
		if c == '.' && !dot {
			dot = true
			end++
			continue
		}
		break
	}
	value, err := strconv.ParseFloat(strings.TrimSuffix(price[start:end], "."), 64)
	if err != nil {
		return 0
	}
	return value
}
