package user

import (
	"context"
	"fmt"

	accountRepo "homeserve/database/repository/account"
	"homeserve/models"
)

// GetPaymentPreference returns the account's preferred payment method,
// defaulting to cash when unset or when no account exists yet.
func (s *DefaultUserService) GetPaymentPreference(ctx context.Context, email string) (models.PaymentMethod, error) {
	acct, err := s.Accounts.GetByEmail(ctx, email)
	if err == accountRepo.ErrNotFound {
		return models.PaymentCash, nil
	}
	if err != nil {
		return "", err
	}
	if acct.PreferredPayment.Valid() {
		return acct.PreferredPayment, nil
	}
	return models.PaymentCash, nil
}

// SetPaymentPreference stores the preferred payment method on the account,
// creating the account record if needed.
func (s *DefaultUserService) SetPaymentPreference(ctx context.Context, email string, method models.PaymentMethod) (*models.Account, error) {
	if !method.Valid() {
		return nil, fmt.Errorf("unknown payment method %q", method)
	}
	return s.Accounts.UpdateByEmail(ctx, email, func(a *models.Account) error {
		a.PreferredPayment = method
		return nil
	})
}
