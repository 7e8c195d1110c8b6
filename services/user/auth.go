package user

import (
	"context"
	"fmt"
	"strings"

	"homeserve/config"
	providerRepo "homeserve/database/repository/provider"
	"homeserve/models"
	"homeserve/utils"
)

// RegisterCustomer creates the identity account and the customer account
// record, then issues a session token.
func (s *DefaultUserService) RegisterCustomer(ctx context.Context, email, password, confirmPassword string) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return nil, fmt.Errorf("email and password are required")
	}
	if password != confirmPassword {
		return nil, ErrPasswordMismatch
	}

	if err := s.Gate.SignUp(ctx, email, password); err != nil {
		return nil, err
	}
	if _, err := s.Accounts.Ensure(ctx, email); err != nil {
		return nil, err
	}

	return s.issue(email, models.RoleCustomer, "")
}

// SignIn authenticates against the identity gate and resolves the requested
// role: customers always resolve, providers must hold an approved or
// accepted application, and admins must be on the configured list. One
// session model covers all three roles.
func (s *DefaultUserService) SignIn(ctx context.Context, email, password string, role models.Role) (*AuthResponse, error) {
	email = strings.ToLower(strings.TrimSpace(email))

	var providerStatus models.ProviderStatus
	switch role {
	case models.RoleCustomer:
	case models.RoleAdmin:
		if !isAdminEmail(email) {
			return nil, ErrNotAdmin
		}
	case models.RoleProvider:
		prov, err := s.Providers.GetByEmail(ctx, email)
		if err == providerRepo.ErrNotFound {
			return nil, ErrNoProviderAccount
		}
		if err != nil {
			return nil, err
		}
		switch prov.Status {
		case models.ProviderApproved, models.ProviderAccepted:
			providerStatus = prov.Status
		case models.ProviderRejected:
			return nil, ErrProviderRejected
		default:
			return nil, ErrProviderPending
		}
	default:
		return nil, fmt.Errorf("unknown role %q", role)
	}

	if _, err := s.Gate.SignIn(ctx, email, password); err != nil {
		return nil, err
	}

	if role == models.RoleCustomer {
		if _, err := s.Accounts.Ensure(ctx, email); err != nil {
			return nil, err
		}
	}

	return s.issue(email, role, providerStatus)
}

// SignOut terminates the gate session for the given email.
func (s *DefaultUserService) SignOut(ctx context.Context, email string) error {
	return s.Gate.SignOut(ctx, email)
}

func (s *DefaultUserService) issue(email string, role models.Role, providerStatus models.ProviderStatus) (*AuthResponse, error) {
	token, err := utils.GenerateToken(utils.SessionClaims{
		Subject: email,
		Email:   email,
		Role:    role,
	}, s.tokenTTL())
	if err != nil {
		return nil, fmt.Errorf("failed to generate auth token: %w", err)
	}
	return &AuthResponse{
		Token:          token,
		Email:          email,
		Role:           role,
		ProviderStatus: providerStatus,
	}, nil
}

func isAdminEmail(email string) bool {
	for _, admin := range config.AdminEmailList() {
		if admin == email {
			return true
		}
	}
	return false
}
