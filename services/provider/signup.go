package provider

import (
	"context"
	"fmt"
	"strings"

	"homeserve/models"
)

// Register creates a new provider application together with the identity
// credential the provider signs in with. New providers always start in the
// pending state and wait for the administrative decision; the duplicate-email
// check happens atomically inside the repository mutation.
func (s *DefaultProviderService) Register(ctx context.Context, req RegistrationRequest) (*models.Provider, error) {
	if req.FirstName == "" || req.LastName == "" {
		return nil, fmt.Errorf("first and last name are required")
	}
	if strings.TrimSpace(req.Email) == "" {
		return nil, fmt.Errorf("email is required")
	}
	if req.Phone == "" {
		return nil, fmt.Errorf("phone number is required")
	}
	if req.Password == "" {
		return nil, fmt.Errorf("password is required")
	}
	if req.Password != req.ConfirmPassword {
		return nil, ErrPasswordMismatch
	}
	if req.Experience == "" {
		return nil, fmt.Errorf("experience is required")
	}
	if req.Location == "" {
		return nil, fmt.Errorf("service location is required")
	}

	category, ok := LookupCategory(req.ServiceType)
	if !ok {
		return nil, ErrUnknownServiceType
	}

	// The identity account is created first, so a provider record never
	// exists without a credential to sign in with.
	if err := s.Gate.SignUp(ctx, req.Email, req.Password); err != nil {
		return nil, err
	}

	provider := models.Provider{
		FirstName:          req.FirstName,
		LastName:           req.LastName,
		Email:              strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:              req.Phone,
		ServiceType:        category.ID,
		ServiceTitle:       category.Title,
		ServiceDescription: category.Description,
		Experience:         req.Experience,
		Location:           req.Location,
		Status:             models.ProviderPending,
	}

	if err := s.Repo.Create(ctx, &provider); err != nil {
		return nil, err
	}
	return &provider, nil
}
