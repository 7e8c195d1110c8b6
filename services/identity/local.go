package identity

import (
	"context"
	"strings"
	"time"

	recordsRepo "homeserve/database/repository/records"

	"golang.org/x/crypto/bcrypt"
)

// credential is a stored local account: email plus bcrypt password hash.
type credential struct {
	Email        string    `json:"email"`
	PasswordHash string    `json:"passwordHash"`
	CreatedAt    time.Time `json:"createdAt"`
}

const credentialsCollection = "credentials"

type localProvider struct {
	coll *recordsRepo.Collection[credential]
}

// NewLocalProvider returns a Provider holding credentials in the record
// store, with bcrypt password hashes. It is the default backend and the one
// used in tests.
func NewLocalProvider(store recordsRepo.Store) Provider {
	return &localProvider{
		coll: recordsRepo.NewCollection[credential](store, credentialsCollection),
	}
}

func (p *localProvider) CreateAccount(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return NewError(CodeInvalidCredentials, "email and password are required")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	_, err = p.coll.Mutate(ctx, func(items []credential) ([]credential, error) {
		for _, c := range items {
			if c.Email == email {
				return nil, NewError(CodeEmailInUse, "an account already exists for "+email)
			}
		}
		return append(items, credential{
			Email:        email,
			PasswordHash: string(hash),
			CreatedAt:    time.Now().UTC(),
		}), nil
	})
	return err
}

func (p *localProvider) SignIn(ctx context.Context, email, password string) error {
	email = strings.ToLower(strings.TrimSpace(email))
	items, _, err := p.coll.Load(ctx)
	if err != nil {
		return err
	}
	for _, c := range items {
		if c.Email != email {
			continue
		}
		if bcrypt.CompareHashAndPassword([]byte(c.PasswordHash), []byte(password)) != nil {
			return NewError(CodeInvalidCredentials, "invalid email or password")
		}
		return nil
	}
	return NewError(CodeUserNotFound, "no account found for "+email)
}

func (p *localProvider) SignOut(context.Context, string) error {
	return nil
}
