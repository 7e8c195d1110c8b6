package provider

import (
	"context"
	"testing"

	providerRepo "homeserve/database/repository/provider"
	recordsRepo "homeserve/database/repository/records"
	"homeserve/models"
	"homeserve/services/identity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService() *DefaultProviderService {
	store := recordsRepo.NewMemoryStore()
	return &DefaultProviderService{
		Repo: providerRepo.NewRecordProviderRepo(store),
		Gate: identity.NewGate(identity.NewLocalProvider(store), zap.NewNop()),
	}
}

func validRegistration() RegistrationRequest {
	return RegistrationRequest{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "Jane.Doe@Example.com",
		Phone:           "555-0100",
		Password:        "secret",
		ConfirmPassword: "secret",
		ServiceType:     "plumbing",
		Experience:      "5 years",
		Location:        "Springfield",
	}
}

func TestRegister_StartsPending(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	prov, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)
	assert.Equal(t, models.ProviderPending, prov.Status)
	assert.Equal(t, "jane.doe@example.com", prov.Email)
	assert.Equal(t, "Plumbing", prov.ServiceTitle)
	assert.NotEmpty(t, prov.ID)

	// Retrievable by email regardless of the submitted casing.
	got, err := svc.GetByEmail(ctx, "JANE.DOE@example.com")
	require.NoError(t, err)
	assert.Equal(t, prov.ID, got.ID)
}

func TestRegister_DuplicateEmail(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	_, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	// The identity account already exists, so the second registration is
	// rejected before a second record can be written.
	var idErr *identity.Error
	_, err = svc.Register(ctx, validRegistration())
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, identity.CodeEmailInUse, idErr.Code)

	all, err := svc.GetAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestRegister_UnknownServiceType(t *testing.T) {
	svc := newTestService()

	req := validRegistration()
	req.ServiceType = "astrology"
	_, err := svc.Register(context.Background(), req)
	assert.ErrorIs(t, err, ErrUnknownServiceType)
}

func TestRegister_CreatesSignInCredential(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	prov, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	session, err := svc.Gate.SignIn(ctx, prov.Email, "secret")
	require.NoError(t, err)
	assert.Equal(t, prov.Email, session.Email)
}

func TestRegister_PasswordConfirmationMustMatch(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	req := validRegistration()
	req.ConfirmPassword = "different"
	_, err := svc.Register(ctx, req)
	assert.ErrorIs(t, err, ErrPasswordMismatch)

	// Nothing was created: neither the record nor the credential.
	_, err = svc.GetByEmail(ctx, req.Email)
	assert.ErrorIs(t, err, providerRepo.ErrNotFound)

	var idErr *identity.Error
	_, err = svc.Gate.SignIn(ctx, req.Email, "secret")
	require.ErrorAs(t, err, &idErr)
	assert.Equal(t, identity.CodeUserNotFound, idErr.Code)
}

func TestRegister_MissingFields(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	req := validRegistration()
	req.Email = "  "
	_, err := svc.Register(ctx, req)
	assert.Error(t, err)

	req = validRegistration()
	req.Phone = ""
	_, err = svc.Register(ctx, req)
	assert.Error(t, err)

	req = validRegistration()
	req.Password = ""
	req.ConfirmPassword = ""
	_, err = svc.Register(ctx, req)
	assert.Error(t, err)
}

func TestDecide_ApproveIsIdempotent(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	prov, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	first, err := svc.Decide(ctx, prov.ID, models.ProviderApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderApproved, first.Status)

	second, err := svc.Decide(ctx, prov.ID, models.ProviderApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderApproved, second.Status)
}

func TestDecide_IsReversible(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	prov, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, prov.ID, models.ProviderRejected)
	require.NoError(t, err)

	updated, err := svc.Decide(ctx, prov.ID, models.ProviderApproved)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderApproved, updated.Status)
}

func TestDecide_AcceptedIsNotAssignable(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	prov, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = svc.Decide(ctx, prov.ID, models.ProviderAccepted)
	assert.ErrorIs(t, err, ErrStatusNotAssignable)
}

func TestDecide_UnknownProvider(t *testing.T) {
	svc := newTestService()
	_, err := svc.Decide(context.Background(), "no-such-id", models.ProviderApproved)
	assert.ErrorIs(t, err, providerRepo.ErrNotFound)
}

func TestAcceptService_RequiresApproval(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	prov, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	_, err = svc.AcceptService(ctx, prov.Email)
	assert.ErrorIs(t, err, ErrNotApproved)

	_, err = svc.Decide(ctx, prov.ID, models.ProviderApproved)
	require.NoError(t, err)

	accepted, err := svc.AcceptService(ctx, prov.Email)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderAccepted, accepted.Status)

	// Accepting twice is a no-op.
	again, err := svc.AcceptService(ctx, prov.Email)
	require.NoError(t, err)
	assert.Equal(t, models.ProviderAccepted, again.Status)
}

func TestListAccepted_OnlyAcceptedVisible(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	first, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	req := validRegistration()
	req.Email = "other@example.com"
	_, err = svc.Register(ctx, req)
	require.NoError(t, err)

	_, err = svc.Decide(ctx, first.ID, models.ProviderApproved)
	require.NoError(t, err)
	_, err = svc.AcceptService(ctx, first.Email)
	require.NoError(t, err)

	visible, err := svc.ListAccepted(ctx)
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, first.ID, visible[0].ID)
}

func TestAttachDocument(t *testing.T) {
	svc := newTestService()
	ctx := context.Background()

	prov, err := svc.Register(ctx, validRegistration())
	require.NoError(t, err)

	updated, err := svc.AttachDocument(ctx, prov.Email, "https://cdn.example.com/doc.pdf")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.example.com/doc.pdf", updated.DocumentURL)
}
