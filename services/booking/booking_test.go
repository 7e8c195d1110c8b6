package booking

import (
	"context"
	"testing"

	accountRepo "homeserve/database/repository/account"
	bookingRepo "homeserve/database/repository/booking"
	providerRepo "homeserve/database/repository/provider"
	recordsRepo "homeserve/database/repository/records"
	"homeserve/models"
	"homeserve/services/identity"
	providerSvc "homeserve/services/provider"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type fixture struct {
	svc       *DefaultBookingService
	providers *providerSvc.DefaultProviderService
	accounts  accountRepo.AccountRepository
}

func newFixture() *fixture {
	store := recordsRepo.NewMemoryStore()
	provRepo := providerRepo.NewRecordProviderRepo(store)
	acctRepo := accountRepo.NewRecordAccountRepo(store)
	return &fixture{
		svc: &DefaultBookingService{
			Repo:      bookingRepo.NewRecordBookingRepo(store),
			Providers: provRepo,
			Accounts:  acctRepo,
		},
		providers: &providerSvc.DefaultProviderService{
			Repo: provRepo,
			Gate: identity.NewGate(identity.NewLocalProvider(store), zap.NewNop()),
		},
		accounts: acctRepo,
	}
}

// acceptedProvider registers, approves and accepts a provider.
func (f *fixture) acceptedProvider(t *testing.T, email string) *models.Provider {
	t.Helper()
	ctx := context.Background()
	prov, err := f.providers.Register(ctx, providerSvc.RegistrationRequest{
		FirstName:       "Pat",
		LastName:        "Smith",
		Email:           email,
		Phone:           "555-0100",
		Password:        "secret",
		ConfirmPassword: "secret",
		ServiceType:     "cleaning",
		Experience:      "3 years",
		Location:        "Springfield",
	})
	require.NoError(t, err)
	_, err = f.providers.Decide(ctx, prov.ID, models.ProviderApproved)
	require.NoError(t, err)
	accepted, err := f.providers.AcceptService(ctx, email)
	require.NoError(t, err)
	return accepted
}

func TestCreate_StartsPendingWithDefaults(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
		Date:          "2026-09-15",
		Time:          "10:00",
	})
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, b.Status)
	assert.Equal(t, models.PaymentCash, b.PaymentMethod)
	assert.Equal(t, "Cleaning", b.ServiceTitle)
	assert.False(t, b.IsPaid)
	assert.False(t, b.CreatedAt.IsZero())
	assert.NotEmpty(t, b.ID)
}

func TestCreate_UsesStoredPaymentPreference(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	_, err := f.accounts.UpdateByEmail(ctx, "customer@example.com", func(a *models.Account) error {
		a.PreferredPayment = models.PaymentCard
		return nil
	})
	require.NoError(t, err)

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCard, b.PaymentMethod)
}

func TestCreate_ProviderMustBeAccepting(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.providers.Register(ctx, providerSvc.RegistrationRequest{
		FirstName:       "Pat",
		LastName:        "Smith",
		Email:           "pending@example.com",
		Phone:           "555-0100",
		Password:        "secret",
		ConfirmPassword: "secret",
		ServiceType:     "cleaning",
		Experience:      "3 years",
		Location:        "Springfield",
	})
	require.NoError(t, err)

	_, err = f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pending@example.com",
	})
	assert.ErrorIs(t, err, ErrProviderNotAccepting)
}

func TestCreate_UnknownProvider(t *testing.T) {
	f := newFixture()
	_, err := f.svc.Create(context.Background(), CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "ghost@example.com",
	})
	assert.ErrorIs(t, err, providerRepo.ErrNotFound)
}

func TestUpdateStatus_CustomerMayOnlyCancel(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, b.ID, models.BookingConfirmed, models.RoleCustomer, "customer@example.com")
	assert.ErrorIs(t, err, ErrActorNotAllowed)

	cancelled, err := f.svc.UpdateStatus(ctx, b.ID, models.BookingCancelled, models.RoleCustomer, "customer@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCancelled, cancelled.Status)
}

func TestUpdateStatus_TerminalRejectsFurtherMoves(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, b.ID, models.BookingCancelled, models.RoleCustomer, "customer@example.com")
	require.NoError(t, err)

	var transition *InvalidTransitionError
	_, err = f.svc.UpdateStatus(ctx, b.ID, models.BookingConfirmed, models.RoleProvider, "pro@example.com")
	require.ErrorAs(t, err, &transition)
	assert.Equal(t, models.BookingCancelled, transition.From)
}

func TestUpdateStatus_CompletionStampsDate(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, b.ID, models.BookingConfirmed, models.RoleProvider, "pro@example.com")
	require.NoError(t, err)

	done, err := f.svc.UpdateStatus(ctx, b.ID, models.BookingCompleted, models.RoleProvider, "pro@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.BookingCompleted, done.Status)
	require.NotNil(t, done.CompletedDate)
}

func TestUpdateStatus_CustomerCannotActOnAnotherCustomersBooking(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, b.ID, models.BookingCancelled, models.RoleCustomer, "intruder@example.com")
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	current, err := f.svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, current.Status)
}

func TestUpdateStatus_ProviderCannotActOnAnotherProvidersBooking(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")
	f.acceptedProvider(t, "other@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, b.ID, models.BookingConfirmed, models.RoleProvider, "other@example.com")
	assert.ErrorIs(t, err, ErrNotBookingProvider)

	current, err := f.svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.Equal(t, models.BookingPending, current.Status)
}

func TestUpdateStatus_AdminMayActOnAnyBooking(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)

	confirmed, err := f.svc.UpdateStatus(ctx, b.ID, models.BookingConfirmed, models.RoleAdmin, "admin@example.com")
	require.NoError(t, err)
	assert.Equal(t, models.BookingConfirmed, confirmed.Status)
}

func TestUpdateStatus_UnknownBooking(t *testing.T) {
	f := newFixture()
	_, err := f.svc.UpdateStatus(context.Background(), "no-such-id", models.BookingCancelled, models.RoleCustomer, "customer@example.com")
	assert.ErrorIs(t, err, bookingRepo.ErrNotFound)
}

func TestPay_ConfirmsAndMarksPaid(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)

	paid, err := f.svc.Pay(ctx, b.ID, "customer@example.com")
	require.NoError(t, err)
	assert.True(t, paid.IsPaid)
	assert.Equal(t, models.BookingConfirmed, paid.Status)

	_, err = f.svc.Pay(ctx, b.ID, "customer@example.com")
	assert.ErrorIs(t, err, ErrAlreadyPaid)
}

func TestPay_OwnerAndStateChecksRunBeforeTheDelay(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)

	_, err = f.svc.Pay(ctx, b.ID, "intruder@example.com")
	assert.ErrorIs(t, err, ErrNotBookingOwner)

	_, err = f.svc.UpdateStatus(ctx, b.ID, models.BookingCancelled, models.RoleCustomer, "customer@example.com")
	require.NoError(t, err)

	var transition *InvalidTransitionError
	_, err = f.svc.Pay(ctx, b.ID, "customer@example.com")
	assert.ErrorAs(t, err, &transition)
}

func TestPay_ContextCancelAbortsBeforeWrite(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)

	cancelled, cancel := context.WithCancel(ctx)
	cancel()
	_, err = f.svc.Pay(cancelled, b.ID, "customer@example.com")
	assert.ErrorIs(t, err, context.Canceled)

	current, err := f.svc.GetByID(ctx, b.ID)
	require.NoError(t, err)
	assert.False(t, current.IsPaid)
	assert.Equal(t, models.BookingPending, current.Status)
}

func TestViews_FullScenario(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)

	views, err := f.svc.ProviderViews(ctx, "pro@example.com")
	require.NoError(t, err)
	require.Len(t, views.Upcoming, 1)
	assert.Equal(t, b.ID, views.Upcoming[0].ID)
	assert.Equal(t, models.BookingPending, views.Upcoming[0].Status)
	assert.Equal(t, 1, views.Stats.Pending)
	assert.Empty(t, views.Past)
}

func TestViews_CancelMovesToPast(t *testing.T) {
	f := newFixture()
	ctx := context.Background()
	f.acceptedProvider(t, "pro@example.com")

	b, err := f.svc.Create(ctx, CreateRequest{
		CustomerEmail: "customer@example.com",
		ProviderEmail: "pro@example.com",
	})
	require.NoError(t, err)

	_, err = f.svc.UpdateStatus(ctx, b.ID, models.BookingCancelled, models.RoleCustomer, "customer@example.com")
	require.NoError(t, err)

	views, err := f.svc.CustomerViews(ctx, "customer@example.com")
	require.NoError(t, err)
	assert.Empty(t, views.Upcoming)
	require.Len(t, views.Past, 1)
	assert.Equal(t, 0, views.Stats.Pending)
	assert.Equal(t, 1, views.Stats.Cancelled)
}

func TestProviderViews_RequiresAcceptedProvider(t *testing.T) {
	f := newFixture()
	ctx := context.Background()

	_, err := f.providers.Register(ctx, providerSvc.RegistrationRequest{
		FirstName:       "Pat",
		LastName:        "Smith",
		Email:           "pending@example.com",
		Phone:           "555-0100",
		Password:        "secret",
		ConfirmPassword: "secret",
		ServiceType:     "cleaning",
		Experience:      "3 years",
		Location:        "Springfield",
	})
	require.NoError(t, err)

	_, err = f.svc.ProviderViews(ctx, "pending@example.com")
	assert.ErrorIs(t, err, ErrProviderNotAccepting)
}

func TestParsePrice(t *testing.T) {
	assert.Equal(t, 50.0, parsePrice("$50/hr"))
	assert.Equal(t, 12.5, parsePrice("12.5"))
	assert.Equal(t, 0.0, parsePrice("call us"))
	assert.Equal(t, 0.0, parsePrice(""))
}
