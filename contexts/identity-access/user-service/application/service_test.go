package application

import (
	"context"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	domainerrors "webshop/contexts/identity-access/user-service/domain/errors"
	"webshop/contexts/identity-access/user-service/adapters/memory"
	"webshop/contexts/identity-access/user-service/ports"
)

type capturingPublisher struct {
	events []ports.UserRegisteredEvent
}

func (p *capturingPublisher) PublishUserRegistered(_ context.Context, event ports.UserRegisteredEvent) error {
	p.events = append(p.events, event)
	return nil
}

func newService(seed []ports.User) (Service, *capturingPublisher) {
	store := memory.NewStore(seed)
	publisher := &capturingPublisher{}
	return Service{Repo: store, Clock: store, IDGen: store, Events: publisher}, publisher
}

func TestRegisterForcesCustomerRoleAndPublishes(t *testing.T) {
	service, publisher := newService(nil)

	created, err := service.Register(context.Background(), ports.RegisterUserInput{
		Name:     "Alice",
		Email:    "Alice@Example.com",
		Password: "long-enough-password",
	})
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if created.Role != ports.RoleCustomer {
		t.Fatalf("expected customer role, got %s", created.Role)
	}
	if created.Email != "alice@example.com" {
		t.Fatalf("expected lowercased email, got %s", created.Email)
	}
	if created.UserID == "" {
		t.Fatal("expected a generated id")
	}
	if len(publisher.events) != 1 || publisher.events[0].UserID != created.UserID {
		t.Fatalf("expected one registration event, got %+v", publisher.events)
	}
}

func TestRegisterValidation(t *testing.T) {
	service, _ := newService(nil)
	ctx := context.Background()

	cases := []struct {
		name  string
		input ports.RegisterUserInput
		want  error
	}{
		{"missing name", ports.RegisterUserInput{Email: "a@b.co", Password: "long-enough-password"}, domainerrors.ErrMissingName},
		{"missing email", ports.RegisterUserInput{Name: "A", Password: "long-enough-password"}, domainerrors.ErrMissingEmail},
		{"missing password", ports.RegisterUserInput{Name: "A", Email: "a@b.co"}, domainerrors.ErrMissingPassword},
		{"invalid email", ports.RegisterUserInput{Name: "A", Email: "not-an-email", Password: "long-enough-password"}, domainerrors.ErrInvalidEmail},
		{"short password", ports.RegisterUserInput{Name: "A", Email: "a@b.co", Password: "123456789"}, domainerrors.ErrPasswordTooShort},
	}
	for _, tc := range cases {
		if _, err := service.Register(ctx, tc.input); !errors.Is(err, tc.want) {
			t.Fatalf("%s: expected %v, got %v", tc.name, tc.want, err)
		}
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	service, _ := newService([]ports.User{
		{UserID: "0123456789ab", Email: "taken@example.com", Name: "Taken", Role: ports.RoleCustomer},
	})

	_, err := service.Register(context.Background(), ports.RegisterUserInput{
		Name:     "Second",
		Email:    "taken@example.com",
		Password: "long-enough-password",
	})
	if !errors.Is(err, domainerrors.ErrEmailInUse) {
		t.Fatalf("expected ErrEmailInUse, got %v", err)
	}
}

func TestAuthenticateDoesNotRevealFailureCause(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("correct-password-1"), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("hash: %v", err)
	}
	service, _ := newService([]ports.User{
		{UserID: "0123456789ab", Email: "alice@example.com", Name: "Alice", PasswordHash: string(hash), Role: ports.RoleCustomer},
	})
	ctx := context.Background()

	if _, err := service.Authenticate(ctx, "alice@example.com", "correct-password-1"); err != nil {
		t.Fatalf("valid credentials: %v", err)
	}

	_, wrongPassword := service.Authenticate(ctx, "alice@example.com", "wrong-password-1")
	_, unknownEmail := service.Authenticate(ctx, "nobody@example.com", "correct-password-1")
	if !errors.Is(wrongPassword, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongPassword)
	}
	if !errors.Is(unknownEmail, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownEmail)
	}
}

func TestUpdateRoleRejectsUnknownRole(t *testing.T) {
	service, _ := newService([]ports.User{
		{UserID: "0123456789ab", Email: "alice@example.com", Name: "Alice", Role: ports.RoleCustomer},
	})

	if _, err := service.UpdateRole(context.Background(), "0123456789ab", "superuser"); !errors.Is(err, domainerrors.ErrUnknownRole) {
		t.Fatalf("expected ErrUnknownRole, got %v", err)
	}
	promoted, err := service.UpdateRole(context.Background(), "0123456789ab", "admin")
	if err != nil {
		t.Fatalf("promote: %v", err)
	}
	if promoted.Role != ports.RoleAdmin {
		t.Fatalf("expected admin role, got %s", promoted.Role)
	}
}

func TestDeleteUnknownUser(t *testing.T) {
	service, _ := newService(nil)
	if _, err := service.DeleteUser(context.Background(), "0123456789ab"); !errors.Is(err, domainerrors.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}
