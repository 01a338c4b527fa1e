package application

import (
	"context"
	"log/slog"
	"regexp"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	domainerrors "webshop/contexts/identity-access/user-service/domain/errors"
	"webshop/contexts/identity-access/user-service/ports"
)

// Service implements the user-service use cases against explicit ports.
type Service struct {
	Repo   ports.Repository
	Clock  ports.Clock
	IDGen  ports.IDGenerator
	Events ports.EventPublisher
	Logger *slog.Logger
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

const minPasswordLength = 10

// Register creates a new customer account. The requested role is ignored:
// accounts always start as customers.
func (s Service) Register(ctx context.Context, input ports.RegisterUserInput) (ports.User, error) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))

	if input.Name == "" {
		return ports.User{}, domainerrors.ErrMissingName
	}
	if input.Email == "" {
		return ports.User{}, domainerrors.ErrMissingEmail
	}
	if input.Password == "" {
		return ports.User{}, domainerrors.ErrMissingPassword
	}
	if !emailPattern.MatchString(input.Email) {
		return ports.User{}, domainerrors.ErrInvalidEmail
	}
	if len(input.Password) < minPasswordLength {
		return ports.User{}, domainerrors.ErrPasswordTooShort
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return ports.User{}, err
	}

	userID, err := s.IDGen.NewID(ctx)
	if err != nil {
		return ports.User{}, err
	}

	now := s.now()
	created, err := s.Repo.CreateUser(ctx, ports.User{
		UserID:       userID,
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: string(hash),
		Role:         ports.RoleCustomer,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	if err != nil {
		return ports.User{}, err
	}

	if s.Events != nil {
		event := ports.UserRegisteredEvent{
			UserID:     created.UserID,
			Email:      created.Email,
			Role:       created.Role,
			OccurredAt: now,
		}
		if err := s.Events.PublishUserRegistered(ctx, event); err != nil {
			ResolveLogger(s.Logger).Error("user registered event publish failed",
				"event", "user_registered_publish_failed",
				"module", "identity-access/user-service",
				"layer", "application",
				"user_id", created.UserID,
				"error", err.Error(),
			)
		}
	}

	return created, nil
}

// Authenticate resolves a user by email and verifies the password.
// Unknown email and wrong password are indistinguishable to the caller.
func (s Service) Authenticate(ctx context.Context, email string, password string) (ports.User, error) {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" || password == "" {
		return ports.User{}, domainerrors.ErrInvalidCredentials
	}

	user, err := s.Repo.GetUserByEmail(ctx, email)
	if err != nil {
		return ports.User{}, domainerrors.ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return ports.User{}, domainerrors.ErrInvalidCredentials
	}
	return user, nil
}

func (s Service) ListUsers(ctx context.Context) ([]ports.User, error) {
	return s.Repo.ListUsers(ctx)
}

func (s Service) GetUser(ctx context.Context, userID string) (ports.User, error) {
	if strings.TrimSpace(userID) == "" {
		return ports.User{}, domainerrors.ErrUserNotFound
	}
	return s.Repo.GetUser(ctx, userID)
}

func (s Service) UpdateRole(ctx context.Context, userID string, role string) (ports.User, error) {
	role = strings.TrimSpace(role)
	if role == "" {
		return ports.User{}, domainerrors.ErrMissingRole
	}
	if !ports.IsValidRole(ports.Role(role)) {
		return ports.User{}, domainerrors.ErrUnknownRole
	}
	return s.Repo.UpdateUserRole(ctx, userID, ports.Role(role), s.now())
}

// DeleteUser removes the account and returns the deleted record.
func (s Service) DeleteUser(ctx context.Context, userID string) (ports.User, error) {
	return s.Repo.DeleteUser(ctx, userID)
}

func (s Service) now() time.Time {
	if s.Clock != nil {
		return s.Clock.Now().UTC()
	}
	return time.Now().UTC()
}
