package ports

import (
	"context"
	"time"
)

// Role is the account role checked by the access policy.
type Role string

const (
	RoleCustomer Role = "customer"
	RoleAdmin    Role = "admin"
)

func IsValidRole(role Role) bool {
	switch role {
	case RoleCustomer, RoleAdmin:
		return true
	}
	return false
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type User struct {
	UserID       string
	Name         string
	Email        string
	PasswordHash string
	Role         Role
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type RegisterUserInput struct {
	Name     string
	Email    string
	Password string
}

type UserRegisteredEvent struct {
	UserID     string
	Email      string
	Role       Role
	OccurredAt time.Time
}

// EventPublisher publishes module events through the event bus adapter.
type EventPublisher interface {
	PublishUserRegistered(ctx context.Context, event UserRegisteredEvent) error
}

type Repository interface {
	CreateUser(ctx context.Context, user User) (User, error)
	ListUsers(ctx context.Context) ([]User, error)
	GetUser(ctx context.Context, userID string) (User, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	UpdateUserRole(ctx context.Context, userID string, role Role, now time.Time) (User, error)
	DeleteUser(ctx context.Context, userID string) (User, error)
}
