package httpadapter

import (
	"context"
	"log/slog"

	"webshop/contexts/identity-access/user-service/application"
	"webshop/contexts/identity-access/user-service/ports"
	httptransport "webshop/contexts/identity-access/user-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// RegisterHandler godoc
// @Summary Register a new customer account
// @Description Creates a customer account. Requested roles are ignored.
// @Tags users
// @Accept json
// @Produce json
// @Param body body httptransport.RegisterRequest true "Registration payload"
// @Success 201 {object} httptransport.UserDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Router /api/register [post]
func (h Handler) RegisterHandler(ctx context.Context, req httptransport.RegisterRequest) (httptransport.UserDTO, error) {
	logger := application.ResolveLogger(h.Logger)

	created, err := h.Service.Register(ctx, ports.RegisterUserInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.UserDTO{}, err
	}

	logger.Info("user registered",
		"event", "user_registered",
		"module", "identity-access/user-service",
		"layer", "transport",
		"user_id", created.UserID,
	)
	return mapUser(created), nil
}

// ListUsersHandler godoc
// @Summary List all users
// @Description Admin-only listing of every account.
// @Tags users
// @Produce json
// @Security BasicAuth
// @Success 200 {array} httptransport.UserDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /api/users [get]
func (h Handler) ListUsersHandler(ctx context.Context) ([]httptransport.UserDTO, error) {
	users, err := h.Service.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.UserDTO, 0, len(users))
	for _, user := range users {
		items = append(items, mapUser(user))
	}
	return items, nil
}

// GetUserHandler godoc
// @Summary Get a single user
// @Tags users
// @Produce json
// @Security BasicAuth
// @Param id path string true "User id"
// @Success 200 {object} httptransport.UserDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/users/{id} [get]
func (h Handler) GetUserHandler(ctx context.Context, userID string) (httptransport.UserDTO, error) {
	user, err := h.Service.GetUser(ctx, userID)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

// UpdateUserRoleHandler godoc
// @Summary Change a user's role
// @Tags users
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path string true "User id"
// @Param body body httptransport.UpdateUserRoleRequest true "New role"
// @Success 200 {object} httptransport.UserDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/users/{id} [put]
func (h Handler) UpdateUserRoleHandler(ctx context.Context, userID string, req httptransport.UpdateUserRoleRequest) (httptransport.UserDTO, error) {
	user, err := h.Service.UpdateRole(ctx, userID, req.Role)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

// DeleteUserHandler godoc
// @Summary Delete a user
// @Description Removes the account and returns the deleted record.
// @Tags users
// @Produce json
// @Security BasicAuth
// @Param id path string true "User id"
// @Success 200 {object} httptransport.UserDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/users/{id} [delete]
func (h Handler) DeleteUserHandler(ctx context.Context, userID string) (httptransport.UserDTO, error) {
	user, err := h.Service.DeleteUser(ctx, userID)
	if err != nil {
		return httptransport.UserDTO{}, err
	}
	return mapUser(user), nil
}

func mapUser(user ports.User) httptransport.UserDTO {
	return httptransport.UserDTO{
		ID:    user.UserID,
		Name:  user.Name,
		Email: user.Email,
		Role:  string(user.Role),
	}
}
