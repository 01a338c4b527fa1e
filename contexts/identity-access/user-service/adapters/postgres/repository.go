package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	domainerrors "webshop/contexts/identity-access/user-service/domain/errors"
	"webshop/contexts/identity-access/user-service/ports"
)

type Repository struct {
	db     *gorm.DB
	logger *slog.Logger
}

func NewRepository(db *gorm.DB, logger *slog.Logger) *Repository {
	if logger == nil {
		logger = slog.Default()
	}
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func (r *Repository) CreateUser(ctx context.Context, user ports.User) (ports.User, error) {
	row := toModel(user)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		if isUniqueViolation(err) {
			return ports.User{}, domainerrors.ErrEmailInUse
		}
		return ports.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) ListUsers(ctx context.Context) ([]ports.User, error) {
	var rows []userModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]ports.User, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetUser(ctx context.Context, userID string) (ports.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, domainerrors.ErrUserNotFound
		}
		return ports.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) GetUserByEmail(ctx context.Context, email string) (ports.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).
		Where("email = ?", strings.ToLower(email)).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.User{}, domainerrors.ErrUserNotFound
		}
		return ports.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateUserRole(ctx context.Context, userID string, role ports.Role, now time.Time) (ports.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrUserNotFound
			}
			return err
		}
		row.Role = string(role)
		row.UpdatedAt = now.UTC()
		return tx.Save(&row).Error
	})
	if err != nil {
		return ports.User{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteUser(ctx context.Context, userID string) (ports.User, error) {
	var row userModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", userID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrUserNotFound
			}
			return err
		}
		return tx.Delete(&userModel{}, "user_id = ?", userID).Error
	})
	if err != nil {
		return ports.User{}, err
	}
	return row.toEntity(), nil
}

type userModel struct {
	UserID       string    `gorm:"column:user_id;primaryKey"`
	Name         string    `gorm:"column:name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PasswordHash string    `gorm:"column:password_hash"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func (m userModel) toEntity() ports.User {
	return ports.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash,
		Role:         ports.Role(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toModel(user ports.User) userModel {
	return userModel{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        strings.ToLower(user.Email),
		PasswordHash: user.PasswordHash,
		Role:         string(user.Role),
		CreatedAt:    user.CreatedAt,
		UpdatedAt:    user.UpdatedAt,
	}
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == "23505"
}

// SystemClock provides wall-clock time for production wiring.
type SystemClock struct{}

func (SystemClock) Now() time.Time { return time.Now().UTC() }

// HexIDGenerator implements ports.IDGenerator with 24-character lowercase
// hex ids derived from UUID v4 values.
type HexIDGenerator struct{}

func (HexIDGenerator) NewID(_ context.Context) (string, error) {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:24], nil
}
