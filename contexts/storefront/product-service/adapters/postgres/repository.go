package postgresadapter

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerrors "webshop/contexts/storefront/product-service/domain/errors"
	"webshop/contexts/storefront/product-service/ports"
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

func (r *Repository) ListProducts(ctx context.Context) ([]ports.Product, error) {
	var rows []productModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	items := make([]ports.Product, 0, len(rows))
	for _, row := range rows {
		items = append(items, row.toEntity())
	}
	return items, nil
}

func (r *Repository) GetProduct(ctx context.Context, productID string) (ports.Product, error) {
	var row productModel
	err := r.db.WithContext(ctx).
		Where("product_id = ?", productID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Product{}, domainerrors.ErrProductNotFound
		}
		return ports.Product{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) CreateProduct(ctx context.Context, product ports.Product) (ports.Product, error) {
	row := toModel(product)
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return ports.Product{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) UpdateProduct(ctx context.Context, productID string, update ports.ProductUpdate, now time.Time) (ports.Product, error) {
	var row productModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrProductNotFound
			}
			return err
		}
		if update.Name != nil {
			row.Name = *update.Name
		}
		if update.Price != nil {
			row.Price = *update.Price
		}
		if update.Image != nil {
			row.Image = *update.Image
		}
		if update.Description != nil {
			row.Description = *update.Description
		}
		row.UpdatedAt = now.UTC()
		return tx.Save(&row).Error
	})
	if err != nil {
		return ports.Product{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) DeleteProduct(ctx context.Context, productID string) (ports.Product, error) {
	var row productModel
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("product_id = ?", productID).First(&row).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return domainerrors.ErrProductNotFound
			}
			return err
		}
		return tx.Delete(&productModel{}, "product_id = ?", productID).Error
	})
	if err != nil {
		return ports.Product{}, err
	}
	return row.toEntity(), nil
}

func (r *Repository) RecordSale(ctx context.Context, productID string, quantity int, now time.Time) error {
	result := r.db.WithContext(ctx).
		Model(&productModel{}).
		Where("product_id = ?", productID).
		Updates(map[string]any{
			"sales_count": gorm.Expr("sales_count + ?", quantity),
			"updated_at":  now.UTC(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerrors.ErrProductNotFound
	}
	return nil
}

type productModel struct {
	ProductID   string    `gorm:"column:product_id;primaryKey"`
	Name        string    `gorm:"column:name"`
	Price       float64   `gorm:"column:price"`
	Image       string    `gorm:"column:image"`
	Description string    `gorm:"column:description"`
	SalesCount  int64     `gorm:"column:sales_count"`
	CreatedAt   time.Time `gorm:"column:created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at"`
}

func (productModel) TableName() string { return "products" }

func (m productModel) toEntity() ports.Product {
	return ports.Product{
		ProductID:   m.ProductID,
		Name:        m.Name,
		Price:       m.Price,
		Image:       m.Image,
		Description: m.Description,
		SalesCount:  m.SalesCount,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}

func toModel(product ports.Product) productModel {
	return productModel{
		ProductID:   product.ProductID,
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Description: product.Description,
		SalesCount:  product.SalesCount,
		CreatedAt:   product.CreatedAt,
		UpdatedAt:   product.UpdatedAt,
	}
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
