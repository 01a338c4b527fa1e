package postgresadapter

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	domainerrors "webshop/contexts/storefront/order-service/domain/errors"
	"webshop/contexts/storefront/order-service/ports"
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

func (r *Repository) CreateOrder(ctx context.Context, order ports.Order) (ports.Order, error) {
	row, err := toModel(order)
	if err != nil {
		return ports.Order{}, err
	}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return ports.Order{}, err
	}
	return row.toEntity()
}

func (r *Repository) ListOrders(ctx context.Context) ([]ports.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return mapRows(rows)
}

func (r *Repository) ListOrdersByCustomer(ctx context.Context, customerID string) ([]ports.Order, error) {
	var rows []orderModel
	if err := r.db.WithContext(ctx).
		Where("customer_id = ?", customerID).
		Order("created_at ASC").
		Find(&rows).
		Error; err != nil {
		return nil, err
	}
	return mapRows(rows)
}

func (r *Repository) GetOrder(ctx context.Context, orderID string) (ports.Order, error) {
	var row orderModel
	err := r.db.WithContext(ctx).
		Where("order_id = ?", orderID).
		First(&row).
		Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ports.Order{}, domainerrors.ErrOrderNotFound
		}
		return ports.Order{}, err
	}
	return row.toEntity()
}

type orderItemRecord struct {
	ProductID   string  `json:"product_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
	Quantity    int     `json:"quantity"`
}

type orderModel struct {
	OrderID    string    `gorm:"column:order_id;primaryKey"`
	CustomerID string    `gorm:"column:customer_id;index"`
	ItemsJSON  []byte    `gorm:"column:items;type:jsonb"`
	CreatedAt  time.Time `gorm:"column:created_at"`
}

func (orderModel) TableName() string { return "orders" }

func (m orderModel) toEntity() (ports.Order, error) {
	var records []orderItemRecord
	if len(m.ItemsJSON) > 0 {
		if err := json.Unmarshal(m.ItemsJSON, &records); err != nil {
			return ports.Order{}, err
		}
	}
	items := make([]ports.OrderItem, 0, len(records))
	for _, record := range records {
		items = append(items, ports.OrderItem{
			Product: ports.OrderProduct{
				ProductID:   record.ProductID,
				Name:        record.Name,
				Price:       record.Price,
				Description: record.Description,
			},
			Quantity: record.Quantity,
		})
	}
	return ports.Order{
		OrderID:    m.OrderID,
		CustomerID: m.CustomerID,
		Items:      items,
		CreatedAt:  m.CreatedAt,
	}, nil
}

func toModel(order ports.Order) (orderModel, error) {
	records := make([]orderItemRecord, 0, len(order.Items))
	for _, item := range order.Items {
		records = append(records, orderItemRecord{
			ProductID:   item.Product.ProductID,
			Name:        item.Product.Name,
			Price:       item.Product.Price,
			Description: item.Product.Description,
			Quantity:    item.Quantity,
		})
	}
	raw, err := json.Marshal(records)
	if err != nil {
		return orderModel{}, err
	}
	return orderModel{
		OrderID:    order.OrderID,
		CustomerID: order.CustomerID,
		ItemsJSON:  raw,
		CreatedAt:  order.CreatedAt,
	}, nil
}

func mapRows(rows []orderModel) ([]ports.Order, error) {
	items := make([]ports.Order, 0, len(rows))
	for _, row := range rows {
		order, err := row.toEntity()
		if err != nil {
			return nil, err
		}
		items = append(items, order)
	}
	return items, nil
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
