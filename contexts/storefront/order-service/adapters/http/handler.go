package httpadapter

import (
	"context"
	"log/slog"

	"webshop/contexts/storefront/order-service/application"
	"webshop/contexts/storefront/order-service/ports"
	httptransport "webshop/contexts/storefront/order-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ListOrdersHandler godoc
// @Summary List all orders
// @Description Admin view of every order in the store.
// @Tags orders
// @Produce json
// @Security BasicAuth
// @Success 200 {array} httptransport.OrderDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /api/orders [get]
func (h Handler) ListOrdersHandler(ctx context.Context) ([]httptransport.OrderDTO, error) {
	orders, err := h.Service.ListOrders(ctx)
	if err != nil {
		return nil, err
	}
	return mapOrders(orders), nil
}

// ListCustomerOrdersHandler godoc
// @Summary List the caller's own orders
// @Tags orders
// @Produce json
// @Security BasicAuth
// @Success 200 {array} httptransport.OrderDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /api/orders [get]
func (h Handler) ListCustomerOrdersHandler(ctx context.Context, customerID string) ([]httptransport.OrderDTO, error) {
	orders, err := h.Service.ListOrdersByCustomer(ctx, customerID)
	if err != nil {
		return nil, err
	}
	return mapOrders(orders), nil
}

// GetOrderHandler godoc
// @Summary Get a single order
// @Tags orders
// @Produce json
// @Security BasicAuth
// @Param id path string true "Order id"
// @Success 200 {object} httptransport.OrderDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/orders/{id} [get]
func (h Handler) GetOrderHandler(ctx context.Context, orderID string) (httptransport.OrderDTO, error) {
	order, err := h.Service.GetOrder(ctx, orderID)
	if err != nil {
		return httptransport.OrderDTO{}, err
	}
	return mapOrder(order), nil
}

// CreateOrderHandler godoc
// @Summary Place a new order
// @Description Records an order for the authenticated customer.
// @Tags orders
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param body body httptransport.CreateOrderRequest true "Order payload"
// @Success 201 {object} httptransport.OrderDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /api/orders [post]
func (h Handler) CreateOrderHandler(ctx context.Context, customerID string, req httptransport.CreateOrderRequest) (httptransport.OrderDTO, error) {
	logger := application.ResolveLogger(h.Logger)

	items := make([]ports.OrderItem, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, ports.OrderItem{
			Product: ports.OrderProduct{
				ProductID:   item.Product.ID,
				Name:        item.Product.Name,
				Price:       item.Product.Price,
				Description: item.Product.Description,
			},
			Quantity: item.Quantity,
		})
	}

	created, err := h.Service.CreateOrder(ctx, customerID, items)
	if err != nil {
		return httptransport.OrderDTO{}, err
	}

	logger.Info("order created",
		"event", "order_created",
		"module", "storefront/order-service",
		"layer", "transport",
		"order_id", created.OrderID,
		"customer_id", created.CustomerID,
	)
	return mapOrder(created), nil
}

func mapOrder(order ports.Order) httptransport.OrderDTO {
	items := make([]httptransport.OrderItemDTO, 0, len(order.Items))
	for _, item := range order.Items {
		items = append(items, httptransport.OrderItemDTO{
			Product: httptransport.OrderProductDTO{
				ID:          item.Product.ProductID,
				Name:        item.Product.Name,
				Price:       item.Product.Price,
				Description: item.Product.Description,
			},
			Quantity: item.Quantity,
		})
	}
	return httptransport.OrderDTO{
		ID:         order.OrderID,
		CustomerID: order.CustomerID,
		Items:      items,
	}
}

func mapOrders(orders []ports.Order) []httptransport.OrderDTO {
	items := make([]httptransport.OrderDTO, 0, len(orders))
	for _, order := range orders {
		items = append(items, mapOrder(order))
	}
	return items
}
