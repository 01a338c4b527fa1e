package httptransport

// OrderProductDTO is the product snapshot embedded in an order item.
type OrderProductDTO struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description,omitempty"`
}

type OrderItemDTO struct {
	Product  OrderProductDTO `json:"product"`
	Quantity int             `json:"quantity"`
}

type OrderDTO struct {
	ID         string         `json:"_id"`
	CustomerID string         `json:"customerId"`
	Items      []OrderItemDTO `json:"items"`
}

type CreateOrderRequest struct {
	Items []OrderItemDTO `json:"items"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
