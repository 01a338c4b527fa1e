package httptransport

// ProductDTO mirrors the wire shape the front-end expects; ids are
// serialized as "_id".
type ProductDTO struct {
	ID          string  `json:"_id"`
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image,omitempty"`
	Description string  `json:"description"`
}

type CreateProductRequest struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	Description string  `json:"description"`
}

// UpdateProductRequest is a partial update; absent fields are left
// untouched.
type UpdateProductRequest struct {
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Image       *string  `json:"image"`
	Description *string  `json:"description"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
