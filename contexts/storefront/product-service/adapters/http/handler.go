package httpadapter

import (
	"context"
	"log/slog"

	"webshop/contexts/storefront/product-service/application"
	"webshop/contexts/storefront/product-service/ports"
	httptransport "webshop/contexts/storefront/product-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

// ListProductsHandler godoc
// @Summary List catalog products
// @Tags products
// @Produce json
// @Security BasicAuth
// @Success 200 {array} httptransport.ProductDTO
// @Failure 401 {object} httptransport.ErrorResponse
// @Router /api/products [get]
func (h Handler) ListProductsHandler(ctx context.Context) ([]httptransport.ProductDTO, error) {
	products, err := h.Service.ListProducts(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]httptransport.ProductDTO, 0, len(products))
	for _, product := range products {
		items = append(items, mapProduct(product))
	}
	return items, nil
}

// GetProductHandler godoc
// @Summary Get a single product
// @Tags products
// @Produce json
// @Security BasicAuth
// @Param id path string true "Product id"
// @Success 200 {object} httptransport.ProductDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/products/{id} [get]
func (h Handler) GetProductHandler(ctx context.Context, productID string) (httptransport.ProductDTO, error) {
	product, err := h.Service.GetProduct(ctx, productID)
	if err != nil {
		return httptransport.ProductDTO{}, err
	}
	return mapProduct(product), nil
}

// CreateProductHandler godoc
// @Summary Add a product to the catalog
// @Tags products
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param body body httptransport.CreateProductRequest true "Product payload"
// @Success 201 {object} httptransport.ProductDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 403 {object} httptransport.ErrorResponse
// @Router /api/products [post]
func (h Handler) CreateProductHandler(ctx context.Context, req httptransport.CreateProductRequest) (httptransport.ProductDTO, error) {
	logger := application.ResolveLogger(h.Logger)

	created, err := h.Service.CreateProduct(ctx, ports.CreateProductInput{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return httptransport.ProductDTO{}, err
	}

	logger.Info("product created",
		"event", "product_created",
		"module", "storefront/product-service",
		"layer", "transport",
		"product_id", created.ProductID,
	)
	return mapProduct(created), nil
}

// UpdateProductHandler godoc
// @Summary Update product fields
// @Tags products
// @Accept json
// @Produce json
// @Security BasicAuth
// @Param id path string true "Product id"
// @Param body body httptransport.UpdateProductRequest true "Fields to update"
// @Success 200 {object} httptransport.ProductDTO
// @Failure 400 {object} httptransport.ErrorResponse
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/products/{id} [put]
func (h Handler) UpdateProductHandler(ctx context.Context, productID string, req httptransport.UpdateProductRequest) (httptransport.ProductDTO, error) {
	product, err := h.Service.UpdateProduct(ctx, productID, ports.ProductUpdate{
		Name:        req.Name,
		Price:       req.Price,
		Image:       req.Image,
		Description: req.Description,
	})
	if err != nil {
		return httptransport.ProductDTO{}, err
	}
	return mapProduct(product), nil
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Removes the product and returns the deleted record.
// @Tags products
// @Produce json
// @Security BasicAuth
// @Param id path string true "Product id"
// @Success 200 {object} httptransport.ProductDTO
// @Failure 404 {object} httptransport.ErrorResponse
// @Router /api/products/{id} [delete]
func (h Handler) DeleteProductHandler(ctx context.Context, productID string) (httptransport.ProductDTO, error) {
	product, err := h.Service.DeleteProduct(ctx, productID)
	if err != nil {
		return httptransport.ProductDTO{}, err
	}
	return mapProduct(product), nil
}

func mapProduct(product ports.Product) httptransport.ProductDTO {
	return httptransport.ProductDTO{
		ID:          product.ProductID,
		Name:        product.Name,
		Price:       product.Price,
		Image:       product.Image,
		Description: product.Description,
	}
}
