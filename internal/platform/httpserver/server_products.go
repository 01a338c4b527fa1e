package httpserver

import (
	"net/http"

	producttransport "webshop/contexts/storefront/product-service/transport/http"
)

func (s *Server) dispatchProducts(w http.ResponseWriter, r *http.Request, rt route, method string, _ Identity) {
	ctx := r.Context()

	if !rt.HasID {
		switch method {
		case http.MethodGet:
			products, err := s.products.Handler.ListProductsHandler(ctx)
			if err != nil {
				writeProductDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, products)

		case http.MethodPost:
			var req producttransport.CreateProductRequest
			if !readJSONBody(w, r, &req) {
				return
			}
			created, err := s.products.Handler.CreateProductHandler(ctx, req)
			if err != nil {
				writeProductDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, created)
		}
		return
	}

	switch method {
	case http.MethodGet:
		product, err := s.products.Handler.GetProductHandler(ctx, rt.ID)
		if err != nil {
			writeProductDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, product)

	case http.MethodPut:
		var req producttransport.UpdateProductRequest
		if !readJSONBody(w, r, &req) {
			return
		}
		product, err := s.products.Handler.UpdateProductHandler(ctx, rt.ID, req)
		if err != nil {
			writeProductDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, product)

	case http.MethodDelete:
		product, err := s.products.Handler.DeleteProductHandler(ctx, rt.ID)
		if err != nil {
			writeProductDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, product)
	}
}
