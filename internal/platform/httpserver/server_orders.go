package httpserver

import (
	"net/http"

	ordertransport "webshop/contexts/storefront/order-service/transport/http"
)

func (s *Server) dispatchOrders(w http.ResponseWriter, r *http.Request, rt route, method string, identity Identity) {
	ctx := r.Context()

	if !rt.HasID {
		switch method {
		case http.MethodGet:
			if identity.IsAdmin() {
				orders, err := s.orders.Handler.ListOrdersHandler(ctx)
				if err != nil {
					writeOrderDomainError(w, err)
					return
				}
				writeJSON(w, http.StatusOK, orders)
				return
			}
			orders, err := s.orders.Handler.ListCustomerOrdersHandler(ctx, identity.ID)
			if err != nil {
				writeOrderDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusOK, orders)

		case http.MethodPost:
			var req ordertransport.CreateOrderRequest
			if !readJSONBody(w, r, &req) {
				return
			}
			created, err := s.orders.Handler.CreateOrderHandler(ctx, identity.ID, req)
			if err != nil {
				writeOrderDomainError(w, err)
				return
			}
			writeJSON(w, http.StatusCreated, created)
		}
		return
	}

	order, err := s.orders.Handler.GetOrderHandler(ctx, rt.ID)
	if err != nil {
		writeOrderDomainError(w, err)
		return
	}
	// a foreign order id answers exactly like a missing one
	if !orderVisible(identity, order.CustomerID) {
		respondNotFound(w)
		return
	}
	writeJSON(w, http.StatusOK, order)
}
