package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	userdomainerrors "webshop/contexts/identity-access/user-service/domain/errors"
	usertransport "webshop/contexts/identity-access/user-service/transport/http"
	orderdomainerrors "webshop/contexts/storefront/order-service/domain/errors"
	ordertransport "webshop/contexts/storefront/order-service/transport/http"
	productdomainerrors "webshop/contexts/storefront/product-service/domain/errors"
	producttransport "webshop/contexts/storefront/product-service/transport/http"
)

const genericBadRequestMessage = "request could not be processed"

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func (s *Server) respondUnauthenticated(w http.ResponseWriter) {
	w.Header().Set("WWW-Authenticate", `Basic realm="`+s.realm+`"`)
	writeJSON(w, http.StatusUnauthorized, errorBody("unauthorized", "authentication required"))
}

func respondForbidden(w http.ResponseWriter) {
	writeJSON(w, http.StatusForbidden, errorBody("forbidden", "insufficient permissions"))
}

func respondNotFound(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotFound, errorBody("not_found", "resource not found"))
}

func respondMethodNotAllowed(w http.ResponseWriter, allowed []string) {
	w.Header().Set("Allow", strings.Join(allowed, ","))
	writeJSON(w, http.StatusMethodNotAllowed, errorBody("method_not_allowed", "method not allowed"))
}

func respondNotAcceptable(w http.ResponseWriter) {
	writeJSON(w, http.StatusNotAcceptable, errorBody("not_acceptable", "representation not acceptable"))
}

func respondBadRequest(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusBadRequest, errorBody("bad_request", message))
}

type errorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

func errorBody(code string, message string) errorResponse {
	return errorResponse{Code: code, Message: message}
}

func writeUserDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, userdomainerrors.ErrUserNotFound):
		writeJSON(w, http.StatusNotFound, usertransport.ErrorResponse{
			Code:    "not_found",
			Message: "resource not found",
		})
	case errors.Is(err, userdomainerrors.ErrMissingName),
		errors.Is(err, userdomainerrors.ErrMissingEmail),
		errors.Is(err, userdomainerrors.ErrMissingPassword),
		errors.Is(err, userdomainerrors.ErrInvalidEmail),
		errors.Is(err, userdomainerrors.ErrPasswordTooShort),
		errors.Is(err, userdomainerrors.ErrEmailInUse),
		errors.Is(err, userdomainerrors.ErrMissingRole),
		errors.Is(err, userdomainerrors.ErrUnknownRole):
		writeJSON(w, http.StatusBadRequest, usertransport.ErrorResponse{
			Code:    "bad_request",
			Message: err.Error(),
		})
	default:
		writeJSON(w, http.StatusBadRequest, usertransport.ErrorResponse{
			Code:    "bad_request",
			Message: genericBadRequestMessage,
		})
	}
}

func writeProductDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, productdomainerrors.ErrProductNotFound):
		writeJSON(w, http.StatusNotFound, producttransport.ErrorResponse{
			Code:    "not_found",
			Message: "resource not found",
		})
	case errors.Is(err, productdomainerrors.ErrMissingProductName),
		errors.Is(err, productdomainerrors.ErrMissingProductDescription),
		errors.Is(err, productdomainerrors.ErrInvalidProductPrice),
		errors.Is(err, productdomainerrors.ErrNewNameInvalid),
		errors.Is(err, productdomainerrors.ErrNewPriceInvalid):
		writeJSON(w, http.StatusBadRequest, producttransport.ErrorResponse{
			Code:    "bad_request",
			Message: err.Error(),
		})
	default:
		writeJSON(w, http.StatusBadRequest, producttransport.ErrorResponse{
			Code:    "bad_request",
			Message: genericBadRequestMessage,
		})
	}
}

func writeOrderDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, orderdomainerrors.ErrOrderNotFound):
		writeJSON(w, http.StatusNotFound, ordertransport.ErrorResponse{
			Code:    "not_found",
			Message: "resource not found",
		})
	case errors.Is(err, orderdomainerrors.ErrEmptyItems),
		errors.Is(err, orderdomainerrors.ErrInvalidItems):
		writeJSON(w, http.StatusBadRequest, ordertransport.ErrorResponse{
			Code:    "bad_request",
			Message: err.Error(),
		})
	default:
		writeJSON(w, http.StatusBadRequest, ordertransport.ErrorResponse{
			Code:    "bad_request",
			Message: genericBadRequestMessage,
		})
	}
}
