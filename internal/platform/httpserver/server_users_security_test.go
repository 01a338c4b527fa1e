package httpserver

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"

	userservice "webshop/contexts/identity-access/user-service"
	userports "webshop/contexts/identity-access/user-service/ports"
	orderservice "webshop/contexts/storefront/order-service"
	orderports "webshop/contexts/storefront/order-service/ports"
	productservice "webshop/contexts/storefront/product-service"
	productports "webshop/contexts/storefront/product-service/ports"
)

const (
	seedAdminID         = "a1a1a1a1a1a1a1a1a1a1a1a1"
	seedCustomerID      = "c2c2c2c2c2c2c2c2c2c2c2c2"
	seedOtherCustomerID = "d3d3d3d3d3d3d3d3d3d3d3d3"
	seedProductID       = "f4f4f4f4f4f4f4f4f4f4f4f4"
	seedOrderID         = "e5e5e5e5e5e5e5e5e5e5e5e5"
	seedForeignOrderID  = "b6b6b6b6b6b6b6b6b6b6b6b6"

	adminEmail       = "admin@example.com"
	adminPassword    = "admin-password-1"
	customerEmail    = "alice@example.com"
	customerPassword = "alice-password-1"
	otherEmail       = "bob@example.com"
	otherPassword    = "bob-password-11"
)

func hashPassword(password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		panic(err)
	}
	return string(hash)
}

func newTestServer() *Server {
	users := userservice.NewInMemoryModule([]userports.User{
		{UserID: seedAdminID, Name: "Store Admin", Email: adminEmail, PasswordHash: hashPassword(adminPassword), Role: userports.RoleAdmin},
		{UserID: seedCustomerID, Name: "Alice", Email: customerEmail, PasswordHash: hashPassword(customerPassword), Role: userports.RoleCustomer},
		{UserID: seedOtherCustomerID, Name: "Bob", Email: otherEmail, PasswordHash: hashPassword(otherPassword), Role: userports.RoleCustomer},
	}, slog.Default())

	products := productservice.NewInMemoryModule([]productports.Product{
		{ProductID: seedProductID, Name: "Mechanical Keyboard", Price: 129.99, Description: "Tenkeyless board with brown switches"},
	}, slog.Default())

	keyboard := orderports.OrderProduct{ProductID: seedProductID, Name: "Mechanical Keyboard", Price: 129.99}
	orders := orderservice.NewInMemoryModule([]orderports.Order{
		{OrderID: seedOrderID, CustomerID: seedCustomerID, Items: []orderports.OrderItem{{Product: keyboard, Quantity: 1}}},
		{OrderID: seedForeignOrderID, CustomerID: seedOtherCustomerID, Items: []orderports.OrderItem{{Product: keyboard, Quantity: 2}}},
	}, slog.Default())

	return New(users, products, orders, slog.Default(), ":0", "testdata/public", "webshop")
}

func TestRegisterCreatesCustomerWithoutCredentials(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"Carol","email":"carol@example.com","password":"carol-password-1"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}

	var created struct {
		ID   string `json:"_id"`
		Role string `json:"role"`
	}
	if err := json.Unmarshal(rr.Body.Bytes(), &created); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected a generated _id")
	}
	if created.Role != "customer" {
		t.Fatalf("expected role customer, got %q", created.Role)
	}
}

func TestRegisterIgnoresRequestedRole(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"Mallory","email":"mallory@example.com","password":"mallory-pass-1","role":"admin"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"role":"customer"`) {
		t.Fatalf("expected forced customer role, body=%s", rr.Body.String())
	}
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"Alice Again","email":"alice@example.com","password":"alice-password-2"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Email already in use") {
		t.Fatalf("expected duplicate email message, body=%s", rr.Body.String())
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	server := newTestServer()
	body := []byte(`{"name":"Dave","email":"dave@example.com","password":"short"}`)
	req := httptest.NewRequest(http.MethodPost, "/api/register", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Password must be at least 10 characters long") {
		t.Fatalf("expected password length message, body=%s", rr.Body.String())
	}
}

func TestListUsersRequiresCredentials(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Accept", "application/json")

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
	if got := rr.Header().Get("WWW-Authenticate"); got != `Basic realm="webshop"` {
		t.Fatalf("expected basic auth challenge, got %q", got)
	}
}

func TestListUsersRejectsWrongPassword(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(adminEmail, "not-the-password")

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListUsersForbiddenForCustomer(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(customerEmail, customerPassword)

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestListUsersAllowedForAdmin(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/users", nil)
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(adminEmail, adminPassword)

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	var users []map[string]any
	if err := json.Unmarshal(rr.Body.Bytes(), &users); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(users) != 3 {
		t.Fatalf("expected 3 seeded users, got %d", len(users))
	}
}

func TestGetUnknownUserReturnsNotFound(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodGet, "/api/users/0000000000000000deadbeef", nil)
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(adminEmail, adminPassword)

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d body=%s", rr.Code, rr.Body.String())
	}
}

func TestAdminCanPromoteCustomer(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPut, "/api/users/"+seedCustomerID, bytes.NewReader([]byte(`{"role":"admin"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(adminEmail, adminPassword)

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), `"role":"admin"`) {
		t.Fatalf("expected updated role in body, body=%s", rr.Body.String())
	}
}

func TestAdminCannotUpdateOwnAccount(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodPut, "/api/users/"+seedAdminID, bytes.NewReader([]byte(`{"role":"customer"}`)))
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(adminEmail, adminPassword)

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Updating own data is not allowed") {
		t.Fatalf("expected self-update message, body=%s", rr.Body.String())
	}
}

func TestAdminCannotDeleteOwnAccount(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+seedAdminID, nil)
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(adminEmail, adminPassword)

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d body=%s", rr.Code, rr.Body.String())
	}
	if !strings.Contains(rr.Body.String(), "Deleting own data is not allowed") {
		t.Fatalf("expected self-delete message, body=%s", rr.Body.String())
	}
}

func TestAdminCanDeleteOtherUser(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+seedOtherCustomerID, nil)
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(adminEmail, adminPassword)

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", rr.Code, rr.Body.String())
	}

	followUp := httptest.NewRequest(http.MethodGet, "/api/users/"+seedOtherCustomerID, nil)
	followUp.Header.Set("Accept", "application/json")
	followUp.SetBasicAuth(adminEmail, adminPassword)
	followRR := httptest.NewRecorder()
	server.ServeHTTP(followRR, followUp)
	if followRR.Code != http.StatusNotFound {
		t.Fatalf("expected 404 after delete, got %d body=%s", followRR.Code, followRR.Body.String())
	}
}

func TestCustomerCannotMutateOtherUsers(t *testing.T) {
	server := newTestServer()
	req := httptest.NewRequest(http.MethodDelete, "/api/users/"+seedOtherCustomerID, nil)
	req.Header.Set("Accept", "application/json")
	req.SetBasicAuth(customerEmail, customerPassword)

	rr := httptest.NewRecorder()
	server.ServeHTTP(rr, req)
	if rr.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d body=%s", rr.Code, rr.Body.String())
	}
}
