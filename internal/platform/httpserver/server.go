package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	httpSwagger "github.com/swaggo/http-swagger"

	userservice "webshop/contexts/identity-access/user-service"
	orderservice "webshop/contexts/storefront/order-service"
	productservice "webshop/contexts/storefront/product-service"
	_ "webshop/internal/platform/httpserver/docs"
)

// Server is the request dispatcher: it classifies every inbound request,
// matches it against the route table, resolves the caller's identity,
// enforces the access rule matrix and delegates to the resource handlers.
// It holds no mutable state across requests.
type Server struct {
	logger   *slog.Logger
	addr     string
	realm    string
	users    userservice.Module
	products productservice.Module
	orders   orderservice.Module
	static   staticRenderer
	swagger  http.Handler
}

func New(
	users userservice.Module,
	products productservice.Module,
	orders orderservice.Module,
	logger *slog.Logger,
	addr string,
	publicDir string,
	realm string,
) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if addr == "" {
		addr = ":3000"
	}
	if publicDir == "" {
		publicDir = "public"
	}
	if realm == "" {
		realm = "webshop"
	}

	return &Server{
		logger:   logger,
		addr:     addr,
		realm:    realm,
		users:    users,
		products: products,
		orders:   orders,
		static:   staticRenderer{dir: publicDir, logger: logger},
		swagger: httpSwagger.Handler(
			httpSwagger.URL("/swagger/doc.json"),
		),
	}
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s)
}

// ServeHTTP runs the fixed decision pipeline: static bypass, route match,
// OPTIONS short-circuit, content negotiation, authentication,
// authorization, delegation. The ordering is a contract; see the package
// tests.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	method := strings.ToUpper(r.Method)

	if strings.HasPrefix(path, "/swagger/") {
		s.swagger.ServeHTTP(w, r)
		return
	}

	// static assets carry no authorization semantics
	if !strings.HasPrefix(path, "/api") {
		if method == http.MethodGet {
			s.static.render(w, path)
			return
		}
		respondNotFound(w)
		return
	}

	rt, ok := matchRoute(path)
	if !ok {
		// 404 before any authentication step: an unknown path must not
		// leak whether credentials would have been required
		respondNotFound(w)
		return
	}

	// CORS preflight is never gated behind auth
	if method == http.MethodOptions {
		sendOptions(w, rt)
		return
	}

	if !rt.allowsMethod(method) {
		respondMethodNotAllowed(w, rt.Methods)
		return
	}

	if !acceptsJSON(r) {
		respondNotAcceptable(w)
		return
	}

	var identity Identity
	authenticated := false
	if requiresIdentity(rt, method) {
		identity, authenticated = s.resolveIdentity(r)
	}

	decision := decide(rt, method, identity, authenticated)
	switch decision.Outcome {
	case OutcomeUnauthenticated:
		s.respondUnauthenticated(w)
		return
	case OutcomeForbidden:
		respondForbidden(w)
		return
	case OutcomeNotFound:
		respondNotFound(w)
		return
	case OutcomeMethodNotAllowed:
		respondMethodNotAllowed(w, rt.Methods)
		return
	case OutcomeNotAcceptable:
		respondNotAcceptable(w)
		return
	}

	switch rt.Resource {
	case resourceRegister:
		s.handleRegister(w, r)
	case resourceUsers:
		s.dispatchUsers(w, r, rt, method, decision.Identity)
	case resourceProducts:
		s.dispatchProducts(w, r, rt, method, decision.Identity)
	case resourceOrders:
		s.dispatchOrders(w, r, rt, method, decision.Identity)
	}
}

func sendOptions(w http.ResponseWriter, rt route) {
	w.Header().Set("Access-Control-Allow-Methods", strings.Join(rt.Methods, ","))
	w.Header().Set("Access-Control-Allow-Headers", "Content-Type,Accept")
	w.Header().Set("Access-Control-Max-Age", "86400")
	w.Header().Set("Access-Control-Expose-Headers", "Content-Type,Accept")
	w.WriteHeader(http.StatusNoContent)
}

// acceptsJSON checks the Accept header; it may list several comma-separated
// content types, so look for a JSON-compatible entry anywhere in the value.
func acceptsJSON(r *http.Request) bool {
	accept := r.Header.Get("Accept")
	return strings.Contains(accept, "application/json") || strings.Contains(accept, "*/*")
}

func hasJSONContentType(r *http.Request) bool {
	return strings.Contains(r.Header.Get("Content-Type"), "application/json")
}

// readJSONBody validates Content-Type and parses the body. It runs only
// after authentication and authorization have passed, so no parse work is
// spent on rejected requests. A transport disconnect mid-read surfaces as a
// decode error and rejects cleanly.
func readJSONBody(w http.ResponseWriter, r *http.Request, dst any) bool {
	if !hasJSONContentType(r) {
		respondBadRequest(w, "Invalid Content-Type. Expected application/json")
		return false
	}
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		respondBadRequest(w, "Invalid JSON")
		return false
	}
	return true
}
