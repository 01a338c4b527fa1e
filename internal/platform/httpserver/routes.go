package httpserver

import (
	"net/http"
	"regexp"
	"strings"
)

// resource names a route family handled by the dispatcher.
type resource string

const (
	resourceRegister resource = "register"
	resourceUsers    resource = "users"
	resourceProducts resource = "products"
	resourceOrders   resource = "orders"
)

// route is a matched request target: a known collection path or a single
// resource referenced by id.
type route struct {
	Resource resource
	HasID    bool
	ID       string
	Methods  []string
}

// collectionMethods is the immutable literal path table, built once; it also
// backs the Access-Control-Allow-Methods value for OPTIONS responses.
var collectionMethods = map[string]route{
	"/api/register": {Resource: resourceRegister, Methods: []string{http.MethodPost}},
	"/api/users":    {Resource: resourceUsers, Methods: []string{http.MethodGet}},
	"/api/products": {Resource: resourceProducts, Methods: []string{http.MethodGet, http.MethodPost}},
	"/api/orders":   {Resource: resourceOrders, Methods: []string{http.MethodGet, http.MethodPost}},
}

// itemMethods lists the methods valid on /api/{family}/{id} per family.
var itemMethods = map[resource][]string{
	resourceUsers:    {http.MethodGet, http.MethodPut, http.MethodDelete},
	resourceProducts: {http.MethodGet, http.MethodPut, http.MethodDelete},
	resourceOrders:   {http.MethodGet},
}

// idPattern matches store-issued ids: 8 to 24 lowercase alphanumerics.
var idPattern = regexp.MustCompile(`^[0-9a-z]{8,24}$`)

// matchRoute classifies a URL path. Path matching is case-sensitive; a
// literal collection path never also matches the id pattern.
func matchRoute(path string) (route, bool) {
	if rt, ok := collectionMethods[path]; ok {
		return rt, true
	}

	parts := strings.Split(path, "/")
	if len(parts) != 4 || parts[0] != "" || parts[1] != "api" {
		return route{}, false
	}

	family := resource(parts[2])
	methods, ok := itemMethods[family]
	if !ok {
		return route{}, false
	}
	if !idPattern.MatchString(parts[3]) {
		return route{}, false
	}

	return route{
		Resource: family,
		HasID:    true,
		ID:       parts[3],
		Methods:  methods,
	}, true
}

// allowsMethod compares case-insensitively: get, GET and Get are the same
// method.
func (r route) allowsMethod(method string) bool {
	normalized := strings.ToUpper(method)
	for _, m := range r.Methods {
		if m == normalized {
			return true
		}
	}
	return false
}
