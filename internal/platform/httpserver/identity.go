package httpserver

import (
	"encoding/base64"
	"net/http"
	"strings"

	userports "webshop/contexts/identity-access/user-service/ports"
)

// Identity is the resolved caller for one request. It is never cached
// across requests.
type Identity struct {
	ID   string
	Role userports.Role
}

func (i Identity) IsAdmin() bool { return i.Role == userports.RoleAdmin }

// decodeBasicCredentials extracts the email/password pair from an
// Authorization header. Any malformation yields ok=false; the caller cannot
// tell which part was wrong.
func decodeBasicCredentials(header string) (email string, password string, ok bool) {
	if header == "" {
		return "", "", false
	}
	parts := strings.Split(header, " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Basic") {
		return "", "", false
	}

	decoded, err := base64.StdEncoding.DecodeString(parts[1])
	if err != nil {
		return "", "", false
	}

	credentials := string(decoded)
	colon := strings.Index(credentials, ":")
	if colon <= 0 || colon == len(credentials)-1 {
		return "", "", false
	}
	return credentials[:colon], credentials[colon+1:], true
}

// resolveIdentity authenticates the request. Missing header, malformed
// header, unknown email and failed verification are indistinguishable: all
// yield ok=false and the same challenge response upstream.
func (s *Server) resolveIdentity(r *http.Request) (Identity, bool) {
	email, password, ok := decodeBasicCredentials(r.Header.Get("Authorization"))
	if !ok {
		return Identity{}, false
	}

	user, err := s.users.Service.Authenticate(r.Context(), email, password)
	if err != nil {
		return Identity{}, false
	}
	return Identity{ID: user.UserID, Role: user.Role}, true
}
