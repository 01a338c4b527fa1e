package httpserver

import (
	"net/http"
	"strings"

	userports "webshop/contexts/identity-access/user-service/ports"
)

// Outcome is the terminal classification of an access decision.
type Outcome int

const (
	OutcomeAllow Outcome = iota
	OutcomeUnauthenticated
	OutcomeForbidden
	OutcomeNotFound
	OutcomeMethodNotAllowed
	OutcomeNotAcceptable
)

// AccessDecision is produced once per request. Any outcome other than
// OutcomeAllow is terminal: no further checks run.
type AccessDecision struct {
	Outcome  Outcome
	Identity Identity
}

// requiresIdentity reports whether the route/method combination needs a
// resolved caller. Registration is the only anonymous operation.
func requiresIdentity(rt route, _ string) bool {
	return rt.Resource != resourceRegister
}

// decide applies the role part of the rule matrix. Data-dependent checks
// (order ownership, self-mutation) run after the resource is fetched and
// are not represented here.
func decide(rt route, method string, identity Identity, authenticated bool) AccessDecision {
	method = strings.ToUpper(method)

	if !requiresIdentity(rt, method) {
		return AccessDecision{Outcome: OutcomeAllow}
	}
	if !authenticated {
		return AccessDecision{Outcome: OutcomeUnauthenticated}
	}

	allowed := AccessDecision{Outcome: OutcomeAllow, Identity: identity}
	forbidden := AccessDecision{Outcome: OutcomeForbidden, Identity: identity}

	switch rt.Resource {
	case resourceUsers:
		// every user operation is admin-only
		if !identity.IsAdmin() {
			return forbidden
		}
		return allowed

	case resourceProducts:
		switch method {
		case http.MethodGet:
			return allowed
		case http.MethodPost, http.MethodPut, http.MethodDelete:
			if !identity.IsAdmin() {
				return forbidden
			}
			return allowed
		}

	case resourceOrders:
		switch method {
		case http.MethodGet:
			return allowed
		case http.MethodPost:
			// admins do not shop here
			if identity.Role != userports.RoleCustomer {
				return forbidden
			}
			return allowed
		}
	}

	return forbidden
}

// orderVisible is the per-row ownership predicate: a non-admin caller may
// only see orders whose customer id matches their own. Callers report a
// violation as not-found, never forbidden, so probing cannot confirm an
// order exists.
func orderVisible(identity Identity, orderCustomerID string) bool {
	return identity.IsAdmin() || orderCustomerID == identity.ID
}
