package httpserver

import (
	"net/http"

	usertransport "webshop/contexts/identity-access/user-service/transport/http"
)

func (s *Server) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req usertransport.RegisterRequest
	if !readJSONBody(w, r, &req) {
		return
	}

	created, err := s.users.Handler.RegisterHandler(r.Context(), req)
	if err != nil {
		writeUserDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, created)
}

func (s *Server) dispatchUsers(w http.ResponseWriter, r *http.Request, rt route, method string, identity Identity) {
	ctx := r.Context()

	if !rt.HasID {
		users, err := s.users.Handler.ListUsersHandler(ctx)
		if err != nil {
			writeUserDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, users)
		return
	}

	switch method {
	case http.MethodGet:
		user, err := s.users.Handler.GetUserHandler(ctx, rt.ID)
		if err != nil {
			writeUserDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)

	case http.MethodPut:
		// admins cannot change their own role
		if rt.ID == identity.ID {
			respondBadRequest(w, "Updating own data is not allowed")
			return
		}
		var req usertransport.UpdateUserRoleRequest
		if !readJSONBody(w, r, &req) {
			return
		}
		user, err := s.users.Handler.UpdateUserRoleHandler(ctx, rt.ID, req)
		if err != nil {
			writeUserDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)

	case http.MethodDelete:
		if rt.ID == identity.ID {
			respondBadRequest(w, "Deleting own data is not allowed")
			return
		}
		user, err := s.users.Handler.DeleteUserHandler(ctx, rt.ID)
		if err != nil {
			writeUserDomainError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
