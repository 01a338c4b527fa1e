package httptransport

// UserDTO mirrors the wire shape the front-end expects; ids are serialized
// as "_id".
type UserDTO struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type RegisterRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdateUserRoleRequest struct {
	Role string `json:"role"`
}

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
