package model

import "encoding/json"

// User is the account returned by login and held in the client session.
type User struct {
	ID    int    `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest is the payload for POST /api/auth/login. Password is accepted
// but never checked.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password,omitempty"`
	Name     string `json:"name,omitempty"`
}

// LoginPayload is the login body as the server decodes it. Fields stay raw so
// their JSON types are never checked; only the presence of email is.
type LoginPayload struct {
	Email    json.RawMessage `json:"email" binding:"required"`
	Password json.RawMessage `json:"password"`
	Name     json.RawMessage `json:"name"`
}

// LoginResponse is the body of a successful login.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
