package model

// Customer represents a customer row in the database.
// PasswordHash is never serialized into API responses.
type Customer struct {
	ID           int64
	Name         string
	Email        string
	PasswordHash string
}

// CustomerRequest represents a customer registration or update request.
// On update, a blank password keeps the stored hash.
type CustomerRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// CustomerResponse represents customer data safe for API responses.
type CustomerResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LoginRequest represents a login request.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// LoginResponse carries the bearer token issued on successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RegisterResponse carries the created customer together with a token so
// a freshly registered customer can call protected endpoints immediately.
type RegisterResponse struct {
	Token    string           `json:"token"`
	Customer CustomerResponse `json:"customer"`
}
