package handler

import (
	"errors"
	"net/http"

	"github.com/libraria/libraria-go/internal/model"
	"github.com/libraria/libraria-go/internal/service"
	"github.com/libraria/libraria-go/internal/validator"
)

// AuthHandler handles HTTP requests for login and self-registration.
type AuthHandler struct {
	auth      *service.AuthService
	customers *service.CustomerService
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(auth *service.AuthService, customers *service.CustomerService) *AuthHandler {
	return &AuthHandler{auth: auth, customers: customers}
}

// HandleLogin handles POST /api/v1/auth/login requests.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req model.LoginRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	v := validator.New()
	v.Check(req.Email != "", "email", "must be provided")
	v.Check(req.Password != "", "password", "must be provided")
	if !v.Valid() {
		writeJSON(w, http.StatusBadRequest, validationResponse(v.Errors))
		return
	}

	resp, err := h.auth.Login(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeJSON(w, http.StatusUnauthorized, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleRegister handles POST /api/v1/auth/register requests. Unlike
// POST /api/v1/customers this route is public, so a first-time customer
// can create an account; the response includes a token for immediate use.
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.CustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if !validCustomerRequest(w, req, true) {
		return
	}

	customer, err := h.customers.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	token, err := h.auth.IssueToken(customer.Email)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, model.RegisterResponse{
		Token:    token,
		Customer: customer,
	})
}
