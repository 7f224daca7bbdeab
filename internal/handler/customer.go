package handler

import (
	"errors"
	"net/http"

	"github.com/libraria/libraria-go/internal/middleware"
	"github.com/libraria/libraria-go/internal/model"
	"github.com/libraria/libraria-go/internal/service"
	"github.com/libraria/libraria-go/internal/validator"
)

// CustomerHandler handles HTTP requests for customer records.
type CustomerHandler struct {
	service *service.CustomerService
}

// NewCustomerHandler creates a new CustomerHandler.
func NewCustomerHandler(svc *service.CustomerService) *CustomerHandler {
	return &CustomerHandler{service: svc}
}

// validCustomerRequest validates a customer payload. requirePassword is
// false on update, where a blank password means "keep the current one".
// On failure it writes the 400 response itself and returns false.
func validCustomerRequest(w http.ResponseWriter, req model.CustomerRequest, requirePassword bool) bool {
	v := validator.New()
	v.Check(req.Name != "", "name", "must be provided")
	v.Check(req.Email != "", "email", "must be provided")
	v.Check(req.Email == "" || validator.Matches(req.Email, validator.EmailRX), "email", "must be a valid email address")
	if requirePassword {
		v.Check(req.Password != "", "password", "must be provided")
	}
	if !v.Valid() {
		writeJSON(w, http.StatusBadRequest, validationResponse(v.Errors))
		return false
	}
	return true
}

// HandleRegister handles POST /api/v1/customers requests.
func (h *CustomerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req model.CustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if !validCustomerRequest(w, req, true) {
		return
	}

	resp, err := h.service.Register(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleGetByID handles GET /api/v1/customers/{id} requests.
func (h *CustomerHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(r.Context(), id, subject)
	if err != nil {
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/v1/customers/{id} requests.
func (h *CustomerHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req model.CustomerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if !validCustomerRequest(w, req, false) {
		return
	}

	resp, err := h.service.Update(r.Context(), id, subject, req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			writeJSON(w, http.StatusConflict, errorResponse(err.Error()))
			return
		}
		h.writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/customers/{id} requests.
func (h *CustomerHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	subject, ok := middleware.SubjectFromContext(r.Context())
	if !ok {
		writeJSON(w, http.StatusUnauthorized, errorResponse("unauthorized"))
		return
	}

	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id, subject); err != nil {
		h.writeServiceError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *CustomerHandler) writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, service.ErrCustomerNotFound):
		writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
	case errors.Is(err, service.ErrForbidden):
		writeJSON(w, http.StatusForbidden, errorResponse(err.Error()))
	default:
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
	}
}
