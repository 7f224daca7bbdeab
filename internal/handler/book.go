package handler

import (
	"errors"
	"net/http"

	"github.com/libraria/libraria-go/internal/model"
	"github.com/libraria/libraria-go/internal/service"
	"github.com/libraria/libraria-go/internal/validator"
)

// BookHandler handles HTTP requests for books.
type BookHandler struct {
	service *service.BookService
}

// NewBookHandler creates a new BookHandler.
func NewBookHandler(svc *service.BookService) *BookHandler {
	return &BookHandler{service: svc}
}

func validBookRequest(w http.ResponseWriter, req model.BookRequest) bool {
	v := validator.New()
	v.Check(req.Title != "", "title", "must be provided")
	v.Check(req.Author != "", "author", "must be provided")
	if !v.Valid() {
		writeJSON(w, http.StatusBadRequest, validationResponse(v.Errors))
		return false
	}
	return true
}

// HandleCreate handles POST /api/v1/books requests.
func (h *BookHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req model.BookRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if !validBookRequest(w, req) {
		return
	}

	resp, err := h.service.Create(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrCategoryNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusCreated, resp)
}

// HandleGetAll handles GET /api/v1/books requests.
func (h *BookHandler) HandleGetAll(w http.ResponseWriter, r *http.Request) {
	books, err := h.service.GetAll(r.Context())
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, books)
}

// HandleGetByID handles GET /api/v1/books/{id} requests.
func (h *BookHandler) HandleGetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	resp, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleUpdate handles PUT /api/v1/books/{id} requests.
func (h *BookHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	var req model.BookRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if !validBookRequest(w, req) {
		return
	}

	resp, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrBookNotFound), errors.Is(err, service.ErrCategoryNotFound):
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
		default:
			writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		}
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// HandleDelete handles DELETE /api/v1/books/{id} requests.
func (h *BookHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, ok := idParam(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, service.ErrBookNotFound) {
			writeJSON(w, http.StatusNotFound, errorResponse(err.Error()))
			return
		}
		writeJSON(w, http.StatusInternalServerError, errorResponse("internal server error"))
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
