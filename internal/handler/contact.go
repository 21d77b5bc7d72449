package handler

import (
	"net/http"

	"github.com/lvfrd/lvfrd-api/internal/service"
)

// ContactHandler обрабатывает эндпоинты контактной информации
type ContactHandler struct {
	contactService *service.ContactService
}

// NewContactHandler создает новый ContactHandler
func NewContactHandler(contactService *service.ContactService) *ContactHandler {
	return &ContactHandler{
		contactService: contactService,
	}
}

// Get обрабатывает GET /api/contact
func (h *ContactHandler) Get(w http.ResponseWriter, r *http.Request) {
	info, err := h.contactService.Get(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, info)
}

// Create обрабатывает POST /api/contact (добавляет запись, существующие не трогает)
func (h *ContactHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeDocument(w, r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	id, err := h.contactService.Create(r.Context(), payload)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, CreateResponse{ID: id})
}
