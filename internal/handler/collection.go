package handler

import (
	"net/http"

	"github.com/lvfrd/lvfrd-api/internal/service"
)

// CollectionHandler обрабатывает эндпоинты списка и создания документов одной коллекции
// (/api/units для подразделений, /api/hierarchy для сотрудников)
type CollectionHandler struct {
	service *service.CollectionService
}

// NewCollectionHandler создает новый CollectionHandler
func NewCollectionHandler(service *service.CollectionService) *CollectionHandler {
	return &CollectionHandler{
		service: service,
	}
}

// List обрабатывает GET: возвращает все документы коллекции
func (h *CollectionHandler) List(w http.ResponseWriter, r *http.Request) {
	docs, err := h.service.List(r.Context())
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, docs)
}

// Create обрабатывает POST: сохраняет тело запроса как документ
func (h *CollectionHandler) Create(w http.ResponseWriter, r *http.Request) {
	payload, err := decodeDocument(w, r)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	id, err := h.service.Create(r.Context(), payload)
	if err != nil {
		HandleError(w, r, err)
		return
	}

	RespondWithJSON(w, r, http.StatusOK, CreateResponse{ID: id})
}
