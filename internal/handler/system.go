package handler

import (
	"net/http"

	"github.com/lvfrd/lvfrd-api/internal/domain"
	"github.com/lvfrd/lvfrd-api/internal/service"
)

// RootMessage отдается на GET /
const RootMessage = "LVFRD Backend Running"

// SystemHandler обрабатывает служебные эндпоинты: liveness, схемы и диагностику
type SystemHandler struct {
	diagnostics *service.DiagnosticsService
}

// NewSystemHandler создает новый SystemHandler
func NewSystemHandler(diagnostics *service.DiagnosticsService) *SystemHandler {
	return &SystemHandler{
		diagnostics: diagnostics,
	}
}

// Root обрабатывает GET / (хранилище не используется)
func (h *SystemHandler) Root(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, map[string]string{"message": RootMessage})
}

// Schema обрабатывает GET /schema для внешнего просмотрщика БД
func (h *SystemHandler) Schema(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, domain.Schemas())
}

// Test обрабатывает GET /test: состояние хранилища без раскрытия учетных данных
func (h *SystemHandler) Test(w http.ResponseWriter, r *http.Request) {
	RespondWithJSON(w, r, http.StatusOK, h.diagnostics.Report(r.Context()))
}
