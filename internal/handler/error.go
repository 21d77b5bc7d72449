package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"

	"github.com/lvfrd/lvfrd-api/internal/domain"
)

// ErrorResponse представляет ответ с ошибкой.
// detail - строка с текстом ошибки или список ошибок по полям.
type ErrorResponse struct {
	Detail any `json:"detail"`
}

// RespondWithError отправляет ответ с ошибкой
func RespondWithError(w http.ResponseWriter, r *http.Request, statusCode int, detail any) {
	render.Status(r, statusCode)
	render.JSON(w, r, ErrorResponse{Detail: detail})
}

// HandleError преобразует доменные ошибки в HTTP ответы.
// Любая ошибка хранилища отдается как 500 с исходным текстом.
func HandleError(w http.ResponseWriter, r *http.Request, err error) {
	var verr *domain.ValidationError
	switch {
	case errors.As(err, &verr):
		RespondWithError(w, r, http.StatusUnprocessableEntity, verr.Fields)
	case errors.Is(err, domain.ErrInvalidPayload):
		RespondWithError(w, r, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, ErrPayloadTooLarge):
		RespondWithError(w, r, http.StatusRequestEntityTooLarge, err.Error())
	default:
		slog.ErrorContext(r.Context(), "Request failed",
			"method", r.Method,
			"path", r.URL.Path,
			"error", err,
		)
		RespondWithError(w, r, http.StatusInternalServerError, err.Error())
	}
}
