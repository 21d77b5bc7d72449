package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/lvfrd/lvfrd-api/internal/domain"
)

// MaxBodyBytes ограничивает размер тела POST-запроса
const MaxBodyBytes = 1 << 20

// ErrPayloadTooLarge возвращается, если тело запроса больше MaxBodyBytes
var ErrPayloadTooLarge = errors.New("request body too large")

// CreateResponse представляет ответ на создание документа
type CreateResponse struct {
	ID string `json:"id"`
}

// decodeDocument читает тело запроса как один JSON-объект.
// Числа сохраняются как json.Number, чтобы целые не превращались в float.
// Данные после объекта считаются ошибкой.
func decodeDocument(w http.ResponseWriter, r *http.Request) (domain.Document, error) {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, MaxBodyBytes))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, decodeError(err)
	}

	obj, ok := v.(map[string]any)
	if !ok {
		return nil, domain.ErrInvalidPayload
	}

	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		if err != nil {
			return nil, decodeError(err)
		}
		return nil, domain.ErrInvalidPayload
	}

	return domain.Document(obj), nil
}

func decodeError(err error) error {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return fmt.Errorf("%w: limit is %d bytes", ErrPayloadTooLarge, tooLarge.Limit)
	}
	return domain.ErrInvalidPayload
}
