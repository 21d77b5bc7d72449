package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Ошибки хранилища и обработки запросов
var (
	// ErrStore корневая ошибка для всех сбоев хранилища
	ErrStore = errors.New("store error")

	// ErrStoreUnavailable возвращается когда подключение к хранилищу не инициализировано
	ErrStoreUnavailable = fmt.Errorf("%w: database not available", ErrStore)

	// ErrInvalidPayload возвращается когда тело запроса не является JSON-объектом
	ErrInvalidPayload = errors.New("request body must be a JSON object")
)

// StoreError описывает неудачную операцию с хранилищем
type StoreError struct {
	Op         string
	Collection Collection
	Err        error
}

// NewStoreError оборачивает ошибку драйвера
func NewStoreError(op string, collection Collection, err error) *StoreError {
	return &StoreError{Op: op, Collection: collection, Err: err}
}

func (e *StoreError) Error() string {
	if e.Collection == "" {
		return fmt.Sprintf("%s: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("%s %s: %v", e.Op, e.Collection, e.Err)
}

func (e *StoreError) Unwrap() error { return e.Err }

// Is позволяет сравнивать любую StoreError с ErrStore
func (e *StoreError) Is(target error) bool { return target == ErrStore }

// FieldError описывает нарушение схемы в одном поле
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError содержит все нарушения схемы для одного документа
type ValidationError struct {
	Record string
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}
	return fmt.Sprintf("invalid %s: %s", e.Record, strings.Join(parts, "; "))
}
