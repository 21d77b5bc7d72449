package repository

import (
	"context"

	"github.com/lvfrd/lvfrd-api/internal/domain"
)

// DocumentStore определяет методы для работы с коллекциями документов
type DocumentStore interface {
	// Insert сохраняет документ как есть и возвращает присвоенный идентификатор
	Insert(ctx context.Context, collection domain.Collection, doc domain.Document) (string, error)

	// Find возвращает документы в порядке хранения; limit <= 0 означает без ограничения
	Find(ctx context.Context, collection domain.Collection, limit int64) ([]domain.Document, error)
}

// StoreDiagnostics определяет методы для диагностики подключения
type StoreDiagnostics interface {
	// Available сообщает, было ли инициализировано подключение
	Available() bool

	// DatabaseName возвращает имя используемой базы данных
	DatabaseName() string

	// CollectionNames возвращает имена коллекций базы данных
	CollectionNames(ctx context.Context) ([]string, error)
}
