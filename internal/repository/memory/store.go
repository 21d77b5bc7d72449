// Package memory предоставляет хранилище документов в памяти для тестов.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lvfrd/lvfrd-api/internal/domain"
)

// Store реализует repository.DocumentStore и repository.StoreDiagnostics в памяти.
// Идентификаторы назначаются как ObjectID, чтобы документы выглядели как из MongoDB.
type Store struct {
	mu          sync.Mutex
	collections map[domain.Collection][]domain.Document
	err         error
	listErr     error
	name        string
}

// New создает пустое хранилище
func New() *Store {
	return &Store{
		collections: make(map[domain.Collection][]domain.Document),
		name:        "memory",
	}
}

// FailWith заставляет все операции Insert и Find возвращать err; nil снимает сбой
func (s *Store) FailWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// FailListWith заставляет CollectionNames возвращать err
func (s *Store) FailListWith(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listErr = err
}

// Count возвращает число документов в коллекции
func (s *Store) Count(collection domain.Collection) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.collections[collection])
}

// Insert сохраняет копию документа
func (s *Store) Insert(_ context.Context, collection domain.Collection, doc domain.Document) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return "", domain.NewStoreError("insert", collection, s.err)
	}

	stored := doc.Clone()
	id, ok := stored[domain.StoreIDField]
	if !ok {
		oid := primitive.NewObjectID()
		stored[domain.StoreIDField] = oid
		id = oid
	}
	s.collections[collection] = append(s.collections[collection], stored)

	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex(), nil
	}
	return fmt.Sprint(id), nil
}

// Find возвращает копии документов в порядке вставки
func (s *Store) Find(_ context.Context, collection domain.Collection, limit int64) ([]domain.Document, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return nil, domain.NewStoreError("find", collection, s.err)
	}

	docs := s.collections[collection]
	if limit > 0 && int64(len(docs)) > limit {
		docs = docs[:limit]
	}

	out := make([]domain.Document, 0, len(docs))
	for _, d := range docs {
		out = append(out, d.Clone())
	}
	return out, nil
}

// Available всегда true для хранилища в памяти
func (s *Store) Available() bool { return true }

// DatabaseName возвращает условное имя базы
func (s *Store) DatabaseName() string { return s.name }

// CollectionNames возвращает отсортированные имена непустых коллекций
func (s *Store) CollectionNames(_ context.Context) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listErr != nil {
		return nil, domain.NewStoreError("list collections", "", s.listErr)
	}

	names := make([]string, 0, len(s.collections))
	for c := range s.collections {
		names = append(names, string(c))
	}
	sort.Strings(names)
	return names, nil
}
