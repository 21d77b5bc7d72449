package service

import (
	"context"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lvfrd/lvfrd-api/internal/domain"
	"github.com/lvfrd/lvfrd-api/internal/repository"
)

// CollectionService handles reads and writes for one document collection
type CollectionService struct {
	store      repository.DocumentStore
	collection domain.Collection
	schema     *domain.RecordSchema
}

// NewCollectionService creates a CollectionService.
// When strict is true, payloads are validated against the collection's record shape.
func NewCollectionService(store repository.DocumentStore, collection domain.Collection, strict bool) *CollectionService {
	s := &CollectionService{
		store:      store,
		collection: collection,
	}
	if strict {
		if schema, ok := domain.SchemaFor(collection); ok {
			s.schema = &schema
		}
	}
	return s
}

// List returns every document in store order with public ids
func (s *CollectionService) List(ctx context.Context) ([]domain.Document, error) {
	return s.find(ctx, 0)
}

// Create stores the payload and returns its new id
func (s *CollectionService) Create(ctx context.Context, payload domain.Document) (string, error) {
	if payload == nil {
		return "", domain.ErrInvalidPayload
	}

	if s.schema != nil {
		validated, err := s.schema.Validate(payload)
		if err != nil {
			return "", err
		}
		payload = validated
	}

	return s.store.Insert(ctx, s.collection, payload)
}

func (s *CollectionService) find(ctx context.Context, limit int64) ([]domain.Document, error) {
	docs, err := s.store.Find(ctx, s.collection, limit)
	if err != nil {
		return nil, err
	}
	return StringifyIDs(docs), nil
}

// StringifyIDs replaces the store's ObjectID "_id" with a string "id".
// Documents are copied; any other field is left untouched.
func StringifyIDs(docs []domain.Document) []domain.Document {
	out := make([]domain.Document, 0, len(docs))
	for _, doc := range docs {
		d := doc.Clone()
		if oid, ok := d[domain.StoreIDField].(primitive.ObjectID); ok {
			delete(d, domain.StoreIDField)
			d[domain.PublicIDField] = oid.Hex()
		}
		out = append(out, d)
	}
	return out
}
