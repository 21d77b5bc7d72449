package service

import (
	"context"

	"github.com/lvfrd/lvfrd-api/internal/domain"
	"github.com/lvfrd/lvfrd-api/internal/repository"
)

// ContactService handles the department contact record
type ContactService struct {
	*CollectionService
}

// NewContactService creates a ContactService backed by the contactinfo collection
func NewContactService(store repository.DocumentStore, strict bool) *ContactService {
	return &ContactService{
		CollectionService: NewCollectionService(store, domain.CollectionContactInfo, strict),
	}
}

// Get returns the first stored contact record, or the built-in default
// when none exists. The default is never written back.
func (s *ContactService) Get(ctx context.Context) (domain.Document, error) {
	docs, err := s.find(ctx, 1)
	if err != nil {
		return nil, err
	}
	if len(docs) > 0 {
		return docs[0], nil
	}
	return domain.DefaultContactInfo(), nil
}
