package mongodb

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/lvfrd/lvfrd-api/internal/domain"
)

// Store реализует repository.DocumentStore и repository.StoreDiagnostics для MongoDB
type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// New создает клиент MongoDB для базы name.
// Клиент подключается лениво, недоступность сервера проявится при первом запросе или Ping.
func New(ctx context.Context, uri, name string, timeout time.Duration) (*Store, error) {
	if uri == "" || name == "" {
		return nil, domain.ErrStoreUnavailable
	}

	opts := options.Client().
		ApplyURI(uri).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout).
		// Вложенные документы декодируются в map, чтобы их можно было отдать как JSON
		SetBSONOptions(&options.BSONOptions{DefaultDocumentM: true})

	client, err := mongo.Connect(ctx, opts)
	if err != nil {
		return nil, domain.NewStoreError("connect", "", err)
	}

	return &Store{
		client: client,
		db:     client.Database(name),
	}, nil
}

// Unavailable возвращает хранилище без подключения: каждая операция завершится ErrStoreUnavailable
func Unavailable() *Store {
	return &Store{}
}

// Available сообщает, было ли инициализировано подключение
func (s *Store) Available() bool {
	return s.db != nil
}

// DatabaseName возвращает имя базы данных или пустую строку
func (s *Store) DatabaseName() string {
	if s.db == nil {
		return ""
	}
	return s.db.Name()
}

// Ping проверяет доступность сервера
func (s *Store) Ping(ctx context.Context) error {
	if s.client == nil {
		return domain.ErrStoreUnavailable
	}
	if err := s.client.Ping(ctx, nil); err != nil {
		return domain.NewStoreError("ping", "", err)
	}
	return nil
}

// Insert сохраняет документ без какой-либо проверки схемы
func (s *Store) Insert(ctx context.Context, collection domain.Collection, doc domain.Document) (string, error) {
	if s.db == nil {
		return "", domain.ErrStoreUnavailable
	}

	res, err := s.db.Collection(string(collection)).InsertOne(ctx, bson.M(doc))
	if err != nil {
		return "", domain.NewStoreError("insert", collection, err)
	}

	return idString(res.InsertedID), nil
}

// Find возвращает документы коллекции в естественном порядке (порядке вставки)
func (s *Store) Find(ctx context.Context, collection domain.Collection, limit int64) ([]domain.Document, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnavailable
	}

	opts := options.Find()
	if limit > 0 {
		opts.SetLimit(limit)
	}

	cursor, err := s.db.Collection(string(collection)).Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, domain.NewStoreError("find", collection, err)
	}

	var raw []bson.M
	if err := cursor.All(ctx, &raw); err != nil {
		return nil, domain.NewStoreError("find", collection, err)
	}

	docs := make([]domain.Document, 0, len(raw))
	for _, m := range raw {
		docs = append(docs, domain.Document(m))
	}

	return docs, nil
}

// CollectionNames возвращает имена коллекций базы данных
func (s *Store) CollectionNames(ctx context.Context) ([]string, error) {
	if s.db == nil {
		return nil, domain.ErrStoreUnavailable
	}

	names, err := s.db.ListCollectionNames(ctx, bson.D{})
	if err != nil {
		return nil, domain.NewStoreError("list collections", "", err)
	}

	return names, nil
}

// Close закрывает подключение к MongoDB
func (s *Store) Close(ctx context.Context) error {
	if s.client == nil {
		return nil
	}
	if err := s.client.Disconnect(ctx); err != nil {
		return fmt.Errorf("failed to disconnect from database: %w", err)
	}
	return nil
}

// idString приводит идентификатор, присвоенный хранилищем, к строке
func idString(id any) string {
	if oid, ok := id.(primitive.ObjectID); ok {
		return oid.Hex()
	}
	return fmt.Sprint(id)
}
