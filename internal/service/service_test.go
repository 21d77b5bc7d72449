package service

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/lvfrd/lvfrd-api/internal/domain"
	"github.com/lvfrd/lvfrd-api/internal/repository/memory"
	"github.com/lvfrd/lvfrd-api/internal/repository/mongodb"
)

func TestStringifyIDs(t *testing.T) {
	oid := primitive.NewObjectID()
	in := []domain.Document{
		{"_id": oid, "name": "Engine 1"},
		{"_id": "legacy", "name": "Truck 3"},
	}

	out := StringifyIDs(in)

	require.Len(t, out, 2)
	assert.Equal(t, domain.Document{"id": oid.Hex(), "name": "Engine 1"}, out[0])
	assert.Equal(t, domain.Document{"_id": "legacy", "name": "Truck 3"}, out[1])
	assert.Equal(t, oid, in[0]["_id"], "input must not be modified")
}

func TestCollectionService_CreateAndList(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewCollectionService(store, domain.CollectionUnit, false)

	payload := domain.Document{"name": "Engine 1", "anything": []any{"goes"}}
	id, err := svc.Create(ctx, payload)
	require.NoError(t, err)
	require.NotEmpty(t, id)

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)

	assert.Equal(t, id, docs[0]["id"])
	assert.Equal(t, "Engine 1", docs[0]["name"])
	assert.NotContains(t, docs[0], "_id")
	assert.NotContains(t, docs[0], "status", "lenient mode stores payload as-is")
}

func TestCollectionService_EmptyList(t *testing.T) {
	svc := NewCollectionService(memory.New(), domain.CollectionMember, false)

	docs, err := svc.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, docs)
	assert.Empty(t, docs)
}

func TestCollectionService_Strict(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewCollectionService(store, domain.CollectionUnit, true)

	_, err := svc.Create(ctx, domain.Document{"unit_type": "Engine"})
	var verr *domain.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, 0, store.Count(domain.CollectionUnit))

	_, err = svc.Create(ctx, domain.Document{"name": "Engine 1", "unit_type": "Engine"})
	require.NoError(t, err)

	docs, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, docs, 1)
	assert.Equal(t, "Available", docs[0]["status"])
}

func TestCollectionService_NilPayload(t *testing.T) {
	svc := NewCollectionService(memory.New(), domain.CollectionUnit, false)

	_, err := svc.Create(context.Background(), nil)
	assert.ErrorIs(t, err, domain.ErrInvalidPayload)
}

func TestCollectionService_StoreFailure(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	store.FailWith(errors.New("connection refused"))
	svc := NewCollectionService(store, domain.CollectionUnit, false)

	_, err := svc.List(ctx)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrStore)

	_, err = svc.Create(ctx, domain.Document{"name": "x"})
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestCollectionService_UnavailableStore(t *testing.T) {
	svc := NewCollectionService(mongodb.Unavailable(), domain.CollectionUnit, false)

	_, err := svc.List(context.Background())
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
}

func TestContactService_DefaultNotPersisted(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewContactService(store, false)

	first, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.DefaultContactInfo(), first)

	second, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 0, store.Count(domain.CollectionContactInfo))
}

func TestContactService_FirstRecordWins(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	svc := NewContactService(store, false)

	firstID, err := svc.Create(ctx, domain.Document{"department_name": "First"})
	require.NoError(t, err)
	_, err = svc.Create(ctx, domain.Document{"department_name": "Second"})
	require.NoError(t, err)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, domain.Document{"id": firstID, "department_name": "First"}, got)
	assert.Equal(t, 2, store.Count(domain.CollectionContactInfo))
}

func TestContactService_StoreFailure(t *testing.T) {
	store := memory.New()
	store.FailWith(errors.New("boom"))

	_, err := NewContactService(store, false).Get(context.Background())
	assert.ErrorIs(t, err, domain.ErrStore)
}

func TestDiagnostics_Unavailable(t *testing.T) {
	report := NewDiagnosticsService(mongodb.Unavailable(), false, false).Report(context.Background())

	assert.Equal(t, BackendRunning, report.Backend)
	assert.Equal(t, DatabaseNotAvailable, report.Database)
	assert.Equal(t, SettingNotSet, report.DatabaseURL)
	assert.Equal(t, SettingNotSet, report.DatabaseName)
	assert.Equal(t, ConnectionNotConnected, report.ConnectionStatus)
	assert.Empty(t, report.Collections)
	assert.NotNil(t, report.Collections)
}

func TestDiagnostics_Working(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	for i := 0; i < 12; i++ {
		_, err := store.Insert(ctx, domain.Collection(fmt.Sprintf("c%02d", i)), domain.Document{})
		require.NoError(t, err)
	}

	report := NewDiagnosticsService(store, true, true).Report(ctx)

	assert.Equal(t, DatabaseWorking, report.Database)
	assert.Equal(t, SettingSet, report.DatabaseURL)
	assert.Equal(t, SettingSet, report.DatabaseName)
	assert.Equal(t, ConnectionConnected, report.ConnectionStatus)
	assert.Len(t, report.Collections, 10)
}

func TestDiagnostics_ListError(t *testing.T) {
	store := memory.New()
	store.FailListWith(errors.New("not authorized on lvfrd to execute command listCollections"))

	report := NewDiagnosticsService(store, true, false).Report(context.Background())

	assert.Equal(t, ConnectionConnected, report.ConnectionStatus)
	assert.Contains(t, report.Database, DatabaseErrorPrefix)
	assert.LessOrEqual(t, len([]rune(report.Database)), len([]rune(DatabaseErrorPrefix))+maxReportedErrorLen)
	assert.Equal(t, SettingNotSet, report.DatabaseName)
}
