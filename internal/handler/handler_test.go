package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lvfrd/lvfrd-api/internal/domain"
	"github.com/lvfrd/lvfrd-api/internal/repository/memory"
	"github.com/lvfrd/lvfrd-api/internal/service"
)

func TestHandleError(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantDetail string
	}{
		{
			name:       "store unavailable",
			err:        domain.ErrStoreUnavailable,
			wantStatus: http.StatusInternalServerError,
			wantDetail: domain.ErrStoreUnavailable.Error(),
		},
		{
			name:       "store operation",
			err:        domain.NewStoreError("find", domain.CollectionUnit, errors.New("timeout")),
			wantStatus: http.StatusInternalServerError,
			wantDetail: "find unit: timeout",
		},
		{
			name:       "invalid payload",
			err:        domain.ErrInvalidPayload,
			wantStatus: http.StatusUnprocessableEntity,
			wantDetail: "request body must be a JSON object",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/api/units", nil)
			rec := httptest.NewRecorder()

			HandleError(rec, req, tt.err)

			assert.Equal(t, tt.wantStatus, rec.Code)
			var body map[string]string
			require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
			assert.Equal(t, tt.wantDetail, body["detail"])
		})
	}
}

func TestHandleError_Validation(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/hierarchy", nil)
	rec := httptest.NewRecorder()

	HandleError(rec, req, &domain.ValidationError{
		Record: "Member",
		Fields: []domain.FieldError{{Field: "rank", Message: "field required"}},
	})

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	assert.JSONEq(t, `{"detail":[{"field":"rank","message":"field required"}]}`, rec.Body.String())
}

func TestDecodeDocument_KeepsNumbers(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/units", strings.NewReader(`{"crew":4,"nested":{"a":[1,"b"]}}`))

	doc, err := decodeDocument(httptest.NewRecorder(), req)
	require.NoError(t, err)

	assert.Equal(t, json.Number("4"), doc["crew"])
	assert.Equal(t, map[string]any{"a": []any{json.Number("1"), "b"}}, doc["nested"])
}

func TestDecodeDocument_RejectsTrailingData(t *testing.T) {
	for _, body := range []string{`{"name":"x"} garbage {`, `{"name":"x"}{"name":"y"}`, `{"name":"x"} 1`} {
		req := httptest.NewRequest(http.MethodPost, "/api/units", strings.NewReader(body))

		_, err := decodeDocument(httptest.NewRecorder(), req)
		assert.ErrorIs(t, err, domain.ErrInvalidPayload, body)
	}

	req := httptest.NewRequest(http.MethodPost, "/api/units", strings.NewReader("{\"name\":\"x\"}\n  "))
	doc, err := decodeDocument(httptest.NewRecorder(), req)
	require.NoError(t, err)
	assert.Equal(t, "x", doc["name"])
}

func TestCollectionHandler_Create_TooLarge(t *testing.T) {
	store := memory.New()
	h := NewCollectionHandler(service.NewCollectionService(store, domain.CollectionUnit, false))

	body := `{"name":"` + strings.Repeat("a", MaxBodyBytes) + `"}`
	req := httptest.NewRequest(http.MethodPost, "/api/units", strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	assert.Equal(t, http.StatusRequestEntityTooLarge, rec.Code)
	assert.Contains(t, rec.Body.String(), "request body too large")
	assert.Equal(t, 0, store.Count(domain.CollectionUnit))
}

func TestCollectionHandler_Create(t *testing.T) {
	store := memory.New()
	h := NewCollectionHandler(service.NewCollectionService(store, domain.CollectionUnit, false))

	req := httptest.NewRequest(http.MethodPost, "/api/units", strings.NewReader(`{"name":"Truck 3"}`))
	rec := httptest.NewRecorder()
	h.Create(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var resp CreateResponse
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&resp))
	assert.Len(t, resp.ID, 24)
	assert.Equal(t, 1, store.Count(domain.CollectionUnit))
}

func TestContactHandler_Get(t *testing.T) {
	h := NewContactHandler(service.NewContactService(memory.New(), false))

	rec := httptest.NewRecorder()
	h.Get(rec, httptest.NewRequest(http.MethodGet, "/api/contact", nil))

	require.Equal(t, http.StatusOK, rec.Code)
	var body map[string]any
	require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
	assert.Equal(t, []any{
		"https://twitter.com/LasVegasFD",
		"https://www.facebook.com/LasVegasFireRescue/",
	}, body["social"])
}

func TestSystemHandler_Root(t *testing.T) {
	h := NewSystemHandler(service.NewDiagnosticsService(memory.New(), false, false))

	rec := httptest.NewRecorder()
	h.Root(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"message":"LVFRD Backend Running"}`, rec.Body.String())
}
